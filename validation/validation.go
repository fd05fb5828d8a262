// Package validation performs declarative schema checks on request input
// before any side effect. It never touches storage.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/gateward/gateward/core"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Use json tag names for field names in issue messages
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return strings.ToLower(fld.Name)
			}
			return name
		})
	})
	return validate
}

// Error is a structured, pre-persistence rejection of malformed input.
// Issues are ordered by field declaration, one message per violated field.
type Error struct {
	Issues []string
}

func (e *Error) Error() string {
	return "validation failed: " + e.Details()
}

// Details joins the issue messages for display. Falls back to a generic
// message when no structured issues are available.
func (e *Error) Details() string {
	if e == nil || len(e.Issues) == 0 {
		return "Validation failed"
	}
	return strings.Join(e.Issues, ", ")
}

// SignupRequest is the wire shape of the signup body.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// LoginRequest is the wire shape of the sign-in body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signup checks the signup request and returns validated credentials.
// Role defaults to core.RoleUser when absent.
func Signup(req SignupRequest) (core.SignupInput, error) {
	if err := checkStruct(req); err != nil {
		return core.SignupInput{}, err
	}

	role := req.Role
	if role == "" {
		role = core.RoleUser
	}

	return core.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	}, nil
}

// Login checks the sign-in request and returns validated credentials.
func Login(req LoginRequest) (core.LoginInput, error) {
	if err := checkStruct(req); err != nil {
		return core.LoginInput{}, err
	}
	return core.LoginInput{Email: req.Email, Password: req.Password}, nil
}

func checkStruct(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return &Error{}
	}

	issues := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		issues = append(issues, issueMessage(fe))
	}
	return &Error{Issues: issues}
}

// issueMessage creates a human-readable message for a single violation.
func issueMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
