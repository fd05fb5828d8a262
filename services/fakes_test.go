package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gateward/gateward/core"
)

// FakeUserStore is a test-only fake implementing core.UserStore.
// It stores users in a map keyed by email and exposes error fields for
// behavior injection.
type FakeUserStore struct {
	mu        sync.RWMutex
	users     map[string]*core.User
	nextID    int64
	existsErr error
	createErr error
	getErr    error
}

func NewFakeUserStore() *FakeUserStore {
	return &FakeUserStore{
		users:  make(map[string]*core.User),
		nextID: 1,
	}
}

func (f *FakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.users[email]
	return ok, nil
}

func (f *FakeUserStore) Create(_ context.Context, u *core.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[u.Email]; ok {
		return core.ErrEmailTaken
	}
	u.ID = f.nextID
	f.nextID++
	u.CreatedAt = time.Now()
	stored := *u
	f.users[u.Email] = &stored
	return nil
}

func (f *FakeUserStore) GetByEmail(_ context.Context, email string) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[email]
	if !ok {
		return nil, core.ErrUserNotFound
	}
	found := *u
	return &found, nil
}

// Count returns the number of stored users.
func (f *FakeUserStore) Count() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.users)
}

// FailingHasher is a test-only hasher whose operations fail with a
// hashing-primitive error.
type FailingHasher struct{}

func (FailingHasher) Hash(string) (string, error) {
	return "", errors.Join(core.ErrHashing, errors.New("out of memory"))
}

func (FailingHasher) Verify(string, string) (bool, error) {
	return false, errors.Join(core.ErrHashing, errors.New("out of memory"))
}
