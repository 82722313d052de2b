/*
Copyright 2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package users

import (
	"context"
	"errors"
	"sync"

	"github.com/unikorn-cloud/petstore/pkg/openapi"
)

var (
	// ErrUsernameRequired is raised when a record has no key.
	ErrUsernameRequired = errors.New("username is required")

	// ErrAlreadyExists is raised when creating a username that is taken.
	ErrAlreadyExists = errors.New("user already exists")

	// ErrNotFound is raised when the username is unknown.
	ErrNotFound = errors.New("user not found")
)

//go:generate go tool mockgen -source=store.go -destination=mock/interfaces.go -package=mock

// Store persists user records keyed by username.
type Store interface {
	// Create adds a new record and returns the number of records held.
	Create(ctx context.Context, user *openapi.User) (int, error)
	// Get returns a copy of the record.
	Get(ctx context.Context, username string) (*openapi.User, error)
	// Update merges the supplied fields into an existing record and returns
	// the number of records held.
	Update(ctx context.Context, username string, update *openapi.UserWrite) (int, error)
	// Delete removes a record.
	Delete(ctx context.Context, username string) error
	// Count returns the number of records held.
	Count(ctx context.Context) int
}

// Memory is a non-persistent Store.
type Memory struct {
	lock  sync.RWMutex
	users map[string]openapi.User
}

// Ensure the interface is implemented.
var _ Store = &Memory{}

func NewMemory() *Memory {
	return &Memory{
		users: map[string]openapi.User{},
	}
}

func (m *Memory) Create(ctx context.Context, user *openapi.User) (int, error) {
	if user.Username == "" {
		return 0, ErrUsernameRequired
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	if _, ok := m.users[user.Username]; ok {
		return 0, ErrAlreadyExists
	}

	m.users[user.Username] = *user

	return len(m.users), nil
}

func (m *Memory) Get(ctx context.Context, username string) (*openapi.User, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	user, ok := m.users[username]
	if !ok {
		return nil, ErrNotFound
	}

	return &user, nil
}

func (m *Memory) Update(ctx context.Context, username string, update *openapi.UserWrite) (int, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	user, ok := m.users[username]
	if !ok {
		return 0, ErrNotFound
	}

	user.Merge(update)

	m.users[username] = user

	return len(m.users), nil
}

func (m *Memory) Delete(ctx context.Context, username string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if _, ok := m.users[username]; !ok {
		return ErrNotFound
	}

	delete(m.users, username)

	return nil
}

func (m *Memory) Count(ctx context.Context) int {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return len(m.users)
}
