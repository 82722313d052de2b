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

package openapi

import (
	"errors"
	"slices"
)

//go:generate go tool oapi-codegen -config types.config.yaml server.spec.yaml
//go:generate go tool oapi-codegen -config router.config.yaml server.spec.yaml

// Envelope types.
const (
	ResponseTypeUnknown = "unknown"
	ResponseTypeError   = "error"
)

// HealthStatusHealthy is the only status the service reports.
const HealthStatusHealthy = "healthy"

// Login response headers.
const (
	HeaderRateLimit    = "X-Rate-Limit"
	HeaderExpiresAfter = "X-Expires-After"
)

// SessionTokenPrefix prefixes the message of a successful login.
const SessionTokenPrefix = "logged in user session:"

var ErrInvalidUserStatus = errors.New("invalid user status: must be one of 0, 1, 2 or 3")

// UserStatuses is the enumerated set of user status codes.
//
//nolint:gochecknoglobals
var UserStatuses = []int32{0, 1, 2, 3}

// ValidateUserStatus checks a status code is in the enumerated set.
func ValidateUserStatus(status int32) error {
	if !slices.Contains(UserStatuses, status) {
		return ErrInvalidUserStatus
	}

	return nil
}

// Merge folds every field set in the write request into the user, leaving
// the others untouched.  The username is the record key and is never changed.
func (u *User) Merge(w *UserWrite) {
	if w.Id != nil {
		u.Id = *w.Id
	}

	if w.FirstName != nil {
		u.FirstName = *w.FirstName
	}

	if w.LastName != nil {
		u.LastName = *w.LastName
	}

	if w.Email != nil {
		u.Email = *w.Email
	}

	if w.Password != nil {
		u.Password = *w.Password
	}

	if w.Phone != nil {
		u.Phone = *w.Phone
	}

	if w.UserStatus != nil {
		u.UserStatus = *w.UserStatus
	}
}

// ToUser converts a write request into a full record, absent fields take
// their zero value.
func (w *UserWrite) ToUser() User {
	var u User

	if w.Username != nil {
		u.Username = *w.Username
	}

	u.Merge(w)

	return u
}
