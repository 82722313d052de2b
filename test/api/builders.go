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

package api

import (
	"github.com/unikorn-cloud/petstore/pkg/generator"
	"github.com/unikorn-cloud/petstore/pkg/openapi"

	"k8s.io/utils/ptr"
)

// UserPayloadBuilder builds user payloads for testing.
type UserPayloadBuilder struct {
	user openapi.User
}

// NewUserPayload creates a builder seeded with a random user whose name
// starts with the prefix.
func NewUserPayload(g *generator.Generator, prefix string) *UserPayloadBuilder {
	return &UserPayloadBuilder{
		user: g.User(g.Username(prefix)),
	}
}

// WithUsername sets the username.
func (b *UserPayloadBuilder) WithUsername(username string) *UserPayloadBuilder {
	b.user.Username = username
	return b
}

// WithPassword sets the password.
func (b *UserPayloadBuilder) WithPassword(password string) *UserPayloadBuilder {
	b.user.Password = password
	return b
}

// WithEmail sets the email address.
func (b *UserPayloadBuilder) WithEmail(email string) *UserPayloadBuilder {
	b.user.Email = email
	return b
}

// WithFirstName sets the first name.
func (b *UserPayloadBuilder) WithFirstName(firstName string) *UserPayloadBuilder {
	b.user.FirstName = firstName
	return b
}

// WithUserStatus sets the status code.
func (b *UserPayloadBuilder) WithUserStatus(status int32) *UserPayloadBuilder {
	b.user.UserStatus = status
	return b
}

// Build returns the completed user payload.
func (b *UserPayloadBuilder) Build() openapi.User {
	return b.user
}

// UserUpdateBuilder builds partial update payloads.
type UserUpdateBuilder struct {
	update openapi.UserWrite
}

func NewUserUpdate() *UserUpdateBuilder {
	return &UserUpdateBuilder{}
}

// WithFirstName sets the first name.
func (b *UserUpdateBuilder) WithFirstName(firstName string) *UserUpdateBuilder {
	b.update.FirstName = ptr.To(firstName)
	return b
}

// WithLastName sets the last name.
func (b *UserUpdateBuilder) WithLastName(lastName string) *UserUpdateBuilder {
	b.update.LastName = ptr.To(lastName)
	return b
}

// WithEmail sets the email address.
func (b *UserUpdateBuilder) WithEmail(email string) *UserUpdateBuilder {
	b.update.Email = ptr.To(email)
	return b
}

// WithPhone sets the phone number.
func (b *UserUpdateBuilder) WithPhone(phone string) *UserUpdateBuilder {
	b.update.Phone = ptr.To(phone)
	return b
}

// WithUserStatus sets the status code.
func (b *UserUpdateBuilder) WithUserStatus(status int32) *UserUpdateBuilder {
	b.update.UserStatus = ptr.To(status)
	return b
}

// Build returns the completed update payload.
func (b *UserUpdateBuilder) Build() openapi.UserWrite {
	return b.update
}
