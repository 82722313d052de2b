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
	"fmt"
	"net/url"
)

// Endpoints contains all API endpoint patterns, relative to the base URL.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// User management endpoints.
func (e *Endpoints) CreateUser() string {
	return "/user"
}

func (e *Endpoints) GetUser(username string) string {
	return fmt.Sprintf("/user/%s", url.PathEscape(username))
}

func (e *Endpoints) UpdateUser(username string) string {
	return fmt.Sprintf("/user/%s", url.PathEscape(username))
}

func (e *Endpoints) DeleteUser(username string) string {
	return fmt.Sprintf("/user/%s", url.PathEscape(username))
}

// Session endpoints.
func (e *Endpoints) Login() string {
	return "/user/login"
}

func (e *Endpoints) Logout() string {
	return "/user/logout"
}

// HealthCheck is served at the root of the mock, not under the base path.
func (e *Endpoints) HealthCheck() string {
	return "/health"
}
