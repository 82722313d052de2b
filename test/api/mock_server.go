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
	"context"
	"net/http/httptest"
	"time"

	"github.com/unikorn-cloud/petstore/pkg/server"
	"github.com/unikorn-cloud/petstore/pkg/server/handler"
	"github.com/unikorn-cloud/petstore/pkg/server/handler/users"
)

// MockServer is an in-process instance of the mock pet store.
type MockServer struct {
	server *httptest.Server
	store  *users.Memory
}

// StartMockServer serves the mock on a loopback port.
func StartMockServer() (*MockServer, error) {
	s := &server.Server{
		Options: server.Options{
			BasePath: "/v2",
		},
		HandlerOptions: handler.Options{
			RateLimit:       1000,
			SessionLifetime: time.Hour,
		},
	}

	store := users.NewMemory()

	h, err := s.Handler(store)
	if err != nil {
		return nil, err
	}

	return &MockServer{
		server: httptest.NewServer(h),
		store:  store,
	}, nil
}

// BaseURL is the URL of the user API.
func (m *MockServer) BaseURL() string {
	return m.server.URL + "/v2"
}

// UserCount is the number of records held, read directly from the store.
func (m *MockServer) UserCount() int {
	return m.store.Count(context.Background())
}

// Close stops the server.
func (m *MockServer) Close() {
	m.server.Close()
}
