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

package generator

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/unikorn-cloud/petstore/pkg/openapi"
)

// InvalidKind selects a flavour of deliberately broken user record.
type InvalidKind string

const (
	// InvalidEmptyFields produces a record with every string blank.
	InvalidEmptyFields InvalidKind = "empty_fields"
	// InvalidMissingUsername produces an otherwise valid record without a key.
	InvalidMissingUsername InvalidKind = "missing_username"
)

const (
	minID = 1000
	maxID = 99999
)

// Generator produces random user records.
type Generator struct {
	faker *gofakeit.Faker
}

type Option func(*options)

type options struct {
	seed uint64
}

// WithSeed makes output reproducible, zero selects a random seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

func New(opts ...Option) *Generator {
	o := &options{}

	for _, opt := range opts {
		opt(o)
	}

	return &Generator{
		faker: gofakeit.New(o.seed),
	}
}

// Username returns a name that is very unlikely to collide with another run.
func (g *Generator) Username(prefix string) string {
	name := strings.ToLower(g.faker.Username())

	if prefix == "" {
		return fmt.Sprintf("%s_%s", name, g.faker.Numerify("######"))
	}

	return fmt.Sprintf("%s_%s_%s", prefix, name, g.faker.Numerify("######"))
}

// User returns a populated record, a random username is used when none is given.
func (g *Generator) User(username string) openapi.User {
	if username == "" {
		username = g.faker.Username()
	}

	return openapi.User{
		Id:         int64(g.faker.IntRange(minID, maxID)),
		Username:   username,
		FirstName:  g.faker.FirstName(),
		LastName:   g.faker.LastName(),
		Email:      g.faker.Email(),
		Password:   g.faker.Password(true, true, true, false, false, 12),
		Phone:      g.faker.Phone(),
		UserStatus: openapi.UserStatuses[g.faker.IntRange(0, len(openapi.UserStatuses)-1)],
	}
}

// Users returns count records with distinct usernames.
func (g *Generator) Users(count int) []openapi.User {
	if count <= 0 {
		return []openapi.User{}
	}

	issued := set.New[string]()

	result := make([]openapi.User, 0, count)

	for len(result) < count {
		username := g.Username("")
		if issued.Contains(username) {
			continue
		}

		issued.Add(username)

		result = append(result, g.User(username))
	}

	return result
}

// InvalidUser returns a record the service is expected to reject or treat
// specially.
func (g *Generator) InvalidUser(kind InvalidKind) (openapi.User, error) {
	switch kind {
	case InvalidEmptyFields:
		return openapi.User{}, nil
	case InvalidMissingUsername:
		user := g.User("unused")
		user.Username = ""

		return user, nil
	}

	return openapi.User{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
}
