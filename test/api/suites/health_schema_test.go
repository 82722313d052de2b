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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/petstore/pkg/openapi"
	"github.com/unikorn-cloud/petstore/test/api"
)

var _ = Describe("Health and Schema", func() {
	Context("When checking service health", func() {
		It("should report healthy with a user count", func() {
			requireMock()

			health, err := client.Health(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(health.Status).To(Equal(openapi.HealthStatusHealthy))
			Expect(health.UsersCount).To(Equal(mock.UserCount()))
		})

		It("should track records as they come and go", func() {
			requireMock()

			before, err := client.Health(ctx)
			Expect(err).NotTo(HaveOccurred())

			user := api.NewUserPayload(gen, "health").Build()
			api.CreateUserWithCleanup(client, ctx, user)

			after, err := client.Health(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(after.UsersCount).To(Equal(before.UsersCount + 1))
		})
	})

	Context("When validating response documents", func() {
		It("should return user records matching the published schema", func() {
			user := api.NewUserPayload(gen, "schema").Build()
			api.CreateUserWithCleanup(client, ctx, user)

			resp, err := client.GetUser(ctx, user.Username)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.ValidateSchema(openapi.SchemaUser)).To(Succeed())
		})

		It("should return status envelopes matching the published schema", func() {
			resp, err := client.Logout(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.ValidateSchema(openapi.SchemaAPIResponse)).To(Succeed())
		})

		It("should mark JSON responses with the correct content type", func() {
			resp, err := client.Logout(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Header.Get("Content-Type")).To(HavePrefix("application/json"))
		})
	})
})
