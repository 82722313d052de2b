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

	"github.com/unikorn-cloud/petstore/test/api"
)

var _ = Describe("Error Handling and Edge Cases", func() {
	Context("When the service receives malformed requests", func() {
		Describe("Given a body that is not a user object", func() {
			It("should reject it as a client error", func() {
				requireMock()

				resp, err := client.CreateUser(ctx, []string{"not", "a", "user"}, api.ExpectStatus(http.StatusBadRequest))
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
				api.ExpectEnvelope(resp, http.StatusBadRequest)
			})
		})

		Describe("Given an unknown route", func() {
			It("should return not found", func() {
				resp, err := client.Do(ctx, http.MethodGet, "/does-not-exist", api.ExpectStatus(http.StatusNotFound))
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
			})
		})

		Describe("Given an unsupported method", func() {
			It("should not succeed", func() {
				resp, err := client.Do(ctx, http.MethodPatch, api.NewEndpoints().CreateUser(), api.ExpectStatus(0))
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(BeNumerically(">=", http.StatusBadRequest))
			})
		})
	})

	Context("When operating on records that are gone", func() {
		It("should report not found for every operation", func() {
			user := api.NewUserPayload(gen, "gone").Build()
			api.CreateUserWithCleanup(client, ctx, user)

			resp, err := client.DeleteUser(ctx, user.Username)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			resp, err = client.GetUser(ctx, user.Username, api.ExpectStatus(http.StatusNotFound))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))

			resp, err = client.DeleteUser(ctx, user.Username, api.ExpectStatus(http.StatusNotFound))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})
	})

	Context("When the service cannot be reached", func() {
		var unreachable *api.APIClient

		BeforeEach(func() {
			var err error

			unreachable, err = api.NewAPIClient("http://127.0.0.1:1/v2")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should surface transport errors by default", func() {
			_, err := unreachable.GetUser(ctx, "anyone")
			Expect(err).To(HaveOccurred())
		})

		It("should synthesize a not found response when failures are allowed", func() {
			resp, err := unreachable.GetUser(ctx, "anyone", api.AllowFailure())
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Synthetic).To(BeTrue())
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
			Expect(resp.Text()).To(Equal(`{"error": "Not Found"}`))
		})
	})
})
