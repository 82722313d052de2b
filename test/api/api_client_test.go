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

//nolint:revive // dot imports are standard for Ginkgo/Gomega test code
package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/petstore/pkg/openapi"
	"github.com/unikorn-cloud/petstore/test/api"
)

// setenv sets a variable for the duration of the spec.
func setenv(key, value string) {
	previous, ok := os.LookupEnv(key)

	Expect(os.Setenv(key, value)).To(Succeed())

	DeferCleanup(func() {
		if ok {
			Expect(os.Setenv(key, previous)).To(Succeed())
			return
		}

		Expect(os.Unsetenv(key)).To(Succeed())
	})
}

var _ = Describe("Configuration", func() {
	It("should honour environment overrides", func() {
		setenv("API_BASE_URL", "http://localhost:5000/v2")
		setenv("USE_MOCK_SERVER", "false")
		setenv("REQUEST_TIMEOUT", "3s")
		setenv("FAKER_SEED", "42")
		setenv("REPORT_DIR", "")

		config, err := api.LoadTestConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(config.BaseURL).To(Equal("http://localhost:5000/v2"))
		Expect(config.UseMockServer).To(BeFalse())
		Expect(config.RequestTimeout).To(Equal(3 * time.Second))
		Expect(config.FakerSeed).To(Equal(uint64(42)))
		Expect(config.ReportDir).To(BeEmpty())
	})

	It("should reject a relative base URL against a real service", func() {
		setenv("API_BASE_URL", "petstore/v2")
		setenv("USE_MOCK_SERVER", "false")

		_, err := api.LoadTestConfig()
		Expect(err).To(MatchError(api.ErrConfiguration))
	})

	It("should reject a non-positive request timeout", func() {
		setenv("REQUEST_TIMEOUT", "0s")

		_, err := api.LoadTestConfig()
		Expect(err).To(MatchError(api.ErrConfiguration))
	})
})

var _ = Describe("APIClient", func() {
	var (
		ctx    context.Context
		mock   *api.MockServer
		client *api.APIClient
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error

		mock, err = api.StartMockServer()
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(mock.Close)

		client, err = api.NewAPIClient(mock.BaseURL())
		Expect(err).NotTo(HaveOccurred())
	})

	Context("When the request succeeds", func() {
		It("should record the exchange", func() {
			user := openapi.User{Username: "recorder", Email: "recorder@example.com"}

			resp, err := client.CreateUser(ctx, user)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.Method).To(Equal(http.MethodPost))
			Expect(resp.URL).To(Equal(mock.BaseURL() + "/user"))
			Expect(resp.RequestBody).To(ContainSubstring(`"username":"recorder"`))
			Expect(resp.Synthetic).To(BeFalse())
			Expect(mock.UserCount()).To(Equal(1))
		})

		It("should decode user records", func() {
			user := openapi.User{Username: "decoded", FirstName: "Dee"}

			_, err := client.CreateUser(ctx, user)
			Expect(err).NotTo(HaveOccurred())

			resp, err := client.GetUser(ctx, "decoded")
			Expect(err).NotTo(HaveOccurred())

			fetched, err := resp.User()
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.FirstName).To(Equal("Dee"))
			Expect(resp.ValidateSchema(openapi.SchemaUser)).To(Succeed())
		})
	})

	Context("When the status differs from the expectation", func() {
		It("should return the response rather than an error", func() {
			resp, err := client.GetUser(ctx, "nobody")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))

			envelope, err := resp.Envelope()
			Expect(err).NotTo(HaveOccurred())
			Expect(envelope.Message).To(Equal("User not found"))
		})
	})

	Context("When the service is unreachable", func() {
		var unreachable *api.APIClient

		BeforeEach(func() {
			closed := httptest.NewServer(http.NotFoundHandler())
			closed.Close()

			var err error

			unreachable, err = api.NewAPIClient(closed.URL + "/v2")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should return an error", func() {
			resp, err := unreachable.DeleteUser(ctx, "anyone")
			Expect(err).To(HaveOccurred())
			Expect(resp).To(BeNil())
		})

		It("should synthesize a not found response when failures are allowed", func() {
			resp, err := unreachable.DeleteUser(ctx, "anyone", api.AllowFailure())
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Synthetic).To(BeTrue())
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
			Expect(resp.Text()).To(Equal(`{"error": "Not Found"}`))
		})

		It("should give up waiting for health", func() {
			err := unreachable.WaitForHealthy(ctx, 10*time.Millisecond, 50*time.Millisecond)
			Expect(err).To(MatchError(api.ErrUnhealthy))
		})
	})

	Context("When checking health", func() {
		It("should read the health endpoint from the service root", func() {
			health, err := client.Health(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(health.Status).To(Equal(openapi.HealthStatusHealthy))
			Expect(health.UsersCount).To(BeZero())

			Expect(client.WaitForHealthy(ctx, 10*time.Millisecond, time.Second)).To(Succeed())
		})
	})

	Context("When logging in", func() {
		It("should send credentials as query parameters", func() {
			resp, err := client.Login(ctx, "a b", "p&q")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.URL).To(ContainSubstring("username=a+b"))
			Expect(resp.Header.Get(openapi.HeaderRateLimit)).To(Equal("1000"))
		})
	})
})
