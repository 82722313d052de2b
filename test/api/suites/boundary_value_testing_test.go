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
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/petstore/pkg/openapi"
	"github.com/unikorn-cloud/petstore/test/api"
)

var _ = Describe("Boundary Value Testing", func() {
	Context("When usernames sit at the edges of what is accepted", func() {
		DescribeTable("should round trip the username",
			func(suffix string) {
				username := gen.Username("edge") + suffix

				user := api.NewUserPayload(gen, "").WithUsername(username).Build()
				api.CreateUserWithCleanup(client, ctx, user)

				resp, err := client.GetUser(ctx, username)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectUser(resp, user)
			},
			Entry("single character suffix", "x"),
			Entry("dots and dashes", ".with-dash"),
			Entry("at sign", "@example"),
			Entry("long name", strings.Repeat("a", 200)),
		)

		It("should escape usernames that need encoding", func() {
			requireMock()

			username := gen.Username("space") + " name"

			user := api.NewUserPayload(gen, "").WithUsername(username).Build()
			api.CreateUserWithCleanup(client, ctx, user)

			resp, err := client.GetUser(ctx, username)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectUser(resp, user)
		})
	})

	Context("When user status is at its limits", func() {
		DescribeTable("should store every defined status",
			func(status int32) {
				user := api.NewUserPayload(gen, "status").WithUserStatus(status).Build()
				api.CreateUserWithCleanup(client, ctx, user)

				resp, err := client.GetUser(ctx, user.Username)
				Expect(err).NotTo(HaveOccurred())

				fetched := api.ExpectUser(resp, user)
				Expect(fetched.UserStatus).To(Equal(status))
			},
			Entry("lowest", openapi.UserStatuses[0]),
			Entry("highest", openapi.UserStatuses[len(openapi.UserStatuses)-1]),
		)

		It("should reject a status outside the defined range", func() {
			requireMock()

			payload := map[string]any{
				"username":   gen.Username("badstatus"),
				"userStatus": 42,
			}

			resp, err := client.CreateUser(ctx, payload, api.ExpectStatus(http.StatusBadRequest))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})

	Context("When optional fields are empty", func() {
		It("should accept a record with only a username", func() {
			username := gen.Username("minimal")
			api.ScheduleUserCleanup(client, ctx, username)

			resp, err := client.CreateUser(ctx, map[string]any{"username": username})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			resp, err = client.GetUser(ctx, username)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
		})
	})
})
