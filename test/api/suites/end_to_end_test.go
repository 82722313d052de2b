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

var _ = Describe("End to End", func() {
	Context("When a user goes through its whole lifecycle", func() {
		It("should create, log in, update, log out and delete", func() {
			user := api.NewUserPayload(gen, "e2e").Build()

			By("creating the user")
			api.CreateUserWithCleanup(client, ctx, user)

			By("reading it back")
			resp, err := client.GetUser(ctx, user.Username)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectUser(resp, user)

			By("logging in")
			resp, err = client.Login(ctx, user.Username, user.Password)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			By("updating the profile")
			update := api.NewUserUpdate().
				WithFirstName("Lifecycle").
				WithPhone("555-0100").
				Build()

			resp, err = client.UpdateUser(ctx, user.Username, update)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			resp, err = client.GetUser(ctx, user.Username)
			Expect(err).NotTo(HaveOccurred())

			fetched := api.ExpectUser(resp, user)
			Expect(fetched.FirstName).To(Equal("Lifecycle"))
			Expect(fetched.Phone).To(Equal("555-0100"))

			By("logging out")
			resp, err = client.Logout(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			By("deleting the user")
			resp, err = client.DeleteUser(ctx, user.Username)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			resp, err = client.GetUser(ctx, user.Username, api.ExpectStatus(http.StatusNotFound))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})
	})

	Context("When several users are managed in one session", func() {
		It("should keep each record independent", func() {
			users := gen.Users(3)

			for _, user := range users {
				api.CreateUserWithCleanup(client, ctx, user)
			}

			update := api.NewUserUpdate().WithLastName("Changed").Build()

			resp, err := client.UpdateUser(ctx, users[0].Username, update)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			for i, user := range users {
				resp, err := client.GetUser(ctx, user.Username)
				Expect(err).NotTo(HaveOccurred())

				fetched := api.ExpectUser(resp, user)

				if i == 0 {
					Expect(fetched.LastName).To(Equal("Changed"))
				} else {
					Expect(fetched.LastName).To(Equal(user.LastName))
				}
			}
		})
	})
})
