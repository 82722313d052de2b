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
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/spjmurray/go-util/pkg/set"

	"github.com/unikorn-cloud/petstore/pkg/openapi"
	"github.com/unikorn-cloud/petstore/test/api"
)

const concurrentUsers = 10

var _ = Describe("Concurrency and Performance", func() {
	Context("When performing concurrent operations", func() {
		Describe("Given multiple simultaneous user creation requests", func() {
			It("should create every user exactly once", func() {
				users := gen.Users(concurrentUsers)

				requested := make([]string, len(users))
				for i := range users {
					requested[i] = users[i].Username
					api.ScheduleUserCleanup(client, ctx, users[i].Username)
				}

				var (
					wg      sync.WaitGroup
					lock    sync.Mutex
					created []string
				)

				for _, user := range users {
					wg.Add(1)

					go func(user openapi.User) {
						defer GinkgoRecover()
						defer wg.Done()

						resp, err := client.CreateUser(ctx, user)
						Expect(err).NotTo(HaveOccurred())

						if resp.StatusCode == http.StatusOK {
							lock.Lock()
							created = append(created, user.Username)
							lock.Unlock()
						}
					}(user)
				}

				wg.Wait()

				missing := set.New[string](requested...).Difference(set.New[string](created...))
				for username := range missing.All() {
					Fail("user was not created: " + username)
				}

				for _, user := range users {
					resp, err := client.GetUser(ctx, user.Username)
					Expect(err).NotTo(HaveOccurred())
					api.ExpectUser(resp, user)
				}
			})

			It("should allow only one of several identical creations", func() {
				requireMock()

				user := api.NewUserPayload(gen, "race").Build()
				api.ScheduleUserCleanup(client, ctx, user.Username)

				var (
					wg        sync.WaitGroup
					lock      sync.Mutex
					successes int
				)

				for range concurrentUsers {
					wg.Add(1)

					go func() {
						defer GinkgoRecover()
						defer wg.Done()

						resp, err := client.CreateUser(ctx, user, api.ExpectStatus(0))
						Expect(err).NotTo(HaveOccurred())

						if resp.StatusCode == http.StatusOK {
							lock.Lock()
							successes++
							lock.Unlock()
						}
					}()
				}

				wg.Wait()

				Expect(successes).To(Equal(1))
			})
		})

		Describe("Given concurrent reads and writes", func() {
			It("should always return a complete record", func() {
				user := api.NewUserPayload(gen, "rw").Build()
				api.CreateUserWithCleanup(client, ctx, user)

				var wg sync.WaitGroup

				for i := range concurrentUsers {
					update := api.NewUserUpdate().WithPhone(gen.Username("phone")).Build()

					wg.Add(2)

					go func() {
						defer GinkgoRecover()
						defer wg.Done()

						resp, err := client.UpdateUser(ctx, user.Username, update)
						Expect(err).NotTo(HaveOccurred())
						Expect(resp.StatusCode).To(Equal(http.StatusOK), "update %d", i)
					}()

					go func() {
						defer GinkgoRecover()
						defer wg.Done()

						resp, err := client.GetUser(ctx, user.Username)
						Expect(err).NotTo(HaveOccurred())
						api.ExpectUser(resp, user)
					}()
				}

				wg.Wait()
			})
		})
	})

	Context("When measuring response times", func() {
		It("should answer reads within the request timeout", func() {
			user := api.NewUserPayload(gen, "latency").Build()
			api.CreateUserWithCleanup(client, ctx, user)

			resp, err := client.GetUser(ctx, user.Username)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Duration).To(BeNumerically("<", config.RequestTimeout))
		})
	})
})
