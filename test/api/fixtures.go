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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/petstore/pkg/openapi"
)

// CreateUserWithCleanup creates a user, checks it was accepted and schedules
// a best effort delete.
func CreateUserWithCleanup(client *APIClient, ctx context.Context, user openapi.User) *Response {
	resp, err := client.CreateUser(ctx, user)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK), "creating user %s: %s", user.Username, resp.Text())

	GinkgoWriter.Printf("Created user: %s\n", user.Username)

	ScheduleUserCleanup(client, ctx, user.Username)

	return resp
}

// ScheduleUserCleanup deletes the user once the spec finishes, whether it
// passes or fails.  Failures are logged, never propagated.
func ScheduleUserCleanup(client *APIClient, ctx context.Context, username string) {
	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up user: %s\n", username)

		resp, err := client.DeleteUser(context.WithoutCancel(ctx), username, AllowFailure(), ExpectStatus(0))

		switch {
		case err != nil:
			GinkgoWriter.Printf("Warning: Failed to delete user %s: %v\n", username, err)
		case resp.StatusCode == http.StatusOK:
			GinkgoWriter.Printf("Successfully deleted user: %s\n", username)
		default:
			GinkgoWriter.Printf("User %s already gone (status: %d)\n", username, resp.StatusCode)
		}
	})
}

// ExpectEnvelope decodes a status envelope and checks its code.
func ExpectEnvelope(resp *Response, code int32) *openapi.ApiResponse {
	Expect(resp.ValidateSchema(openapi.SchemaAPIResponse)).To(Succeed(), "body: %s", resp.Text())

	envelope, err := resp.Envelope()
	Expect(err).NotTo(HaveOccurred())
	Expect(envelope.Code).To(Equal(code), "envelope: %+v", envelope)

	return envelope
}

// ExpectUser decodes a user record and checks it matches what was submitted.
func ExpectUser(resp *Response, expected openapi.User) *openapi.User {
	Expect(resp.StatusCode).To(Equal(http.StatusOK), "body: %s", resp.Text())
	Expect(resp.ValidateSchema(openapi.SchemaUser)).To(Succeed(), "body: %s", resp.Text())

	user, err := resp.User()
	Expect(err).NotTo(HaveOccurred())
	Expect(user.Username).To(Equal(expected.Username))
	Expect(user.Email).To(Equal(expected.Email))

	return user
}
