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

//nolint:revive
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	coreutil "github.com/unikorn-cloud/core/pkg/server/util"

	"github.com/unikorn-cloud/petstore/pkg/openapi"
	"github.com/unikorn-cloud/petstore/pkg/server/handler/users"
	"github.com/unikorn-cloud/petstore/pkg/server/util"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

type Handler struct {
	// store holds the user records.
	store users.Store

	// options allows behaviour to be defined on the CLI.
	options *Options
}

// Ensure the interface is implemented.
var _ openapi.ServerInterface = &Handler{}

func New(store users.Store, options *Options) (*Handler, error) {
	h := &Handler{
		store:   store,
		options: options,
	}

	return h, nil
}

func (h *Handler) setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

// handleStoreError maps store errors onto envelopes.
func (h *Handler) handleStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, users.ErrNotFound):
		util.WriteEnvelope(w, r, http.StatusNotFound, 1, openapi.ResponseTypeError, "User not found")
	case errors.Is(err, users.ErrUsernameRequired):
		util.WriteError(w, r, http.StatusBadRequest, "Username is required")
	default:
		log.FromContext(r.Context()).Error(err, "store operation failed")
		util.WriteError(w, r, http.StatusInternalServerError, err.Error())
	}
}

// readUserWrite decodes a user body and checks any supplied status.
func readUserWrite(r *http.Request, request *openapi.UserWrite) error {
	if err := util.ReadJSONBody(r, request); err != nil {
		return err
	}

	if request.UserStatus != nil {
		if err := openapi.ValidateUserStatus(*request.UserStatus); err != nil {
			return err
		}
	}

	return nil
}

func (h *Handler) success(w http.ResponseWriter, r *http.Request, message string) {
	h.setUncacheable(w)
	util.WriteEnvelope(w, r, http.StatusOK, http.StatusOK, openapi.ResponseTypeUnknown, message)
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	request := &openapi.UserWrite{}

	if err := readUserWrite(r, request); err != nil {
		util.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user := request.ToUser()

	count, err := h.store.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, users.ErrAlreadyExists) {
			util.WriteError(w, r, http.StatusBadRequest, "User '"+user.Username+"' already exists")
			return
		}

		h.handleStoreError(w, r, err)

		return
	}

	log.FromContext(ctx).Info("user created", "username", user.Username, "count", count)

	h.success(w, r, strconv.Itoa(count))
}

func (h *Handler) GetUserByName(w http.ResponseWriter, r *http.Request, username openapi.UsernameParameter) {
	user, err := h.store.Get(r.Context(), username)
	if err != nil {
		h.handleStoreError(w, r, err)
		return
	}

	h.setUncacheable(w)
	coreutil.WriteJSONResponse(w, r, http.StatusOK, user)
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request, username openapi.UsernameParameter) {
	ctx := r.Context()

	request := &openapi.UserWrite{}

	if err := readUserWrite(r, request); err != nil {
		util.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	count, err := h.store.Update(ctx, username, request)
	if err != nil {
		h.handleStoreError(w, r, err)
		return
	}

	log.FromContext(ctx).Info("user updated", "username", username)

	h.success(w, r, strconv.Itoa(count))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request, username openapi.UsernameParameter) {
	ctx := r.Context()

	if err := h.store.Delete(ctx, username); err != nil {
		h.handleStoreError(w, r, err)
		return
	}

	log.FromContext(ctx).Info("user deleted", "username", username)

	h.success(w, r, username)
}

func (h *Handler) LoginUser(w http.ResponseWriter, r *http.Request, params openapi.LoginUserParams) {
	if params.Username == nil || *params.Username == "" || params.Password == nil || *params.Password == "" {
		util.WriteError(w, r, http.StatusBadRequest, "Username and password are required")
		return
	}

	// Credentials are deliberately not checked, the remote service
	// accepts any pair.
	expires := time.Now().Add(h.options.SessionLifetime).Unix()

	w.Header().Set(openapi.HeaderRateLimit, strconv.Itoa(h.options.RateLimit))
	w.Header().Set(openapi.HeaderExpiresAfter, strconv.FormatInt(expires, 10))

	h.success(w, r, openapi.SessionTokenPrefix+uuid.NewString())
}

func (h *Handler) LoginUserHead(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) LogoutUser(w http.ResponseWriter, r *http.Request) {
	h.success(w, r, "ok")
}

// Health reports liveness and the number of records held.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.setUncacheable(w)
	coreutil.WriteJSONResponse(w, r, http.StatusOK, &openapi.Health{
		Status:     openapi.HealthStatusHealthy,
		UsersCount: h.store.Count(r.Context()),
	})
}
