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

package util

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	coreutil "github.com/unikorn-cloud/core/pkg/server/util"

	"github.com/unikorn-cloud/petstore/pkg/openapi"
)

// WriteEnvelope writes a status envelope.
func WriteEnvelope(w http.ResponseWriter, r *http.Request, status int, code int32, kind, message string) {
	coreutil.WriteJSONResponse(w, r, status, &openapi.ApiResponse{
		Code:    code,
		Type:    kind,
		Message: message,
	})
}

// WriteError writes an error envelope whose code mirrors the HTTP status.
func WriteError(w http.ResponseWriter, r *http.Request, status int, message string) {
	WriteEnvelope(w, r, status, int32(status), openapi.ResponseTypeError, message) //nolint:gosec
}

// ReadJSONBody decodes a JSON request body.  An empty body is treated as an
// empty object and leaves v untouched.
func ReadJSONBody(r *http.Request, v any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("%w: unable to read request body", err)
	}

	if len(body) == 0 {
		return nil
	}

	r.Body = io.NopCloser(bytes.NewReader(body))

	return coreutil.ReadJSONBody(r, v)
}
