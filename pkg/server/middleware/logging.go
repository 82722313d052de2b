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

package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Logger attaches a request scoped logger to the context and logs the outcome
// of every request.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.Log.WithName("http").WithValues(
			"method", r.Method,
			"path", r.URL.Path,
			"requestID", chimiddleware.GetReqID(r.Context()),
		)

		ctx := log.IntoContext(r.Context(), logger)

		writer := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		start := time.Now()

		next.ServeHTTP(writer, r.WithContext(ctx))

		logger.V(1).Info("request handled", "status", writer.Status(), "bytes", writer.BytesWritten(), "duration", time.Since(start))
	})
}
