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

package server

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/petstore/pkg/openapi"
	"github.com/unikorn-cloud/petstore/pkg/server/handler"
	"github.com/unikorn-cloud/petstore/pkg/server/handler/users"
	"github.com/unikorn-cloud/petstore/pkg/server/middleware"
	"github.com/unikorn-cloud/petstore/pkg/server/util"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// Server is the mock pet store service.
type Server struct {
	// Options are server specific options e.g. listener address etc.
	Options Options

	// ZapOptions configure logging.
	ZapOptions zap.Options

	// HandlerOptions sets options for the HTTP handler.
	HandlerOptions handler.Options
}

func (s *Server) AddFlags(goflags *flag.FlagSet, flags *pflag.FlagSet) {
	s.ZapOptions.BindFlags(goflags)

	s.Options.AddFlags(flags)
	s.HandlerOptions.AddFlags(flags)
}

func (s *Server) SetupLogging() {
	log.SetLogger(zap.New(zap.UseFlagOptions(&s.ZapOptions)))
}

// Handler builds the complete router over the given store.
func (s *Server) Handler(store users.Store) (http.Handler, error) {
	if _, err := openapi.GetSwagger(); err != nil {
		return nil, err
	}

	handlerInterface, err := handler.New(store, &s.HandlerOptions)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.NotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		util.WriteError(w, r, http.StatusNotFound, "route not found")
	}))
	router.MethodNotAllowed(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		util.WriteError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}))

	router.Get("/health", handlerInterface.Health)

	chiServerOptions := openapi.ChiServerOptions{
		BaseURL:    strings.TrimSuffix(s.Options.BasePath, "/"),
		BaseRouter: router,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			util.WriteError(w, r, http.StatusBadRequest, err.Error())
		},
	}

	return openapi.HandlerWithOptions(handlerInterface, chiServerOptions), nil
}

func (s *Server) GetServer(store users.Store) (*http.Server, error) {
	h, err := s.Handler(store)
	if err != nil {
		return nil, err
	}

	server := &http.Server{
		Addr:              s.Options.ListenAddress,
		ReadTimeout:       s.Options.ReadTimeout,
		ReadHeaderTimeout: s.Options.ReadHeaderTimeout,
		WriteTimeout:      s.Options.WriteTimeout,
		Handler:           h,
	}

	return server, nil
}

// Run serves until the context is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, store users.Store) error {
	logger := log.FromContext(ctx)

	server, err := s.GetServer(store)
	if err != nil {
		return err
	}

	errs := make(chan error, 1)

	go func() {
		logger.Info("listening", "address", server.Addr, "basePath", s.Options.BasePath)

		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.Options.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	return nil
}
