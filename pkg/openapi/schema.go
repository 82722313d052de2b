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

package openapi

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// ErrSchemaNotFound is returned when a named component schema does not
// exist in the API document.
var ErrSchemaNotFound = errors.New("schema not found")

//go:embed server.spec.yaml
var spec []byte

var (
	//nolint:gochecknoglobals
	loadOnce sync.Once
	//nolint:gochecknoglobals
	loaded *openapi3.T
	//nolint:gochecknoglobals
	loadErr error
)

// Schema component names.
const (
	SchemaUser        = "user"
	SchemaUserWrite   = "userWrite"
	SchemaAPIResponse = "apiResponse"
	SchemaHealth      = "health"
)

// GetSwagger returns the parsed and validated API document.  The document is
// loaded once and shared, callers must not modify it.
func GetSwagger() (*openapi3.T, error) {
	loadOnce.Do(func() {
		loader := openapi3.NewLoader()

		doc, err := loader.LoadFromData(spec)
		if err != nil {
			loadErr = fmt.Errorf("loading openapi document: %w", err)
			return
		}

		if err := doc.Validate(loader.Context); err != nil {
			loadErr = fmt.Errorf("validating openapi document: %w", err)
			return
		}

		loaded = doc
	})

	return loaded, loadErr
}

// ValidateJSON checks a raw JSON payload against the named component schema.
func ValidateJSON(name string, data []byte) error {
	doc, err := GetSwagger()
	if err != nil {
		return err
	}

	ref, ok := doc.Components.Schemas[name]
	if !ok || ref.Value == nil {
		return fmt.Errorf("%w: %s", ErrSchemaNotFound, name)
	}

	var value any

	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("decoding payload: %w", err)
	}

	if err := ref.Value.VisitJSON(value); err != nil {
		return fmt.Errorf("payload does not match schema %s: %w", name, err)
	}

	return nil
}
