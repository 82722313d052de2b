/*
Copyright 2024-2025 the Unikorn Authors.

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

// Package api provides integration test utilities for the Pet Store user API.
//
// # Separate Client Implementation
//
// This package intentionally maintains its own HTTP client (APIClient)
// rather than a generated one:
//
// 1. **API Contract Validation**: Having an independent client implementation
// serves as a form of triangulation on API correctness. Responses are checked
// against the embedded OpenAPI document, so drift between the service and the
// document shows up as test failures.
//
// 2. **Test-Specific Features**: The custom client includes features tailored
// for integration testing:
//   - W3C trace context propagation for request correlation
//   - Request and response logging to the Ginkgo writer
//   - Unexpected status codes are warnings, assertions stay in the specs
//   - Suppressible transport errors for best effort cleanup
//   - Direct access to HTTP status codes and response bodies
//
// # Targets
//
// By default the suites run against an in-process mock (see StartMockServer),
// set USE_MOCK_SERVER=false and API_BASE_URL to test a real deployment.
package api
