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

//nolint:err113,revive // dynamic errors and naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"

	"github.com/unikorn-cloud/petstore/pkg/openapi"

	"k8s.io/apimachinery/pkg/util/wait"
)

// syntheticNotFoundBody is returned in place of a response when a transport
// error is suppressed.
const syntheticNotFoundBody = `{"error": "Not Found"}`

type APIClient struct {
	baseURL   string
	client    *http.Client
	config    *TestConfig
	endpoints *Endpoints
}

func NewAPIClient(baseURL string) (*APIClient, error) {
	config, err := LoadTestConfig()
	if err != nil {
		return nil, err
	}

	if baseURL == "" {
		baseURL = config.BaseURL
	}

	return newAPIClientWithConfig(config, baseURL), nil
}

func NewAPIClientWithConfig(config *TestConfig) *APIClient {
	return newAPIClientWithConfig(config, config.BaseURL)
}

// common constructor logic.
func newAPIClientWithConfig(config *TestConfig, baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(),
	}
}

// BaseURL returns the URL all user endpoints are relative to.
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// rootURL strips the base path, the health endpoint lives at the root.
func (c *APIClient) rootURL() string {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return c.baseURL
	}

	u.Path = ""
	u.RawPath = ""

	return strings.TrimSuffix(u.String(), "/")
}

// Response is a fully read HTTP response.
type Response struct {
	// Method and URL identify the request.
	Method string
	URL    string
	// RequestBody is what was sent, if anything.
	RequestBody []byte
	// StatusCode is the HTTP status.
	StatusCode int
	// Header is the response header, empty for synthetic responses.
	Header http.Header
	// Body is the response body.
	Body []byte
	// Duration is how long the round trip took.
	Duration time.Duration
	// Synthetic is set when the response was fabricated after a
	// transport error.
	Synthetic bool
}

// JSON decodes the body.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("unmarshaling response body: %w", err)
	}

	return nil
}

// Envelope decodes the body as a status envelope.
func (r *Response) Envelope() (*openapi.ApiResponse, error) {
	envelope := &openapi.ApiResponse{}

	if err := r.JSON(envelope); err != nil {
		return nil, err
	}

	return envelope, nil
}

// User decodes the body as a user record.
func (r *Response) User() (*openapi.User, error) {
	user := &openapi.User{}

	if err := r.JSON(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// ValidateSchema checks the body against a component schema of the API document.
func (r *Response) ValidateSchema(name string) error {
	return openapi.ValidateJSON(name, r.Body)
}

type requestOptions struct {
	body           any
	query          url.Values
	expectedStatus int
	allowFailure   bool
	root           bool
}

// RequestOption modifies a single request.
type RequestOption func(*requestOptions)

// WithBody sends the value JSON encoded.
func WithBody(body any) RequestOption {
	return func(o *requestOptions) {
		o.body = body
	}
}

// WithQuery adds query parameters.
func WithQuery(query url.Values) RequestOption {
	return func(o *requestOptions) {
		o.query = query
	}
}

// ExpectStatus sets the status code that is logged as expected, 0 disables
// the check.  Mismatches are warnings, assertions belong to the caller.
func ExpectStatus(status int) RequestOption {
	return func(o *requestOptions) {
		o.expectedStatus = status
	}
}

// AllowFailure replaces transport errors with a synthetic 404 response.
func AllowFailure() RequestOption {
	return func(o *requestOptions) {
		o.allowFailure = true
	}
}

// atRoot resolves the path against the server root rather than the base URL.
func atRoot() RequestOption {
	return func(o *requestOptions) {
		o.root = true
	}
}

// logRequest logs the outgoing request.
func (c *APIClient) logRequest(method, fullURL string, body []byte, query url.Values, traceParent string) {
	if !c.config.LogRequests {
		return
	}

	bodyText := "None"
	if len(body) > 0 {
		bodyText = string(body)
	}

	queryText := "None"
	if len(query) > 0 {
		queryText = query.Encode()
	}

	ginkgo.GinkgoWriter.Printf("[%s %s] REQUEST body=%s params=%s traceparent=%s\n", method, fullURL, bodyText, queryText, traceParent)
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] WARNING UNEXPECTED STATUS expected=%d got=%d body=%s traceparent=%s\n", method, path, expectedStatus, actualStatus, body, traceParent)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	if c.config.DebugLogging {
		ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
	}
}

// generateTraceID creates a new W3C trace ID.
// A fresh trace ID per request lets a failure be matched to server logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	traceID := generateTraceID()
	spanID := generateSpanID()

	return fmt.Sprintf("00-%s-%s-01", traceID, spanID)
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// Do performs a single request.  Transport errors are returned unless
// AllowFailure is set, unexpected status codes are only logged.
//
//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) Do(ctx context.Context, method, path string, opts ...RequestOption) (*Response, error) {
	options := &requestOptions{
		expectedStatus: http.StatusOK,
	}

	for _, opt := range opts {
		opt(options)
	}

	base := c.baseURL
	if options.root {
		base = c.rootURL()
	}

	fullURL := base + path

	if len(options.query) > 0 {
		fullURL += "?" + options.query.Encode()
	}

	var requestBody []byte

	if options.body != nil {
		data, err := json.Marshal(options.body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		requestBody = data
	}

	method = strings.ToUpper(method)

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bytes.NewReader(requestBody))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	c.logRequest(method, fullURL, requestBody, options.query, traceParent)

	response := &Response{
		Method:      method,
		URL:         fullURL,
		RequestBody: requestBody,
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	response.Duration = time.Since(start)

	if err != nil {
		c.logError(method, path, response.Duration, traceParent, err, "http request failed")

		if !options.allowFailure {
			return nil, fmt.Errorf("http request failed: %w", err)
		}

		response.StatusCode = http.StatusNotFound
		response.Header = http.Header{}
		response.Body = []byte(syntheticNotFoundBody)
		response.Synthetic = true

		return response, nil
	}

	defer resp.Body.Close()

	response.StatusCode = resp.StatusCode
	response.Header = resp.Header

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(method, path, response.Duration, traceParent, err, "reading response body")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	response.Body = respBody

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, response.Duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	if options.expectedStatus > 0 && resp.StatusCode != options.expectedStatus {
		c.logUnexpectedStatus(method, path, options.expectedStatus, resp.StatusCode, string(respBody), traceParent)
	}

	return response, nil
}

// CreateUser creates a user, the body is sent as is so it need not be valid.
func (c *APIClient) CreateUser(ctx context.Context, user any, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodPost, c.endpoints.CreateUser(), append([]RequestOption{WithBody(user)}, opts...)...)
}

// GetUser retrieves a user by name.
func (c *APIClient) GetUser(ctx context.Context, username string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodGet, c.endpoints.GetUser(username), opts...)
}

// UpdateUser sends a full or partial user record.
func (c *APIClient) UpdateUser(ctx context.Context, username string, user any, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodPut, c.endpoints.UpdateUser(username), append([]RequestOption{WithBody(user)}, opts...)...)
}

// DeleteUser deletes a user, use AllowFailure for best effort cleanup.
func (c *APIClient) DeleteUser(ctx context.Context, username string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, c.endpoints.DeleteUser(username), opts...)
}

// Login logs in with both credentials present, even if empty.
func (c *APIClient) Login(ctx context.Context, username, password string, opts ...RequestOption) (*Response, error) {
	query := url.Values{
		"username": []string{username},
		"password": []string{password},
	}

	return c.LoginWithQuery(ctx, query, opts...)
}

// LoginWithQuery logs in with arbitrary query parameters, allowing
// credentials to be omitted.
func (c *APIClient) LoginWithQuery(ctx context.Context, query url.Values, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodGet, c.endpoints.Login(), append([]RequestOption{WithQuery(query)}, opts...)...)
}

// Logout ends the session.
func (c *APIClient) Logout(ctx context.Context, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodGet, c.endpoints.Logout(), opts...)
}

// Health returns the mock service health report.
func (c *APIClient) Health(ctx context.Context) (*openapi.Health, error) {
	resp, err := c.Do(ctx, http.MethodGet, c.endpoints.HealthCheck(), atRoot())
	if err != nil {
		return nil, fmt.Errorf("checking health: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnhealthy, resp.StatusCode)
	}

	health := &openapi.Health{}

	if err := resp.JSON(health); err != nil {
		return nil, err
	}

	if health.Status != openapi.HealthStatusHealthy {
		return nil, fmt.Errorf("%w: status %q", ErrUnhealthy, health.Status)
	}

	return health, nil
}

// WaitForHealthy polls the health endpoint until it reports healthy.
func (c *APIClient) WaitForHealthy(ctx context.Context, interval, timeout time.Duration) error {
	var lastErr error

	condition := func(ctx context.Context) (bool, error) {
		if _, err := c.Health(ctx); err != nil {
			lastErr = err
			return false, nil
		}

		return true, nil
	}

	if err := wait.PollUntilContextTimeout(ctx, interval, timeout, true, condition); err != nil {
		return fmt.Errorf("%w: %w (last error: %v)", ErrUnhealthy, err, lastErr)
	}

	return nil
}

// truncate limits s to n characters.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}

// LogResponse writes a framed dump of the exchange for debugging.
func (c *APIClient) LogResponse(resp *Response, testName string) {
	requestBody := "None"
	if len(resp.RequestBody) > 0 {
		requestBody = truncate(string(resp.RequestBody), 200)
	}

	separator := strings.Repeat("=", 50)

	ginkgo.GinkgoWriter.Printf("%s\nTEST: %s\nURL: %s\nMETHOD: %s\nSTATUS: %d\nREQUEST BODY: %s\nRESPONSE: %s\n%s\n",
		separator, testName, resp.URL, resp.Method, resp.StatusCode, requestBody, truncate(resp.Text(), 200), separator)
}
