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

package report

import (
	"time"
)

// Status is the outcome of a single test.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// TimestampFormat is used in report bodies.
const TimestampFormat = "2006-01-02 15:04:05"

// Result is the outcome of a single test.
type Result struct {
	// Name identifies the test.
	Name string `json:"name"`
	// Status is the outcome.
	Status Status `json:"status"`
	// Duration is the run time in seconds.
	Duration float64 `json:"duration"`
	// Error is the failure or skip reason, if any.
	Error *string `json:"error"`
}

// Summary aggregates the results of a run.  Counts are maintained by Add
// and always agree with Tests.
type Summary struct {
	Timestamp string   `json:"timestamp"`
	Total     int      `json:"total"`
	Passed    int      `json:"passed"`
	Failed    int      `json:"failed"`
	Skipped   int      `json:"skipped"`
	Duration  float64  `json:"duration"`
	Tests     []Result `json:"tests"`
}

func NewSummary(timestamp time.Time) *Summary {
	return &Summary{
		Timestamp: timestamp.Format(TimestampFormat),
		Tests:     []Result{},
	}
}

// Add appends a result in order and updates the counters.  Anything that
// didn't pass or skip is a failure.
func (s *Summary) Add(result Result) {
	switch result.Status {
	case StatusPassed:
		s.Passed++
	case StatusSkipped:
		s.Skipped++
	default:
		result.Status = StatusFailed
		s.Failed++
	}

	s.Tests = append(s.Tests, result)
	s.Total++
}

// Results returns the results with the given status, in run order.
func (s *Summary) Results(status Status) []Result {
	var out []Result

	for _, result := range s.Tests {
		if result.Status == status {
			out = append(out, result)
		}
	}

	return out
}
