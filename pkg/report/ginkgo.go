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

	"github.com/onsi/ginkgo/v2/types"

	"k8s.io/utils/ptr"
)

// included reports whether a spec report represents a test.  Setup nodes
// are only of interest when they break the run.
func included(spec types.SpecReport) bool {
	if spec.LeafNodeType == types.NodeTypeIt {
		return true
	}

	return spec.State.Is(types.SpecStateFailureStates)
}

func specName(spec types.SpecReport) string {
	if name := spec.FullText(); name != "" {
		return name
	}

	return spec.LeafNodeType.String()
}

// FromGinkgoReport flattens a ginkgo suite report into a summary.
func FromGinkgoReport(suite types.Report) *Summary {
	summary := NewSummary(suite.EndTime)
	summary.Duration = suite.RunTime.Seconds()

	for _, spec := range suite.SpecReports {
		if !included(spec) {
			continue
		}

		result := Result{
			Name:     specName(spec),
			Duration: spec.RunTime.Seconds(),
		}

		switch {
		case spec.State == types.SpecStatePassed:
			result.Status = StatusPassed
		case spec.State == types.SpecStateSkipped:
			result.Status = StatusSkipped
			result.Error = ptr.To("Skipped")

			if spec.Failure.Message != "" {
				result.Error = ptr.To(spec.Failure.Message)
			}
		case spec.State == types.SpecStatePending:
			result.Status = StatusSkipped
			result.Error = ptr.To("Pending")
		default:
			result.Status = StatusFailed
			result.Error = ptr.To("Unknown error")

			if spec.Failure.Message != "" {
				result.Error = ptr.To(spec.Failure.Message + "\n" + spec.Failure.Location.String())
			}
		}

		summary.Add(result)
	}

	return summary
}

// FromGinkgoReports combines the suites of a ginkgo JSON report, as written
// by --json-report, into a single summary stamped with the latest end time.
func FromGinkgoReports(suites []types.Report) *Summary {
	var end time.Time

	for _, suite := range suites {
		if suite.EndTime.After(end) {
			end = suite.EndTime
		}
	}

	summary := NewSummary(end)

	for _, suite := range suites {
		partial := FromGinkgoReport(suite)

		for _, result := range partial.Tests {
			summary.Add(result)
		}

		summary.Duration += partial.Duration
	}

	return summary
}
