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

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/onsi/ginkgo/v2/types"
	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/petstore/pkg/constants"
	"github.com/unikorn-cloud/petstore/pkg/report"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

type options struct {
	input     string
	outputDir string
}

func (o *options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.input, "input", "report.json", "Ginkgo JSON report as written by --json-report.")
	f.StringVar(&o.outputDir, "output-dir", "reports", "Directory to write HTML, JSON and text reports to.")
}

func run(o *options) error {
	data, err := os.ReadFile(o.input)
	if err != nil {
		return fmt.Errorf("reading report: %w", err)
	}

	var suites []types.Report

	if err := json.Unmarshal(data, &suites); err != nil {
		return fmt.Errorf("decoding report: %w", err)
	}

	generator, err := report.NewGenerator(o.outputDir)
	if err != nil {
		return err
	}

	summary := report.FromGinkgoReports(suites)

	artifacts, err := generator.WriteAll(summary)
	if err != nil {
		return err
	}

	fmt.Printf("Total: %d, Passed: %d, Failed: %d, Skipped: %d\n", summary.Total, summary.Passed, summary.Failed, summary.Skipped)
	fmt.Printf("HTML: %s\nJSON: %s\nSummary: %s\n", artifacts.HTML, artifacts.JSON, artifacts.Summary)

	return nil
}

func main() {
	var zapOptions zap.Options

	o := &options{}
	o.AddFlags(pflag.CommandLine)

	zapOptions.BindFlags(flag.CommandLine)

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()

	log.SetLogger(zap.New(zap.UseFlagOptions(&zapOptions)))

	log.Log.WithName("init").Info("generating reports", "application", constants.Application, "version", constants.Version, "input", o.input)

	if err := run(o); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
