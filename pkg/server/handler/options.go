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

package handler

import (
	"time"

	"github.com/spf13/pflag"
)

// Options defines configurable handler options.
type Options struct {
	// RateLimit is reported to clients on login.
	RateLimit int

	// SessionLifetime is used to calculate the reported session expiry.
	SessionLifetime time.Duration
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.IntVar(&o.RateLimit, "login-rate-limit", 1000, "Rate limit reported to clients on login.")
	f.DurationVar(&o.SessionLifetime, "session-lifetime", time.Hour, "Lifetime of login sessions reported to clients.")
}
