// Copyright 2020 ConsenSys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package groth16

import (
	"crypto/rand"
	"io"
)

// config is shared by Setup and Prove: both need a source of
// cryptographically secure randomness for toxic waste / blinding
// scalars, and both accept the same override for it.
type config struct {
	randomSource io.Reader
}

func newConfig(opts ...Option) config {
	cfg := config{randomSource: rand.Reader}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures NewTrustedSetup or (*Prover).Prove.
type Option func(*config)

// WithRandomSource overrides the randomness source used for toxic-waste
// sampling (NewTrustedSetup) or for the prover's blinding scalars r, s
// (Prove). The default is crypto/rand.Reader; tests that need
// reproducible output may inject a seeded deterministic source here, as
// called out in the design notes on trusted-setup and prover
// randomness — this is the only place determinism may legitimately
// enter the protocol.
func WithRandomSource(r io.Reader) Option {
	return func(c *config) {
		c.randomSource = r
	}
}
