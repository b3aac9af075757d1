// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/joshka/vscode-pull-request-github/internal/github"
)

// Compile-time check that Transport is substitutable for the real transport.
var _ github.Transport = (*Transport)(nil)

// Transport is the test-double implementation of github.Transport. It
// performs no matching itself: each entry point translates the call into a
// descriptor and forwards it to the emulator. Responses resolve
// immediately, there is no network and no waiting.
//
// The transport additionally records every call it sees, so tests can
// verify what the code under test asked for.
type Transport struct {
	registry *Registry
	emulator *Emulator

	mu    sync.Mutex
	calls []CallRecord
}

// CallRecord captures one emulated call for test verification.
type CallRecord struct {
	Shape     CallShape
	Document  string
	Variables map[string]any
	Path      []string
	Args      []any
}

// Option configures a Transport at construction time.
type Option func(*Transport)

// WithRegistry attaches a pre-populated registry instead of an empty one.
func WithRegistry(registry *Registry) Option {
	return func(t *Transport) { t.registry = registry }
}

// WithQueryExpectation registers a query expectation whose envelope wraps
// data as a settled, successful result.
func WithQueryExpectation(document string, variables map[string]any, data any) Option {
	return func(t *Transport) { t.registry.RegisterQuery(document, variables, Ready(data)) }
}

// WithProcedureExpectation registers a procedure expectation.
func WithProcedureExpectation(path []string, args []any, response any) Option {
	return func(t *Transport) { t.registry.RegisterProcedure(path, args, response) }
}

// NewTransport creates a mock transport. Without options it starts with an
// empty registry; use Registry to register expectations after construction.
func NewTransport(opts ...Option) *Transport {
	t := &Transport{registry: NewRegistry()}
	for _, opt := range opts {
		opt(t)
	}
	t.emulator = NewEmulator(t.registry)
	return t
}

// Registry returns the expectation registry backing this transport.
func (t *Transport) Registry() *Registry {
	return t.registry
}

// Query implements github.Transport. The matched envelope's data is decoded
// into out through a JSON round trip, populating typed query structs the
// same way a real response would.
func (t *Transport) Query(ctx context.Context, document string, variables map[string]any, out any) error {
	t.record(CallRecord{Shape: ShapeQuery, Document: document, Variables: variables})
	if err := ctx.Err(); err != nil {
		return err
	}

	env, err := t.emulator.EmulateQuery(document, variables)
	if err != nil {
		return err
	}
	return decodeData(env.Data, out)
}

// Mutate implements github.Transport.
func (t *Transport) Mutate(ctx context.Context, document string, variables map[string]any, out any) error {
	t.record(CallRecord{Shape: ShapeMutation, Document: document, Variables: variables})
	if err := ctx.Err(); err != nil {
		return err
	}

	env, err := t.emulator.EmulateMutation(document, variables)
	if err != nil {
		return err
	}
	return decodeData(env.Data, out)
}

// Call implements github.Transport.
func (t *Transport) Call(ctx context.Context, path []string, args []any) (any, error) {
	t.record(CallRecord{Shape: ShapeProcedure, Path: path, Args: args})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return t.emulator.EmulateProcedure(path, args)
}

// Calls returns a copy of the calls recorded so far, in order.
func (t *Transport) Calls() []CallRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	calls := make([]CallRecord, len(t.calls))
	copy(calls, t.calls)
	return calls
}

func (t *Transport) record(call CallRecord) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls = append(t.calls, call)
}

func decodeData(data, out any) error {
	if out == nil || data == nil {
		return nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode canned response: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode canned response: %w", err)
	}
	return nil
}
