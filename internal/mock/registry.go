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
	"fmt"
	"maps"
	"slices"
	"sync"
)

// queryExpectation binds a query descriptor to a response thunk. The thunk
// is evaluated at match time so registrations can supply either a fixed
// envelope or a value computed per call.
type queryExpectation struct {
	descriptor QueryDescriptor
	respond    func() Envelope
}

type procedureExpectation struct {
	descriptor ProcedureDescriptor
	respond    func() any
}

// Registry holds the ordered expectation sequences for the two call shapes.
// It is empty at construction and append-only: registrations happen during
// test setup, matching reads in registration order and never mutates.
//
// Queries and mutations share a single sequence. The client under test
// backs its query and mutate entry points with the same emulation call, so
// an expectation registered with RegisterMutation is matchable from either
// entry point and vice versa.
type Registry struct {
	mu         sync.RWMutex
	queries    []queryExpectation
	procedures []procedureExpectation
}

// NewRegistry creates an empty registry. Its intended lifetime is one test
// case.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterQuery binds a response envelope to the descriptor formed by
// document and variables. Duplicate descriptors are permitted and resolved
// first-match-wins at emulation time. Panics if document is empty, since a
// descriptor without a document identity can never match anything.
func (r *Registry) RegisterQuery(document string, variables map[string]any, response Envelope) {
	r.RegisterQueryFunc(document, variables, func() Envelope { return response })
}

// RegisterQueryFunc is RegisterQuery with a response thunk evaluated on
// every match instead of a fixed envelope.
func (r *Registry) RegisterQueryFunc(document string, variables map[string]any, respond func() Envelope) {
	if document == "" {
		panic("mock: RegisterQuery with empty document identity")
	}
	descriptor := QueryDescriptor{Document: document, Variables: maps.Clone(variables)}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, queryExpectation{descriptor: descriptor, respond: respond})
}

// RegisterMutation appends to the same sequence as RegisterQuery. It exists
// so test setup reads the same as the call sites it is stubbing.
func (r *Registry) RegisterMutation(document string, variables map[string]any, response Envelope) {
	r.RegisterQuery(document, variables, response)
}

// RegisterProcedure binds a raw response value to the descriptor formed by
// path and args. Duplicate descriptors are permitted and resolved
// first-match-wins. Panics if path is empty.
func (r *Registry) RegisterProcedure(path []string, args []any, response any) {
	r.RegisterProcedureFunc(path, args, func() any { return response })
}

// RegisterProcedureFunc is RegisterProcedure with a response thunk.
func (r *Registry) RegisterProcedureFunc(path []string, args []any, respond func() any) {
	if len(path) == 0 {
		panic("mock: RegisterProcedure with empty path")
	}
	descriptor := ProcedureDescriptor{Path: slices.Clone(path), Args: slices.Clone(args)}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.procedures = append(r.procedures, procedureExpectation{descriptor: descriptor, respond: respond})
}

// QueryCount returns the number of registered query and mutation expectations.
func (r *Registry) QueryCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.queries)
}

// ProcedureCount returns the number of registered procedure expectations.
func (r *Registry) ProcedureCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.procedures)
}

// firstQueryMatch scans the query sequence in registration order and returns
// the response thunk of the first expectation whose descriptor equals d.
// The scan takes a read lock only, so concurrent emulated calls match
// independently.
func (r *Registry) firstQueryMatch(d QueryDescriptor) (func() Envelope, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, exp := range r.queries {
		if exp.descriptor.Equal(d) {
			return exp.respond, true
		}
	}
	return nil, false
}

func (r *Registry) firstProcedureMatch(d ProcedureDescriptor) (func() any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, exp := range r.procedures {
		if exp.descriptor.Equal(d) {
			return exp.respond, true
		}
	}
	return nil, false
}

// String summarizes the registry contents for debugging failed tests.
func (r *Registry) String() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return fmt.Sprintf("registry(%d query, %d procedure expectations)", len(r.queries), len(r.procedures))
}
