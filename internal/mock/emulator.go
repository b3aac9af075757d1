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

	stuberrors "github.com/joshka/vscode-pull-request-github/internal/errors"
)

// CallShape identifies which call idiom an emulated call used.
type CallShape string

// The two call shapes, with mutation kept distinct for diagnostics even
// though it matches against the query sequence.
const (
	ShapeQuery     CallShape = "query"
	ShapeMutation  CallShape = "mutation"
	ShapeProcedure CallShape = "procedure"
)

// UnexpectedCallError reports an emulated call that matched no registered
// expectation. It carries the attempted descriptor so a failing test shows
// exactly which call had no stub. Unwraps to errors.ErrUnexpectedCall.
type UnexpectedCallError struct {
	Shape     CallShape
	Query     *QueryDescriptor
	Procedure *ProcedureDescriptor
}

func (e *UnexpectedCallError) Error() string {
	if e.Query != nil {
		return fmt.Sprintf("unexpected %s call: %s", e.Shape, e.Query)
	}
	return fmt.Sprintf("unexpected %s call: %s", e.Shape, e.Procedure)
}

func (e *UnexpectedCallError) Unwrap() error {
	return stuberrors.ErrUnexpectedCall
}

// Emulator matches live calls against a Registry and returns the bound
// responses. It owns no state of its own: matching is a pure scan over the
// registry, so an emulator is safe for concurrent use and repeated
// emulation of the same call returns the same response every time.
type Emulator struct {
	registry *Registry
}

// NewEmulator creates an emulator reading from registry.
func NewEmulator(registry *Registry) *Emulator {
	return &Emulator{registry: registry}
}

// EmulateQuery builds a transient descriptor from document and variables,
// scans the query expectations in registration order, and returns the
// envelope of the first equal match. A call with no match fails with an
// UnexpectedCallError; expectations are not consumed by matching.
func (e *Emulator) EmulateQuery(document string, variables map[string]any) (Envelope, error) {
	return e.emulateStructured(ShapeQuery, document, variables)
}

// EmulateMutation matches against the same expectation sequence as
// EmulateQuery; see Registry for the shared-namespace rationale.
func (e *Emulator) EmulateMutation(document string, variables map[string]any) (Envelope, error) {
	return e.emulateStructured(ShapeMutation, document, variables)
}

func (e *Emulator) emulateStructured(shape CallShape, document string, variables map[string]any) (Envelope, error) {
	if document == "" {
		return Envelope{}, fmt.Errorf("%s call with empty document identity: %w", shape, stuberrors.ErrMalformedDescriptor)
	}

	descriptor := QueryDescriptor{Document: document, Variables: variables}
	if respond, ok := e.registry.firstQueryMatch(descriptor); ok {
		return respond(), nil
	}
	return Envelope{}, &UnexpectedCallError{Shape: shape, Query: &descriptor}
}

// EmulateProcedure builds a transient descriptor from path and args, scans
// the procedure expectations in registration order, and returns the raw
// response of the first equal match, or an UnexpectedCallError if none.
func (e *Emulator) EmulateProcedure(path []string, args []any) (any, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("procedure call with empty path: %w", stuberrors.ErrMalformedDescriptor)
	}

	descriptor := ProcedureDescriptor{Path: path, Args: args}
	if respond, ok := e.registry.firstProcedureMatch(descriptor); ok {
		return respond(), nil
	}
	return nil, &UnexpectedCallError{Shape: ShapeProcedure, Procedure: &descriptor}
}
