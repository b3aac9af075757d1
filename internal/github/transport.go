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

package github

import (
	"context"
	"encoding/json"
	"fmt"
)

// Transport is the remote-call capability the pull-request client depends
// on. It exposes the two call shapes GitHub serves:
//
//   - Query and Mutate execute a named GraphQL document with a variable
//     mapping and decode the response data into out.
//   - Call invokes a path-addressed procedure (namespace then operation,
//     e.g. ["repos", "get"]) with an ordered argument list and returns the
//     raw response value.
//
// Implementations must surface errors synchronously to the caller; nothing
// is retried or swallowed at this layer.
type Transport interface {
	Query(ctx context.Context, document string, variables map[string]any, out any) error
	Mutate(ctx context.Context, document string, variables map[string]any, out any) error
	Call(ctx context.Context, path []string, args []any) (any, error)
}

// decodeValue converts an opaque response value into a typed destination via
// a JSON round trip. Procedure responses arrive either as live API structs
// or as canned payload maps depending on the transport; both serialize to
// the same wire shape, so decoding through JSON keeps the client agnostic.
func decodeValue(value, out any) error {
	if out == nil || value == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode response value: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response value: %w", err)
	}
	return nil
}
