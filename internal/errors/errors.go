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

// Package errors defines sentinel errors for consistent error handling across
// the call emulator, the real transport, and the stub server CLI. Emulation
// errors are matched with errors.Is in tests; transport errors map to exit
// codes in the CLI.
package errors

import "errors"

// Sentinel errors raised by the call emulator.
var (
	// ErrUnexpectedCall indicates a call was emulated with no registered
	// expectation whose descriptor matches. This is fatal to the calling
	// test; the wrapping error carries the full unmatched descriptor.
	ErrUnexpectedCall = errors.New("unexpected call")

	// ErrMalformedDescriptor indicates a call descriptor is missing a
	// required field, such as a document identity or a procedure path.
	ErrMalformedDescriptor = errors.New("malformed call descriptor")

	// ErrUnknownProcedure indicates a procedure path the real transport
	// has no dispatch entry for.
	ErrUnknownProcedure = errors.New("unknown procedure")
)

// Sentinel errors raised by the real transport. These map to exit code 2
// (auth, not-found, rate limit) and 3 (network) in the stub CLI.
var (
	// ErrInvalidToken indicates GitHub authentication failed.
	ErrInvalidToken = errors.New("invalid github token")

	// ErrRepoNotFound indicates the specified repository does not exist or is not accessible.
	ErrRepoNotFound = errors.New("repository not found")

	// ErrNetworkFailure indicates a network connection problem.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrRateLimit indicates GitHub API rate limit has been exceeded.
	ErrRateLimit = errors.New("github rate limit exceeded")
)
