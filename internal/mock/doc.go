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

// Package mock provides an in-memory test double for the GitHub transport.
// Tests register canned responses against call descriptors, then hand the
// mock transport to the code under test in place of the real one; every
// outbound call is matched against the registered expectations instead of
// touching the network.
//
// Two call shapes are supported:
//   - structured queries and mutations, identified by a document name plus
//     a variable mapping
//   - path-addressed procedure calls, identified by an ordered path plus an
//     ordered argument list
//
// Expectations are matched first-registered-first-tried, are never consumed,
// and an unmatched call fails with an error carrying the full descriptor so
// the missing stub is obvious from the test output.
//
// Basic usage:
//
//	transport := mock.NewTransport()
//	transport.Registry().RegisterQuery("PullRequest",
//	    map[string]any{"owner": "octocat", "name": "hello-world", "number": 5},
//	    mock.Ready(payload))
//
//	client := github.NewClient(transport)
//	pr, err := client.GetPullRequest(ctx, "octocat", "hello-world", 5)
package mock
