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

// Package github provides the remote-call transport capability and the
// pull-request client built on top of it.
//
// Production code depends only on the Transport interface, which exposes the
// two call idioms GitHub serves: structured GraphQL queries/mutations and
// path-addressed REST procedures. Two implementations exist: NetTransport
// in this package performs real network calls (shurcooL/graphql for the
// structured shape, go-github for the procedure shape), and the mock
// package replays registered expectations. The implementation is selected
// at construction time, so tests swap transports without touching calling
// code.
//
// Basic usage:
//
//	transport, err := github.NewNetTransport(token)
//	if err != nil {
//	    // Handle error
//	}
//	client := github.NewClient(transport)
//	pr, err := client.GetPullRequest(ctx, "golang", "go", 12345)
package github
