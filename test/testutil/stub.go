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

// Package testutil provides common test helpers for exercising the stub
// stack end to end.
package testutil

import (
	"net/http/httptest"
	"testing"

	"github.com/joshka/vscode-pull-request-github/internal/fixtures"
	"github.com/joshka/vscode-pull-request-github/internal/github"
	"github.com/joshka/vscode-pull-request-github/internal/mock"
	"github.com/joshka/vscode-pull-request-github/internal/stubserver"
)

// Stub bundles a running stub server with its expectation registry, so tests
// can register additional expectations after startup.
type Stub struct {
	*httptest.Server
	Registry *mock.Registry
}

// StartStub serves the given fixtures over both call shapes and tears the
// server down with the test.
func StartStub(t *testing.T, fxs ...fixtures.Fixture) *Stub {
	t.Helper()

	registry := mock.NewRegistry()
	for _, fx := range fxs {
		fixtures.RegisterGraphQL(registry, fx)
		fixtures.RegisterREST(registry, fx)
	}

	server := httptest.NewServer(stubserver.NewServer(registry))
	t.Cleanup(server.Close)
	return &Stub{Server: server, Registry: registry}
}

// Client returns a real transport client pointed at the stub.
func (s *Stub) Client(t *testing.T) *github.Client {
	t.Helper()

	transport, err := github.NewNetTransport("stub-token",
		github.WithGraphQLEndpoint(s.URL+"/graphql"),
		github.WithRESTBaseURL(s.URL+"/"),
	)
	if err != nil {
		t.Fatalf("NewNetTransport: %v", err)
	}
	return github.NewClient(transport)
}
