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

package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/joshka/vscode-pull-request-github/internal/config"
	"github.com/joshka/vscode-pull-request-github/internal/errors"
	"github.com/joshka/vscode-pull-request-github/internal/fixtures"
	"github.com/joshka/vscode-pull-request-github/internal/github"
	"github.com/joshka/vscode-pull-request-github/internal/mock"
	"github.com/joshka/vscode-pull-request-github/test/testutil"
)

// TestStubStackFromConfigFile walks the full path a ghstub deployment
// takes: YAML config, fixture assembly, HTTP stub, real client.
func TestStubStackFromConfigFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "fixtures.yaml")
	configContent := `
fixtures:
  - owner: acme
    name: rockets
    number: 8
    title: Bigger engines
    author: wile-e
    state: OPEN
    head_ref: bigger-engines
    head_sha: cafe8
    reviewers: [roadrunner]
    checks_state: PENDING
`
	if err := os.WriteFile(configFile, []byte(configContent), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadConfig(configFile)
	testutil.AssertNoError(t, err)
	if len(cfg.Fixtures) != 1 {
		t.Fatalf("len(Fixtures) = %d, want 1", len(cfg.Fixtures))
	}

	fc := cfg.Fixtures[0]
	stub := testutil.StartStub(t, fixtures.Fixture{
		Owner:       fc.Owner,
		Name:        fc.Name,
		Number:      fc.Number,
		Title:       fc.Title,
		Author:      fc.Author,
		State:       fc.State,
		HeadRef:     fc.HeadRef,
		HeadSHA:     fc.HeadSHA,
		Reviewers:   fc.Reviewers,
		ChecksState: fc.ChecksState,
	})
	client := stub.Client(t)
	ctx := context.Background()

	pr, err := client.GetPullRequest(ctx, "acme", "rockets", 8)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pr.Title, "Bigger engines")
	testutil.AssertEqual(t, pr.Author.Login, "wile-e")

	status, err := client.GetCombinedStatus(ctx, "acme", "rockets", "bigger-engines")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, status.State, "pending")

	requests, err := client.GetReviewRequests(ctx, "acme", "rockets", 8)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(requests.Users), 1)

	_, err = client.GetPullRequest(ctx, "acme", "rockets", 99)
	testutil.AssertErrorContains(t, err, "unexpected query call")
}

// TestTransportSubstitutability runs the same client logic against the
// in-process mock transport and the HTTP stub and expects matching results.
func TestTransportSubstitutability(t *testing.T) {
	fx := fixtures.Fixture{
		Owner:             "acme",
		Name:              "rockets",
		Number:            3,
		Title:             "Retro thrusters",
		TotalPullRequests: 9,
	}

	reg := mock.NewRegistry()
	fixtures.RegisterGraphQL(reg, fx)
	fixtures.RegisterREST(reg, fx)
	mockClient := github.NewClient(mock.NewTransport(mock.WithRegistry(reg)))

	stub := testutil.StartStub(t, fx)
	netClient := stub.Client(t)

	ctx := context.Background()
	for name, client := range map[string]*github.Client{
		"mock transport": mockClient,
		"http stub":      netClient,
	} {
		repo, err := client.GetRepositoryInfo(ctx, "acme", "rockets")
		testutil.AssertNoError(t, err)
		if repo.TotalPullRequests != 9 {
			t.Errorf("%s: TotalPullRequests = %d, want 9", name, repo.TotalPullRequests)
		}

		pr, err := client.GetPullRequest(ctx, "acme", "rockets", 3)
		testutil.AssertNoError(t, err)
		if pr.Title != "Retro thrusters" {
			t.Errorf("%s: Title = %q, want Retro thrusters", name, pr.Title)
		}
	}
}

// TestStubRegistryLiveRegistration registers an expectation while the
// server is running; matching is a live scan, not a startup snapshot.
func TestStubRegistryLiveRegistration(t *testing.T) {
	stub := testutil.StartStub(t)
	client := stub.Client(t)
	ctx := context.Background()

	_, err := client.GetRepositoryInfo(ctx, "acme", "rockets")
	testutil.AssertErrorContains(t, err, "unexpected query call")

	fixtures.RegisterGraphQL(stub.Registry, fixtures.Fixture{Owner: "acme", Name: "rockets"})

	repo, err := client.GetRepositoryInfo(ctx, "acme", "rockets")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, repo.Name, "rockets")
}

// TestStubRESTNotFound exercises the REST 404 path end to end, including
// the client's error classification.
func TestStubRESTNotFound(t *testing.T) {
	stub := testutil.StartStub(t, fixtures.Fixture{Owner: "acme", Name: "rockets", Number: 3})
	client := stub.Client(t)

	_, err := client.GetTimeline(context.Background(), "acme", "rockets", 42)
	testutil.AssertErrorIs(t, err, errors.ErrRepoNotFound)
}
