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

package fixtures

import (
	"context"
	"errors"
	"testing"

	stuberrors "github.com/joshka/vscode-pull-request-github/internal/errors"
	"github.com/joshka/vscode-pull-request-github/internal/github"
	"github.com/joshka/vscode-pull-request-github/internal/mock"
)

func newFixtureClient(t *testing.T, fx Fixture) *github.Client {
	t.Helper()
	reg := mock.NewRegistry()
	RegisterGraphQL(reg, fx)
	RegisterREST(reg, fx)
	return github.NewClient(mock.NewTransport(mock.WithRegistry(reg)))
}

func TestFixtureDrivesRepositoryInfo(t *testing.T) {
	client := newFixtureClient(t, Fixture{
		Owner:             "acme",
		Name:              "rockets",
		Private:           true,
		TotalPullRequests: 12,
	})

	repo, err := client.GetRepositoryInfo(context.Background(), "acme", "rockets")
	if err != nil {
		t.Fatalf("GetRepositoryInfo: %v", err)
	}
	if repo.Owner != "acme" || repo.Name != "rockets" {
		t.Errorf("repo = %s/%s, want acme/rockets", repo.Owner, repo.Name)
	}
	if !repo.IsPrivate {
		t.Error("IsPrivate = false, want true")
	}
	if repo.TotalPullRequests != 12 {
		t.Errorf("TotalPullRequests = %d, want 12", repo.TotalPullRequests)
	}
}

func TestFixtureDrivesPullRequest(t *testing.T) {
	client := newFixtureClient(t, Fixture{
		Owner:     "acme",
		Name:      "rockets",
		Number:    42,
		Title:     "Add telemetry",
		Author:    "wile-e",
		Labels:    []string{"enhancement"},
		Assignees: []string{"roadrunner"},
	})

	pr, err := client.GetPullRequest(context.Background(), "acme", "rockets", 42)
	if err != nil {
		t.Fatalf("GetPullRequest: %v", err)
	}
	if pr.Number != 42 {
		t.Errorf("Number = %d, want 42", pr.Number)
	}
	if pr.Title != "Add telemetry" {
		t.Errorf("Title = %q, want %q", pr.Title, "Add telemetry")
	}
	if pr.State != "OPEN" {
		t.Errorf("State = %q, want OPEN", pr.State)
	}
	if pr.Author.Login != "wile-e" {
		t.Errorf("Author = %q, want wile-e", pr.Author.Login)
	}
	if len(pr.Labels) != 1 || pr.Labels[0].Name != "enhancement" {
		t.Errorf("Labels = %v, want [enhancement]", pr.Labels)
	}
	if len(pr.Assignees) != 1 || pr.Assignees[0].Login != "roadrunner" {
		t.Errorf("Assignees = %v, want [roadrunner]", pr.Assignees)
	}
	if pr.MergedAt != nil {
		t.Errorf("MergedAt = %v, want nil", pr.MergedAt)
	}
}

func TestFixtureMergedState(t *testing.T) {
	client := newFixtureClient(t, Fixture{Number: 5, State: "MERGED"})

	pr, err := client.GetPullRequest(context.Background(), "octocat", "hello-world", 5)
	if err != nil {
		t.Fatalf("GetPullRequest: %v", err)
	}
	if pr.State != "MERGED" {
		t.Errorf("State = %q, want MERGED", pr.State)
	}
	if !pr.Merged {
		t.Error("Merged = false, want true")
	}
	if pr.MergedAt == nil {
		t.Error("MergedAt = nil, want set")
	}
}

func TestFixtureDrivesTimeline(t *testing.T) {
	client := newFixtureClient(t, Fixture{Number: 9, HeadSHA: "cafe9", Author: "alice"})

	events, err := client.GetTimeline(context.Background(), "octocat", "hello-world", 9)
	if err != nil {
		t.Fatalf("GetTimeline: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	if events[0].Event != "committed" || events[0].CommitID != "cafe9" {
		t.Errorf("events[0] = %+v, want committed cafe9", events[0])
	}
	if events[1].Event != "commented" {
		t.Errorf("events[1].Event = %q, want commented", events[1].Event)
	}
}

func TestFixtureDrivesCombinedStatus(t *testing.T) {
	client := newFixtureClient(t, Fixture{HeadRef: "topic", ChecksState: "FAILURE"})

	status, err := client.GetCombinedStatus(context.Background(), "octocat", "hello-world", "topic")
	if err != nil {
		t.Fatalf("GetCombinedStatus: %v", err)
	}
	if status.State != "failure" {
		t.Errorf("State = %q, want failure", status.State)
	}
	if len(status.Statuses) != 1 || status.Statuses[0].Context != "ci/build" {
		t.Errorf("Statuses = %+v, want one ci/build entry", status.Statuses)
	}
}

func TestFixtureDrivesReviewRequests(t *testing.T) {
	client := newFixtureClient(t, Fixture{Number: 2, Reviewers: []string{"bob", "carol"}})

	requests, err := client.GetReviewRequests(context.Background(), "octocat", "hello-world", 2)
	if err != nil {
		t.Fatalf("GetReviewRequests: %v", err)
	}
	if len(requests.Users) != 2 {
		t.Fatalf("len(Users) = %d, want 2", len(requests.Users))
	}
	if requests.Users[0].Login != "bob" || requests.Users[1].Login != "carol" {
		t.Errorf("Users = %+v, want bob, carol", requests.Users)
	}
}

func TestFixtureUnknownRepositoryIsUnexpected(t *testing.T) {
	client := newFixtureClient(t, Fixture{Owner: "acme", Name: "rockets"})

	_, err := client.GetRepositoryInfo(context.Background(), "acme", "anvils")
	if !errors.Is(err, stuberrors.ErrUnexpectedCall) {
		t.Errorf("err = %v, want ErrUnexpectedCall", err)
	}
}

func TestMultipleFixturesCoexist(t *testing.T) {
	reg := mock.NewRegistry()
	RegisterREST(reg, Fixture{Owner: "acme", Name: "rockets", Number: 1, Title: "first"})
	RegisterREST(reg, Fixture{Owner: "acme", Name: "rockets", Number: 2, Title: "second"})
	RegisterGraphQL(reg, Fixture{Owner: "acme", Name: "rockets", Number: 1, Title: "first"})
	RegisterGraphQL(reg, Fixture{Owner: "acme", Name: "rockets", Number: 2, Title: "second"})
	client := github.NewClient(mock.NewTransport(mock.WithRegistry(reg)))

	first, err := client.GetPullRequest(context.Background(), "acme", "rockets", 1)
	if err != nil {
		t.Fatalf("GetPullRequest(1): %v", err)
	}
	second, err := client.GetPullRequest(context.Background(), "acme", "rockets", 2)
	if err != nil {
		t.Fatalf("GetPullRequest(2): %v", err)
	}
	if first.Title != "first" || second.Title != "second" {
		t.Errorf("titles = %q, %q; want first, second", first.Title, second.Title)
	}
}
