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
	"fmt"
	"strings"
	"time"

	gogithub "github.com/google/go-github/v60/github"

	"github.com/joshka/vscode-pull-request-github/internal/github"
	"github.com/joshka/vscode-pull-request-github/internal/mock"
)

// Fixture describes one pull request and the repository it belongs to. Zero
// fields are filled with defaults derived from owner/name/number.
type Fixture struct {
	Owner             string
	Name              string
	Number            int
	Title             string
	Author            string
	State             string // OPEN, CLOSED, MERGED
	Body              string
	BaseRef           string
	HeadRef           string
	HeadSHA           string
	DefaultBranch     string
	Private           bool
	Labels            []string
	Assignees         []string
	Reviewers         []string
	ChecksState       string // SUCCESS, PENDING, FAILURE
	TotalPullRequests int
	CreatedAt         time.Time
}

func (f Fixture) normalized() Fixture {
	if f.Owner == "" {
		f.Owner = "octocat"
	}
	if f.Name == "" {
		f.Name = "hello-world"
	}
	if f.Number == 0 {
		f.Number = 1
	}
	if f.Title == "" {
		f.Title = fmt.Sprintf("PR %d", f.Number)
	}
	if f.Author == "" {
		f.Author = fmt.Sprintf("user%d", f.Number)
	}
	if f.State == "" {
		f.State = "OPEN"
	}
	if f.BaseRef == "" {
		f.BaseRef = "main"
	}
	if f.HeadRef == "" {
		f.HeadRef = fmt.Sprintf("feature-%d", f.Number)
	}
	if f.HeadSHA == "" {
		f.HeadSHA = fmt.Sprintf("head%d", f.Number)
	}
	if f.DefaultBranch == "" {
		f.DefaultBranch = "main"
	}
	if f.ChecksState == "" {
		f.ChecksState = "SUCCESS"
	}
	if f.TotalPullRequests == 0 {
		f.TotalPullRequests = 1
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC().AddDate(0, 0, -f.Number)
	}
	return f
}

// RegisterGraphQL seeds reg with GraphQL-shaped expectations for the fixed
// descriptor set: repository metadata, pull-request detail, timeline
// events, combined status (keyed by head ref), and review requests.
func RegisterGraphQL(reg *mock.Registry, fx Fixture) {
	fx = fx.normalized()

	repoVars := map[string]any{"owner": fx.Owner, "name": fx.Name}
	prVars := map[string]any{"owner": fx.Owner, "name": fx.Name, "number": fx.Number}
	refVars := map[string]any{"owner": fx.Owner, "name": fx.Name, "ref": fx.HeadRef}

	repo := NewRepositoryBuilder(fx.Owner, fx.Name).
		WithDefaultBranch(fx.DefaultBranch).
		WithTotalPullRequests(fx.TotalPullRequests)
	if fx.Private {
		repo.WithPrivate()
	}
	reg.RegisterQuery(github.DocRepository, repoVars,
		mock.Ready(map[string]any{"repository": repo.Build()}))

	pr := NewPullRequestBuilder(fx.Number).
		WithRepository(fx.Owner, fx.Name).
		WithTitle(fx.Title).
		WithAuthor(fx.Author).
		WithBody(fx.Body).
		WithCreatedAt(fx.CreatedAt).
		WithRefs(fx.BaseRef, fx.HeadRef, fx.HeadSHA).
		WithLabels(fx.Labels...).
		WithAssignees(fx.Assignees...)
	switch fx.State {
	case "MERGED":
		pr.WithMergedAt(fx.CreatedAt.Add(24 * time.Hour))
	case "CLOSED":
		pr.WithClosedAt(fx.CreatedAt.Add(24 * time.Hour))
	}
	reg.RegisterQuery(github.DocPullRequest, prVars,
		mock.Ready(map[string]any{"repository": map[string]any{"pullRequest": pr.Build()}}))

	timeline := NewTimelineBuilder().
		WithCommit(fx.HeadSHA, fx.Author, fx.CreatedAt).
		WithComment(fx.Author, "Opened for review", fx.CreatedAt.Add(time.Minute)).
		Build()
	reg.RegisterQuery(github.DocTimelineEvents, prVars,
		mock.Ready(map[string]any{"repository": map[string]any{"pullRequest": map[string]any{"timelineItems": timeline}}}))

	checks := NewCombinedStatusBuilder().
		WithState(fx.ChecksState).
		WithContext("ci/build", fx.ChecksState, "Build").
		Build()
	reg.RegisterQuery(github.DocGetChecks, refVars,
		mock.Ready(map[string]any{"repository": map[string]any{"object": map[string]any{"status": checks}}}))

	reviewers := make([]map[string]any, len(fx.Reviewers))
	for i, login := range fx.Reviewers {
		reviewers[i] = map[string]any{"requestedReviewer": map[string]any{"login": login}}
	}
	reg.RegisterQuery(github.DocReviewRequests, prVars,
		mock.Ready(map[string]any{"repository": map[string]any{"pullRequest": map[string]any{"reviewRequests": map[string]any{"nodes": reviewers}}}}))
}

// RegisterREST seeds reg with procedure-shaped expectations carrying the
// same semantic content as RegisterGraphQL, using the REST wire types.
func RegisterREST(reg *mock.Registry, fx Fixture) {
	fx = fx.normalized()

	repoArgs := []any{map[string]any{"owner": fx.Owner, "repo": fx.Name}}
	prArgs := []any{map[string]any{"owner": fx.Owner, "repo": fx.Name, "number": fx.Number}}
	refArgs := []any{map[string]any{"owner": fx.Owner, "repo": fx.Name, "ref": fx.HeadRef}}

	reg.RegisterProcedure(github.ProcRepoGet, repoArgs, restRepository(fx))
	reg.RegisterProcedure(github.ProcPullGet, prArgs, restPullRequest(fx))
	reg.RegisterProcedure(github.ProcTimeline, prArgs, restTimeline(fx))
	reg.RegisterProcedure(github.ProcCombinedStatus, refArgs, restCombinedStatus(fx))
	reg.RegisterProcedure(github.ProcReviewers, prArgs, restReviewers(fx))
}

func restRepository(fx Fixture) *gogithub.Repository {
	return &gogithub.Repository{
		Name:          gogithub.String(fx.Name),
		FullName:      gogithub.String(fx.Owner + "/" + fx.Name),
		Private:       gogithub.Bool(fx.Private),
		DefaultBranch: gogithub.String(fx.DefaultBranch),
		HTMLURL:       gogithub.String(fmt.Sprintf("https://github.com/%s/%s", fx.Owner, fx.Name)),
		Owner:         &gogithub.User{Login: gogithub.String(fx.Owner)},
	}
}

func restPullRequest(fx Fixture) *gogithub.PullRequest {
	state := "open"
	if fx.State != "OPEN" {
		state = "closed"
	}

	pr := &gogithub.PullRequest{
		NodeID:    gogithub.String(fmt.Sprintf("PR_%s_%s_%d", fx.Owner, fx.Name, fx.Number)),
		Number:    gogithub.Int(fx.Number),
		Title:     gogithub.String(fx.Title),
		State:     gogithub.String(state),
		Body:      gogithub.String(fx.Body),
		Merged:    gogithub.Bool(fx.State == "MERGED"),
		HTMLURL:   gogithub.String(fmt.Sprintf("https://github.com/%s/%s/pull/%d", fx.Owner, fx.Name, fx.Number)),
		CreatedAt: &gogithub.Timestamp{Time: fx.CreatedAt},
		UpdatedAt: &gogithub.Timestamp{Time: fx.CreatedAt.Add(time.Hour)},
		User:      &gogithub.User{Login: gogithub.String(fx.Author)},
		Base:      &gogithub.PullRequestBranch{Ref: gogithub.String(fx.BaseRef)},
		Head: &gogithub.PullRequestBranch{
			Ref: gogithub.String(fx.HeadRef),
			SHA: gogithub.String(fx.HeadSHA),
		},
	}

	if fx.State != "OPEN" {
		closed := gogithub.Timestamp{Time: fx.CreatedAt.Add(24 * time.Hour)}
		pr.ClosedAt = &closed
		if fx.State == "MERGED" {
			pr.MergedAt = &closed
		}
	}

	for _, label := range fx.Labels {
		pr.Labels = append(pr.Labels, &gogithub.Label{Name: gogithub.String(label)})
	}
	for _, assignee := range fx.Assignees {
		pr.Assignees = append(pr.Assignees, &gogithub.User{Login: gogithub.String(assignee)})
	}

	return pr
}

func restTimeline(fx Fixture) []*gogithub.Timeline {
	return []*gogithub.Timeline{
		{
			Event:     gogithub.String("committed"),
			CommitID:  gogithub.String(fx.HeadSHA),
			Actor:     &gogithub.User{Login: gogithub.String(fx.Author)},
			CreatedAt: &gogithub.Timestamp{Time: fx.CreatedAt},
		},
		{
			Event:     gogithub.String("commented"),
			Body:      gogithub.String("Opened for review"),
			Actor:     &gogithub.User{Login: gogithub.String(fx.Author)},
			CreatedAt: &gogithub.Timestamp{Time: fx.CreatedAt.Add(time.Minute)},
		},
	}
}

func restCombinedStatus(fx Fixture) *gogithub.CombinedStatus {
	state := strings.ToLower(fx.ChecksState)
	return &gogithub.CombinedStatus{
		State:      gogithub.String(state),
		TotalCount: gogithub.Int(1),
		Statuses: []*gogithub.RepoStatus{
			{
				State:       gogithub.String(state),
				Context:     gogithub.String("ci/build"),
				Description: gogithub.String("Build"),
			},
		},
	}
}

func restReviewers(fx Fixture) *gogithub.Reviewers {
	users := make([]*gogithub.User, len(fx.Reviewers))
	for i, login := range fx.Reviewers {
		users[i] = &gogithub.User{Login: gogithub.String(login)}
	}
	return &gogithub.Reviewers{Users: users}
}
