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
	"time"
)

// PullRequestBuilder provides a fluent API for building the GraphQL-shaped
// pull-request detail payload.
type PullRequestBuilder struct {
	owner     string
	name      string
	number    int
	title     string
	state     string
	body      string
	author    string
	draft     bool
	createdAt time.Time
	updatedAt time.Time
	mergedAt  *time.Time
	closedAt  *time.Time
	baseRef   string
	headRef   string
	headSHA   string
	labels    []string
	assignees []string
}

// NewPullRequestBuilder creates a PR payload builder with defaults derived
// from the number.
func NewPullRequestBuilder(number int) *PullRequestBuilder {
	now := time.Now().UTC()
	return &PullRequestBuilder{
		owner:     "octocat",
		name:      "hello-world",
		number:    number,
		title:     fmt.Sprintf("PR %d", number),
		state:     "OPEN",
		body:      fmt.Sprintf("This is the body of PR %d", number),
		author:    fmt.Sprintf("user%d", number),
		createdAt: now.AddDate(0, 0, -number),
		updatedAt: now.AddDate(0, 0, -number).Add(time.Hour),
		baseRef:   "main",
		headRef:   fmt.Sprintf("feature-%d", number),
		headSHA:   fmt.Sprintf("head%d", number),
	}
}

// WithRepository sets the owner and repository name used in IDs and URLs.
func (b *PullRequestBuilder) WithRepository(owner, name string) *PullRequestBuilder {
	b.owner = owner
	b.name = name
	return b
}

// WithTitle sets the PR title.
func (b *PullRequestBuilder) WithTitle(title string) *PullRequestBuilder {
	b.title = title
	return b
}

// WithState sets the PR state (OPEN, CLOSED, MERGED).
func (b *PullRequestBuilder) WithState(state string) *PullRequestBuilder {
	b.state = state
	return b
}

// WithBody sets the PR body.
func (b *PullRequestBuilder) WithBody(body string) *PullRequestBuilder {
	b.body = body
	return b
}

// WithAuthor sets the PR author login.
func (b *PullRequestBuilder) WithAuthor(author string) *PullRequestBuilder {
	b.author = author
	return b
}

// WithDraft marks the PR as a draft.
func (b *PullRequestBuilder) WithDraft() *PullRequestBuilder {
	b.draft = true
	return b
}

// WithCreatedAt sets when the PR was created.
func (b *PullRequestBuilder) WithCreatedAt(t time.Time) *PullRequestBuilder {
	b.createdAt = t
	return b
}

// WithMergedAt marks the PR as merged at the given time.
func (b *PullRequestBuilder) WithMergedAt(t time.Time) *PullRequestBuilder {
	b.mergedAt = &t
	b.state = "MERGED"
	if b.closedAt == nil {
		b.closedAt = &t
	}
	return b
}

// WithClosedAt marks the PR as closed at the given time.
func (b *PullRequestBuilder) WithClosedAt(t time.Time) *PullRequestBuilder {
	b.closedAt = &t
	if b.state == "OPEN" {
		b.state = "CLOSED"
	}
	return b
}

// WithRefs sets the base ref, head ref, and head commit SHA.
func (b *PullRequestBuilder) WithRefs(base, head, sha string) *PullRequestBuilder {
	b.baseRef = base
	b.headRef = head
	b.headSHA = sha
	return b
}

// WithLabels adds labels to the PR.
func (b *PullRequestBuilder) WithLabels(labels ...string) *PullRequestBuilder {
	b.labels = labels
	return b
}

// WithAssignees adds assignees to the PR.
func (b *PullRequestBuilder) WithAssignees(assignees ...string) *PullRequestBuilder {
	b.assignees = assignees
	return b
}

// Build creates the pullRequest node payload.
func (b *PullRequestBuilder) Build() map[string]any {
	labels := make([]map[string]any, len(b.labels))
	for i, label := range b.labels {
		labels[i] = map[string]any{
			"name":        label,
			"color":       "ededed",
			"description": "",
		}
	}

	assignees := make([]map[string]any, len(b.assignees))
	for i, assignee := range b.assignees {
		assignees[i] = map[string]any{
			"login": assignee,
		}
	}

	pr := map[string]any{
		"id":          fmt.Sprintf("PR_%s_%s_%d", b.owner, b.name, b.number),
		"number":      b.number,
		"title":       b.title,
		"state":       b.state,
		"body":        b.body,
		"url":         fmt.Sprintf("https://github.com/%s/%s/pull/%d", b.owner, b.name, b.number),
		"isDraft":     b.draft,
		"merged":      b.mergedAt != nil,
		"createdAt":   b.createdAt.Format(time.RFC3339),
		"updatedAt":   b.updatedAt.Format(time.RFC3339),
		"author":      map[string]any{"login": b.author},
		"baseRefName": b.baseRef,
		"headRefName": b.headRef,
		"headRefOid":  b.headSHA,
		"labels":      map[string]any{"nodes": labels},
		"assignees":   map[string]any{"nodes": assignees},
	}

	if b.mergedAt != nil {
		pr["mergedAt"] = b.mergedAt.Format(time.RFC3339)
	} else {
		pr["mergedAt"] = nil
	}
	if b.closedAt != nil {
		pr["closedAt"] = b.closedAt.Format(time.RFC3339)
	} else {
		pr["closedAt"] = nil
	}

	return pr
}

// RepositoryBuilder builds the GraphQL-shaped repository metadata payload.
type RepositoryBuilder struct {
	owner             string
	name              string
	defaultBranch     string
	private           bool
	totalPullRequests int
}

// NewRepositoryBuilder creates a repository payload builder.
func NewRepositoryBuilder(owner, name string) *RepositoryBuilder {
	return &RepositoryBuilder{
		owner:         owner,
		name:          name,
		defaultBranch: "main",
	}
}

// WithDefaultBranch sets the default branch name.
func (b *RepositoryBuilder) WithDefaultBranch(branch string) *RepositoryBuilder {
	b.defaultBranch = branch
	return b
}

// WithPrivate marks the repository private.
func (b *RepositoryBuilder) WithPrivate() *RepositoryBuilder {
	b.private = true
	return b
}

// WithTotalPullRequests sets the total PR count.
func (b *RepositoryBuilder) WithTotalPullRequests(count int) *RepositoryBuilder {
	b.totalPullRequests = count
	return b
}

// Build creates the repository node payload.
func (b *RepositoryBuilder) Build() map[string]any {
	return map[string]any{
		"name":             b.name,
		"url":              fmt.Sprintf("https://github.com/%s/%s", b.owner, b.name),
		"isPrivate":        b.private,
		"owner":            map[string]any{"login": b.owner},
		"defaultBranchRef": map[string]any{"name": b.defaultBranch},
		"pullRequests":     map[string]any{"totalCount": b.totalPullRequests},
	}
}

// TimelineBuilder builds the GraphQL-shaped timeline payload for a pull
// request.
type TimelineBuilder struct {
	nodes []map[string]any
}

// NewTimelineBuilder creates an empty timeline builder.
func NewTimelineBuilder() *TimelineBuilder {
	return &TimelineBuilder{}
}

// WithCommit appends a committed event.
func (b *TimelineBuilder) WithCommit(sha, author string, at time.Time) *TimelineBuilder {
	b.nodes = append(b.nodes, map[string]any{
		"__typename": "PullRequestCommit",
		"commit": map[string]any{
			"oid":           sha,
			"author":        map[string]any{"user": map[string]any{"login": author}},
			"committedDate": at.Format(time.RFC3339),
		},
	})
	return b
}

// WithComment appends an issue comment event.
func (b *TimelineBuilder) WithComment(author, body string, at time.Time) *TimelineBuilder {
	b.nodes = append(b.nodes, map[string]any{
		"__typename": "IssueComment",
		"author":     map[string]any{"login": author},
		"body":       body,
		"createdAt":  at.Format(time.RFC3339),
	})
	return b
}

// WithReview appends a review event (state APPROVED, CHANGES_REQUESTED, ...).
func (b *TimelineBuilder) WithReview(author, state string, at time.Time) *TimelineBuilder {
	b.nodes = append(b.nodes, map[string]any{
		"__typename":  "PullRequestReview",
		"author":      map[string]any{"login": author},
		"state":       state,
		"submittedAt": at.Format(time.RFC3339),
	})
	return b
}

// Build creates the timelineItems payload.
func (b *TimelineBuilder) Build() map[string]any {
	nodes := b.nodes
	if nodes == nil {
		nodes = []map[string]any{}
	}
	return map[string]any{"nodes": nodes}
}

// CombinedStatusBuilder builds the GraphQL-shaped combined status payload
// for a commit ref.
type CombinedStatusBuilder struct {
	state    string
	statuses []map[string]any
}

// NewCombinedStatusBuilder creates a builder with an overall success state.
func NewCombinedStatusBuilder() *CombinedStatusBuilder {
	return &CombinedStatusBuilder{state: "SUCCESS"}
}

// WithState sets the overall state (SUCCESS, PENDING, FAILURE).
func (b *CombinedStatusBuilder) WithState(state string) *CombinedStatusBuilder {
	b.state = state
	return b
}

// WithContext appends an individual status context.
func (b *CombinedStatusBuilder) WithContext(context, state, description string) *CombinedStatusBuilder {
	b.statuses = append(b.statuses, map[string]any{
		"context":     context,
		"state":       state,
		"description": description,
	})
	return b
}

// Build creates the status payload.
func (b *CombinedStatusBuilder) Build() map[string]any {
	statuses := b.statuses
	if statuses == nil {
		statuses = []map[string]any{}
	}
	return map[string]any{
		"state":    b.state,
		"contexts": statuses,
	}
}
