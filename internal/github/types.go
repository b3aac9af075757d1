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

import "time"

// User represents a GitHub account referenced from pull-request data.
type User struct {
	Login string `json:"login"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Repository contains the repository metadata the extension host asks for
// before loading pull requests.
type Repository struct {
	Owner             string
	Name              string
	URL               string
	DefaultBranch     string
	IsPrivate         bool
	TotalPullRequests int
}

// Label represents a label attached to a pull request.
type Label struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
}

// PullRequest represents a GitHub pull request with the metadata the
// extension surfaces in its tree and description views.
type PullRequest struct {
	ID        string     `json:"id"`
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	State     string     `json:"state"`
	Body      string     `json:"body,omitempty"`
	URL       string     `json:"url"`
	IsDraft   bool       `json:"isDraft"`
	Merged    bool       `json:"merged"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	ClosedAt  *time.Time `json:"closedAt,omitempty"`
	MergedAt  *time.Time `json:"mergedAt,omitempty"`
	Author    User       `json:"author"`
	BaseRef   string     `json:"baseRef"`
	HeadRef   string     `json:"headRef"`
	HeadSHA   string     `json:"headSHA"`
	Labels    []Label    `json:"labels,omitempty"`
	Assignees []User     `json:"assignees,omitempty"`
}

// TimelineEvent represents one entry of a pull request's timeline: commits,
// comments, reviews, merges. Tags follow the REST timeline wire shape,
// which is where this type is decoded from. Fields not applicable to a
// given event type are zero.
type TimelineEvent struct {
	Event     string    `json:"event"`
	Actor     User      `json:"actor"`
	CreatedAt time.Time `json:"created_at"`
	Body      string    `json:"body,omitempty"`
	CommitID  string    `json:"commit_id,omitempty"`
	State     string    `json:"state,omitempty"`
}

// Status represents a single commit status contributing to a combined
// status. Tags follow the REST wire shape, which is where this type is
// decoded from.
type Status struct {
	State       string `json:"state"`
	Context     string `json:"context"`
	Description string `json:"description,omitempty"`
	TargetURL   string `json:"target_url,omitempty"`
}

// CombinedStatus is the aggregated check state for a commit ref.
type CombinedStatus struct {
	State      string   `json:"state"`
	TotalCount int      `json:"total_count"`
	Statuses   []Status `json:"statuses"`
}

// ReviewRequests lists the reviewers a pull request is waiting on.
type ReviewRequests struct {
	Users []User   `json:"users"`
	Teams []string `json:"teams,omitempty"`
}
