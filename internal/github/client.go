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
	"fmt"
	"time"

	"github.com/shurcooL/graphql"
)

// Client exposes the pull-request operations the extension host issues. It
// depends only on the Transport capability, so the same client code runs
// against the live API and against the mock transport in tests.
type Client struct {
	transport Transport
}

// NewClient creates a client over the given transport.
func NewClient(transport Transport) *Client {
	return &Client{transport: transport}
}

// GetRepositoryInfo retrieves repository metadata including the total pull
// request count.
func (c *Client) GetRepositoryInfo(ctx context.Context, owner, name string) (*Repository, error) {
	var query struct {
		Repository struct {
			Name      graphql.String
			URL       graphql.String `graphql:"url"`
			IsPrivate graphql.Boolean
			Owner     struct {
				Login graphql.String
			}
			DefaultBranchRef struct {
				Name graphql.String
			}
			PullRequests struct {
				TotalCount graphql.Int
			} `graphql:"pullRequests"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	variables := map[string]any{
		"owner": owner,
		"name":  name,
	}

	if err := c.transport.Query(ctx, DocRepository, variables, &query); err != nil {
		return nil, err
	}

	return &Repository{
		Owner:             string(query.Repository.Owner.Login),
		Name:              string(query.Repository.Name),
		URL:               string(query.Repository.URL),
		DefaultBranch:     string(query.Repository.DefaultBranchRef.Name),
		IsPrivate:         bool(query.Repository.IsPrivate),
		TotalPullRequests: int(query.Repository.PullRequests.TotalCount),
	}, nil
}

// GetPullRequest retrieves the detail view of a single pull request.
func (c *Client) GetPullRequest(ctx context.Context, owner, name string, number int) (*PullRequest, error) {
	var query struct {
		Repository struct {
			PullRequest struct {
				ID        graphql.String `graphql:"id"`
				Number    graphql.Int
				Title     graphql.String
				State     graphql.String
				Body      graphql.String
				URL       graphql.String `graphql:"url"`
				IsDraft   graphql.Boolean
				Merged    graphql.Boolean
				CreatedAt time.Time
				UpdatedAt time.Time
				ClosedAt  *time.Time
				MergedAt  *time.Time
				Author    struct {
					Login graphql.String
				}
				BaseRefName graphql.String
				HeadRefName graphql.String
				HeadRefOid  graphql.String `graphql:"headRefOid"`
				Labels      struct {
					Nodes []struct {
						Name        graphql.String
						Color       graphql.String
						Description graphql.String
					}
				} `graphql:"labels(first: 100)"`
				Assignees struct {
					Nodes []struct {
						Login graphql.String
					}
				} `graphql:"assignees(first: 100)"`
			} `graphql:"pullRequest(number: $number)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	variables := map[string]any{
		"owner":  owner,
		"name":   name,
		"number": number,
	}

	if err := c.transport.Query(ctx, DocPullRequest, variables, &query); err != nil {
		return nil, err
	}

	node := &query.Repository.PullRequest
	pr := &PullRequest{
		ID:        string(node.ID),
		Number:    int(node.Number),
		Title:     string(node.Title),
		State:     string(node.State),
		Body:      string(node.Body),
		URL:       string(node.URL),
		IsDraft:   bool(node.IsDraft),
		Merged:    bool(node.Merged),
		CreatedAt: node.CreatedAt,
		UpdatedAt: node.UpdatedAt,
		ClosedAt:  node.ClosedAt,
		MergedAt:  node.MergedAt,
		Author:    User{Login: string(node.Author.Login)},
		BaseRef:   string(node.BaseRefName),
		HeadRef:   string(node.HeadRefName),
		HeadSHA:   string(node.HeadRefOid),
	}

	for _, label := range node.Labels.Nodes {
		pr.Labels = append(pr.Labels, Label{
			Name:        string(label.Name),
			Color:       string(label.Color),
			Description: string(label.Description),
		})
	}
	for _, assignee := range node.Assignees.Nodes {
		pr.Assignees = append(pr.Assignees, User{Login: string(assignee.Login)})
	}

	return pr, nil
}

// GetTimeline retrieves the event timeline of a pull request.
func (c *Client) GetTimeline(ctx context.Context, owner, name string, number int) ([]TimelineEvent, error) {
	raw, err := c.transport.Call(ctx, ProcTimeline, []any{map[string]any{
		"owner":  owner,
		"repo":   name,
		"number": number,
	}})
	if err != nil {
		return nil, err
	}

	var events []TimelineEvent
	if err := decodeValue(raw, &events); err != nil {
		return nil, fmt.Errorf("timeline for %s/%s#%d: %w", owner, name, number, err)
	}
	return events, nil
}

// GetCombinedStatus retrieves the aggregated check state for a commit ref.
func (c *Client) GetCombinedStatus(ctx context.Context, owner, name, ref string) (*CombinedStatus, error) {
	raw, err := c.transport.Call(ctx, ProcCombinedStatus, []any{map[string]any{
		"owner": owner,
		"repo":  name,
		"ref":   ref,
	}})
	if err != nil {
		return nil, err
	}

	var status CombinedStatus
	if err := decodeValue(raw, &status); err != nil {
		return nil, fmt.Errorf("combined status for %s/%s@%s: %w", owner, name, ref, err)
	}
	return &status, nil
}

// GetReviewRequests retrieves the reviewers a pull request is waiting on.
func (c *Client) GetReviewRequests(ctx context.Context, owner, name string, number int) (*ReviewRequests, error) {
	raw, err := c.transport.Call(ctx, ProcReviewers, []any{map[string]any{
		"owner":  owner,
		"repo":   name,
		"number": number,
	}})
	if err != nil {
		return nil, err
	}

	var requests ReviewRequests
	if err := decodeValue(raw, &requests); err != nil {
		return nil, fmt.Errorf("review requests for %s/%s#%d: %w", owner, name, number, err)
	}
	return &requests, nil
}

// AddComment posts a comment on the pull request identified by subjectID
// and returns the URL of the created comment.
func (c *Client) AddComment(ctx context.Context, subjectID, body string) (string, error) {
	var mutation struct {
		AddComment struct {
			CommentEdge struct {
				Node struct {
					URL graphql.String `graphql:"url"`
				}
			}
		} `graphql:"addComment(input: {subjectId: $subjectId, body: $body})"`
	}

	variables := map[string]any{
		"subjectId": graphql.ID(subjectID),
		"body":      body,
	}

	if err := c.transport.Mutate(ctx, DocAddComment, variables, &mutation); err != nil {
		return "", err
	}
	return string(mutation.AddComment.CommentEdge.Node.URL), nil
}

// MergePullRequest merges the pull request identified by pullRequestID and
// reports whether it ended up merged.
func (c *Client) MergePullRequest(ctx context.Context, pullRequestID string) (bool, error) {
	var mutation struct {
		MergePullRequest struct {
			PullRequest struct {
				Merged graphql.Boolean
			}
		} `graphql:"mergePullRequest(input: {pullRequestId: $pullRequestId})"`
	}

	variables := map[string]any{
		"pullRequestId": graphql.ID(pullRequestID),
	}

	if err := c.transport.Mutate(ctx, DocMergePullRequest, variables, &mutation); err != nil {
		return false, err
	}
	return bool(mutation.MergePullRequest.PullRequest.Merged), nil
}
