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
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	gogithub "github.com/google/go-github/v60/github"
	"github.com/shurcooL/graphql"
	"golang.org/x/oauth2"

	stuberrors "github.com/joshka/vscode-pull-request-github/internal/errors"
)

// Version is the client version reported in the User-Agent header.
const Version = "0.1.0"

const defaultGraphQLEndpoint = "https://api.github.com/graphql"

// NetTransport is the real Transport implementation. The structured shape
// goes through a shurcooL GraphQL client, the procedure shape through a
// go-github REST client; both share one authenticated HTTP client.
type NetTransport struct {
	gql  *graphql.Client
	rest *gogithub.Client
}

// NetOption configures a NetTransport, e.g. for GitHub Enterprise endpoints
// or for pointing the transport at a local stub server.
type NetOption func(*netOptions)

type netOptions struct {
	graphqlEndpoint string
	restBaseURL     string
	httpClient      *http.Client
}

// WithGraphQLEndpoint overrides the GraphQL endpoint URL.
func WithGraphQLEndpoint(endpoint string) NetOption {
	return func(o *netOptions) { o.graphqlEndpoint = endpoint }
}

// WithRESTBaseURL overrides the REST API base URL. The URL must end with a
// trailing slash.
func WithRESTBaseURL(baseURL string) NetOption {
	return func(o *netOptions) { o.restBaseURL = baseURL }
}

// WithHTTPClient replaces the authenticated HTTP client entirely. Intended
// for tests.
func WithHTTPClient(client *http.Client) NetOption {
	return func(o *netOptions) { o.httpClient = client }
}

// NewNetTransport creates a transport authenticated with the provided token.
// The underlying HTTP client is configured with connection pooling, a
// User-Agent header, and a response size limit.
func NewNetTransport(token string, opts ...NetOption) (*NetTransport, error) {
	options := &netOptions{graphqlEndpoint: defaultGraphQLEndpoint}
	for _, opt := range opts {
		opt(options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		base := &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		}
		httpClient = &http.Client{
			Transport: &oauth2.Transport{
				Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
				Base:   &headerTransport{base: base},
			},
		}
	}

	rest := gogithub.NewClient(httpClient)
	if options.restBaseURL != "" {
		parsed, err := url.Parse(options.restBaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid REST base URL %q: %w", options.restBaseURL, err)
		}
		rest.BaseURL = parsed
	}

	return &NetTransport{
		gql:  graphql.NewClient(options.graphqlEndpoint, httpClient),
		rest: rest,
	}, nil
}

// Query executes the named GraphQL document and decodes the response into
// out, which must be a pointer to a shurcooL-style query struct. The
// document name identifies the call for error reporting; the query text
// itself is derived from out.
func (t *NetTransport) Query(ctx context.Context, document string, variables map[string]any, out any) error {
	if err := t.gql.Query(ctx, out, variables); err != nil {
		return t.mapError(document, err)
	}
	return nil
}

// Mutate executes the named GraphQL mutation document.
func (t *NetTransport) Mutate(ctx context.Context, document string, variables map[string]any, out any) error {
	if err := t.gql.Mutate(ctx, out, variables); err != nil {
		return t.mapError(document, err)
	}
	return nil
}

// Call dispatches a path-addressed procedure to the matching go-github
// service method. The supported procedure set mirrors the REST calls the
// extension host issues.
func (t *NetTransport) Call(ctx context.Context, path []string, args []any) (any, error) {
	name := strings.Join(path, ".")
	params, err := callParams(args)
	if err != nil {
		return nil, fmt.Errorf("procedure %s: %w", name, err)
	}

	switch name {
	case "repos.get":
		repo, _, err := t.rest.Repositories.Get(ctx, params.Owner, params.Repo)
		if err != nil {
			return nil, t.mapError(name, err)
		}
		return repo, nil
	case "pulls.get":
		pr, _, err := t.rest.PullRequests.Get(ctx, params.Owner, params.Repo, params.Number)
		if err != nil {
			return nil, t.mapError(name, err)
		}
		return pr, nil
	case "issues.listEventsForTimeline":
		timeline, _, err := t.rest.Issues.ListIssueTimeline(ctx, params.Owner, params.Repo, params.Number, &gogithub.ListOptions{PerPage: 100})
		if err != nil {
			return nil, t.mapError(name, err)
		}
		return timeline, nil
	case "repos.getCombinedStatusForRef":
		status, _, err := t.rest.Repositories.GetCombinedStatus(ctx, params.Owner, params.Repo, params.Ref, &gogithub.ListOptions{PerPage: 100})
		if err != nil {
			return nil, t.mapError(name, err)
		}
		return status, nil
	case "pulls.listRequestedReviewers":
		reviewers, _, err := t.rest.PullRequests.ListReviewers(ctx, params.Owner, params.Repo, params.Number, &gogithub.ListOptions{PerPage: 100})
		if err != nil {
			return nil, t.mapError(name, err)
		}
		return reviewers, nil
	default:
		return nil, fmt.Errorf("procedure %s: %w", name, stuberrors.ErrUnknownProcedure)
	}
}

// procedureParams is the argument object every supported procedure takes as
// its single argument.
type procedureParams struct {
	Owner  string `json:"owner"`
	Repo   string `json:"repo"`
	Number int    `json:"number"`
	Ref    string `json:"ref"`
}

func callParams(args []any) (procedureParams, error) {
	var params procedureParams
	if len(args) != 1 {
		return params, fmt.Errorf("expected 1 argument object, got %d: %w", len(args), stuberrors.ErrMalformedDescriptor)
	}
	if err := decodeValue(args[0], &params); err != nil {
		return params, fmt.Errorf("invalid argument object: %w", stuberrors.ErrMalformedDescriptor)
	}
	if params.Owner == "" || params.Repo == "" {
		return params, fmt.Errorf("argument object missing owner/repo: %w", stuberrors.ErrMalformedDescriptor)
	}
	return params, nil
}

// mapError classifies transport failures into sentinel errors with
// actionable messages.
func (t *NetTransport) mapError(call string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case isRateLimitError(err):
		return fmt.Errorf("%s: GitHub API rate limit exceeded: %w", call, stuberrors.ErrRateLimit)
	case isAuthError(err):
		return fmt.Errorf("%s: GitHub API authentication failed, check your token: %w", call, stuberrors.ErrInvalidToken)
	case isNotFoundError(err):
		return fmt.Errorf("%s: repository not found or not accessible: %w", call, stuberrors.ErrRepoNotFound)
	case isNetworkError(err):
		return fmt.Errorf("%s: network error connecting to GitHub API: %w", call, stuberrors.ErrNetworkFailure)
	default:
		return fmt.Errorf("%s: %w", call, err)
	}
}

// headerTransport adds the User-Agent header and a response size limit to
// every request.
type headerTransport struct {
	base http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", fmt.Sprintf("vscode-pull-request-github/%s", Version))

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	// 10MB response cap
	if resp.Body != nil {
		resp.Body = &limitedReader{ReadCloser: resp.Body, limit: 10 * 1024 * 1024}
	}
	return resp, nil
}

// limitedReader wraps a ReadCloser with a size limit to prevent excessive
// memory usage.
type limitedReader struct {
	io.ReadCloser
	limit int64
	read  int64
}

// Read implements io.Reader with size limit enforcement.
func (lr *limitedReader) Read(p []byte) (n int, err error) {
	if lr.read >= lr.limit {
		return 0, fmt.Errorf("response size exceeded limit of %d bytes", lr.limit)
	}

	remaining := lr.limit - lr.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err = lr.ReadCloser.Read(p)
	lr.read += int64(n)

	return n, err
}
