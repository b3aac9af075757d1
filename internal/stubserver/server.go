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

// Package stubserver exposes a registry of canned expectations over HTTP, so
// clients built for the real GitHub API can run against local fixtures
// without code changes. The GraphQL endpoint and the REST routes translate
// incoming requests into call descriptors and answer from the same
// expectation registry the in-process mock transport uses.
package stubserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	stuberrors "github.com/joshka/vscode-pull-request-github/internal/errors"
	"github.com/joshka/vscode-pull-request-github/internal/github"
	"github.com/joshka/vscode-pull-request-github/internal/mock"
)

// Server is an http.Handler serving GraphQL and REST stub endpoints from a
// shared expectation registry.
type Server struct {
	registry *mock.Registry
	emulator *mock.Emulator
	mux      *http.ServeMux
}

// ServerOption configures a Server at construction time.
type ServerOption func(*serverOptions)

type serverOptions struct {
	graphqlPath string
}

// WithGraphQLPath overrides the GraphQL endpoint path (default /graphql).
func WithGraphQLPath(path string) ServerOption {
	return func(o *serverOptions) { o.graphqlPath = path }
}

// NewServer creates a stub server reading from registry.
func NewServer(registry *mock.Registry, opts ...ServerOption) *Server {
	options := &serverOptions{graphqlPath: "/graphql"}
	for _, opt := range opts {
		opt(options)
	}

	s := &Server{
		registry: registry,
		emulator: mock.NewEmulator(registry),
		mux:      http.NewServeMux(),
	}

	s.mux.HandleFunc("POST "+options.graphqlPath, s.handleGraphQL)
	s.mux.HandleFunc("GET /repos/{owner}/{repo}", s.handleProcedure(github.ProcRepoGet, false))
	s.mux.HandleFunc("GET /repos/{owner}/{repo}/pulls/{number}", s.handleProcedure(github.ProcPullGet, true))
	s.mux.HandleFunc("GET /repos/{owner}/{repo}/pulls/{number}/requested_reviewers", s.handleProcedure(github.ProcReviewers, true))
	s.mux.HandleFunc("GET /repos/{owner}/{repo}/issues/{number}/timeline", s.handleProcedure(github.ProcTimeline, true))
	s.mux.HandleFunc("GET /repos/{owner}/{repo}/commits/{ref}/status", s.handleCombinedStatus)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// graphqlRequest is the standard GraphQL-over-HTTP request body.
type graphqlRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}

func (s *Server) handleGraphQL(w http.ResponseWriter, r *http.Request) {
	var req graphqlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"errors": []graphqlError{{Message: fmt.Sprintf("invalid request body: %v", err)}},
		})
		return
	}

	document := req.OperationName
	if document == "" {
		document = classifyDocument(req.Query)
	}

	var (
		env mock.Envelope
		err error
	)
	if strings.HasPrefix(strings.TrimSpace(req.Query), "mutation") {
		env, err = s.emulator.EmulateMutation(document, req.Variables)
	} else {
		env, err = s.emulator.EmulateQuery(document, req.Variables)
	}
	if err != nil {
		// GraphQL reports resolution failures in the errors array, not the
		// HTTP status.
		writeJSON(w, http.StatusOK, map[string]any{
			"errors": []graphqlError{{Message: err.Error()}},
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": env.Data})
}

// classifyDocument maps raw GraphQL query text onto a document identity.
// Every query the client issues selects repository at the root, so identity
// comes from the distinguishing nested selection; most specific first.
func classifyDocument(query string) string {
	switch {
	case strings.Contains(query, "addComment("):
		return github.DocAddComment
	case strings.Contains(query, "mergePullRequest("):
		return github.DocMergePullRequest
	case strings.Contains(query, "timelineItems"):
		return github.DocTimelineEvents
	case strings.Contains(query, "reviewRequests"):
		return github.DocReviewRequests
	case strings.Contains(query, "status"):
		return github.DocGetChecks
	case strings.Contains(query, "pullRequest("):
		return github.DocPullRequest
	case strings.Contains(query, "repository("):
		return github.DocRepository
	default:
		return ""
	}
}

// handleProcedure builds a REST handler that forwards to the procedure with
// the given path. withNumber selects between the two argument object shapes
// the routes use.
func (s *Server) handleProcedure(path []string, withNumber bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		args := map[string]any{
			"owner": r.PathValue("owner"),
			"repo":  r.PathValue("repo"),
		}
		if withNumber {
			number, err := strconv.Atoi(r.PathValue("number"))
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]any{
					"message": fmt.Sprintf("invalid pull request number %q", r.PathValue("number")),
				})
				return
			}
			args["number"] = number
		}
		s.emulateREST(w, path, []any{args})
	}
}

func (s *Server) handleCombinedStatus(w http.ResponseWriter, r *http.Request) {
	args := map[string]any{
		"owner": r.PathValue("owner"),
		"repo":  r.PathValue("repo"),
		"ref":   r.PathValue("ref"),
	}
	s.emulateREST(w, github.ProcCombinedStatus, []any{args})
}

func (s *Server) emulateREST(w http.ResponseWriter, path []string, args []any) {
	response, err := s.emulator.EmulateProcedure(path, args)
	if err != nil {
		switch {
		case errors.Is(err, stuberrors.ErrUnexpectedCall):
			writeJSON(w, http.StatusNotFound, map[string]any{"message": err.Error()})
		default:
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": err.Error()})
		}
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	// Encoding canned fixtures cannot fail in practice; a broken connection
	// is the client's problem.
	_ = json.NewEncoder(w).Encode(body)
}
