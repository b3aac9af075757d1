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

// Document identities for the structured call shape. These are the names of
// the GraphQL documents the client executes; expectations are registered
// against the same names.
const (
	DocRepository       = "Repository"
	DocPullRequest      = "PullRequest"
	DocTimelineEvents   = "TimelineEvents"
	DocGetChecks        = "GetChecks"
	DocReviewRequests   = "GetReviewRequests"
	DocAddComment       = "AddComment"
	DocMergePullRequest = "MergePullRequest"
)

// Procedure paths for the path-addressed call shape, following the
// service.operation naming of the REST client.
var (
	ProcRepoGet        = []string{"repos", "get"}
	ProcPullGet        = []string{"pulls", "get"}
	ProcTimeline       = []string{"issues", "listEventsForTimeline"}
	ProcCombinedStatus = []string{"repos", "getCombinedStatusForRef"}
	ProcReviewers      = []string{"pulls", "listRequestedReviewers"}
)
