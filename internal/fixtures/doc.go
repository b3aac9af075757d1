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

// Package fixtures assembles realistic canned responses for the call
// descriptors the pull-request client issues, and registers them against a
// mock registry.
//
// A Fixture describes one pull request and the repository it belongs to.
// RegisterGraphQL seeds expectations for the structured call shape,
// RegisterREST for the path-addressed one; both cover the same fixed
// descriptor set (repository metadata, pull-request detail, timeline
// events, combined status, review requests) keyed by owner, repository
// name, number, and head ref.
//
// Payloads are built with fluent builders so tests can shape individual
// responses without sharing mutable builder state:
//
//	payload := fixtures.NewPullRequestBuilder(5).
//	    WithTitle("Fix the parser").
//	    WithAuthor("alice").
//	    Build()
package fixtures
