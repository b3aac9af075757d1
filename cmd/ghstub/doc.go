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

// Package main implements the ghstub command-line interface. This tool
// serves canned GitHub API responses over HTTP, so integration tests and
// local development can run against fixtures instead of the live API.
//
// The CLI supports:
//   - Serving GraphQL and REST endpoints from fixture definitions
//   - YAML fixture configuration with schema validation
//   - Listener overrides via flag or environment variable
//
// Usage:
//
//	ghstub serve [flags]
//
// Example:
//
//	ghstub serve --config fixtures.yaml --listen 127.0.0.1:8080
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Configuration error
package main
