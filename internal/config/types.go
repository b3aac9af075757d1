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

// Package config types define the configuration structures for the stub
// server. These types can be loaded from YAML configuration files or
// environment variables.
package config

// Config is the complete stub server configuration: where to listen and
// which fixtures to serve.
type Config struct {
	Server   ServerConfig    `yaml:"server" json:"server"`
	Fixtures []FixtureConfig `yaml:"fixtures" json:"fixtures"`
}

// ServerConfig contains HTTP listener settings.
type ServerConfig struct {
	Listen      string `yaml:"listen" json:"listen"`
	GraphQLPath string `yaml:"graphql_path" json:"graphql_path"`
}

// FixtureConfig describes one pull request fixture the server responds
// with. Empty fields take defaults derived from owner/name/number.
type FixtureConfig struct {
	Owner       string   `yaml:"owner" json:"owner"`
	Name        string   `yaml:"name" json:"name"`
	Number      int      `yaml:"number" json:"number"`
	Title       string   `yaml:"title,omitempty" json:"title,omitempty"`
	Author      string   `yaml:"author,omitempty" json:"author,omitempty"`
	State       string   `yaml:"state,omitempty" json:"state,omitempty"`
	Body        string   `yaml:"body,omitempty" json:"body,omitempty"`
	BaseRef     string   `yaml:"base_ref,omitempty" json:"base_ref,omitempty"`
	HeadRef     string   `yaml:"head_ref,omitempty" json:"head_ref,omitempty"`
	HeadSHA     string   `yaml:"head_sha,omitempty" json:"head_sha,omitempty"`
	Private     bool     `yaml:"private,omitempty" json:"private,omitempty"`
	Labels      []string `yaml:"labels,omitempty" json:"labels,omitempty"`
	Assignees   []string `yaml:"assignees,omitempty" json:"assignees,omitempty"`
	Reviewers   []string `yaml:"reviewers,omitempty" json:"reviewers,omitempty"`
	ChecksState string   `yaml:"checks_state,omitempty" json:"checks_state,omitempty"`
}

// DefaultConfig returns a Config with defaults suitable for local use: a
// loopback listener and a single example fixture.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Listen:      "127.0.0.1:8080",
			GraphQLPath: "/graphql",
		},
		Fixtures: []FixtureConfig{
			{Owner: "octocat", Name: "hello-world", Number: 1},
		},
	}
}
