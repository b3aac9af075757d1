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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Listen != "127.0.0.1:8080" {
		t.Errorf("Listen = %q, want 127.0.0.1:8080", cfg.Server.Listen)
	}
	if cfg.Server.GraphQLPath != "/graphql" {
		t.Errorf("GraphQLPath = %q, want /graphql", cfg.Server.GraphQLPath)
	}
	if len(cfg.Fixtures) != 1 {
		t.Fatalf("len(Fixtures) = %d, want 1", len(cfg.Fixtures))
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  listen: "127.0.0.1:9999"
fixtures:
  - owner: acme
    name: rockets
    number: 5
    state: MERGED
    labels: [bug, urgent]
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Listen != "127.0.0.1:9999" {
		t.Errorf("Listen = %q, want 127.0.0.1:9999", cfg.Server.Listen)
	}
	// File did not set graphql_path, so the default survives.
	if cfg.Server.GraphQLPath != "/graphql" {
		t.Errorf("GraphQLPath = %q, want /graphql", cfg.Server.GraphQLPath)
	}
	if len(cfg.Fixtures) != 1 {
		t.Fatalf("len(Fixtures) = %d, want 1", len(cfg.Fixtures))
	}
	fx := cfg.Fixtures[0]
	if fx.Owner != "acme" || fx.Name != "rockets" || fx.Number != 5 {
		t.Errorf("fixture = %+v", fx)
	}
	if fx.State != "MERGED" {
		t.Errorf("State = %q, want MERGED", fx.State)
	}
	if len(fx.Labels) != 2 {
		t.Errorf("Labels = %v, want 2 entries", fx.Labels)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
server:
  listen: "127.0.0.1:9999"
fixtures:
  - owner: acme
    name: rockets
    number: 1
`)
	t.Setenv("GHSTUB_LISTEN", "0.0.0.0:7777")
	t.Setenv("GHSTUB_GRAPHQL_PATH", "/api/graphql")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Listen != "0.0.0.0:7777" {
		t.Errorf("Listen = %q, env override should win over file", cfg.Server.Listen)
	}
	if cfg.Server.GraphQLPath != "/api/graphql" {
		t.Errorf("GraphQLPath = %q, want /api/graphql", cfg.Server.GraphQLPath)
	}
}

func TestLoadConfigSchemaValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name: "bad state enum",
			content: `
fixtures:
  - owner: acme
    name: rockets
    number: 1
    state: REOPENED
`,
			wantMsg: "invalid configuration",
		},
		{
			name: "zero pull request number",
			content: `
fixtures:
  - owner: acme
    name: rockets
    number: 0
`,
			wantMsg: "invalid configuration",
		},
		{
			name: "missing owner",
			content: `
fixtures:
  - name: rockets
    number: 1
`,
			wantMsg: "invalid configuration",
		},
		{
			name: "relative graphql path",
			content: `
server:
  graphql_path: graphql
fixtures:
  - owner: acme
    name: rockets
    number: 1
`,
			wantMsg: "invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("err = %v, want %q in message", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "server: [not a mapping")

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "failed to load config file") {
		t.Errorf("err = %v, want load failure message", err)
	}
}
