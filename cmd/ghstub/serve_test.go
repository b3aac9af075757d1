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

package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/joshka/vscode-pull-request-github/internal/config"
)

func TestMapErrorToExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, 0},
		{"config error", fmt.Errorf("%w: bad yaml", errConfig), 2},
		{"general error", errors.New("something failed"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapErrorToExitCode(tt.err); got != tt.want {
				t.Errorf("mapErrorToExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFixtureFromConfig(t *testing.T) {
	fc := config.FixtureConfig{
		Owner:       "acme",
		Name:        "rockets",
		Number:      5,
		Title:       "Bigger engines",
		State:       "MERGED",
		Labels:      []string{"enhancement"},
		Reviewers:   []string{"bob"},
		ChecksState: "SUCCESS",
	}

	fx := fixtureFromConfig(fc)
	if fx.Owner != "acme" || fx.Name != "rockets" || fx.Number != 5 {
		t.Errorf("identity = %s/%s#%d, want acme/rockets#5", fx.Owner, fx.Name, fx.Number)
	}
	if fx.State != "MERGED" {
		t.Errorf("State = %q, want MERGED", fx.State)
	}
	if len(fx.Labels) != 1 || len(fx.Reviewers) != 1 {
		t.Errorf("Labels/Reviewers = %v/%v, want one each", fx.Labels, fx.Reviewers)
	}
}

func TestRunServeBadConfig(t *testing.T) {
	err := runServe(t.Context(), "/nonexistent/config.yaml", "")
	if !errors.Is(err, errConfig) {
		t.Errorf("err = %v, want errConfig", err)
	}
	if got := mapErrorToExitCode(err); got != 2 {
		t.Errorf("exit code = %d, want 2", got)
	}
}
