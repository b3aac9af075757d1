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
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshka/vscode-pull-request-github/internal/config"
	"github.com/joshka/vscode-pull-request-github/internal/fixtures"
	"github.com/joshka/vscode-pull-request-github/internal/mock"
	"github.com/joshka/vscode-pull-request-github/internal/stubserver"
)

// errConfig marks configuration failures for exit-code mapping.
var errConfig = errors.New("configuration error")

// serveCmd represents the serve command
func newServeCommand() *cobra.Command {
	var (
		configPath string
		listen     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve fixtures over GraphQL and REST endpoints",
		Long: `Serve canned GitHub responses from a fixture configuration file.

Fixtures are defined in YAML:

  server:
    listen: "127.0.0.1:8080"
  fixtures:
    - owner: octocat
      name: hello-world
      number: 1
      state: OPEN

Without --config, standard locations are searched (.ghstub.yaml, then
~/.ghstub/config.yaml) and built-in defaults apply if none exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath, listen)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Fixture configuration file (default: search standard locations)")
	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (overrides config file and GHSTUB_LISTEN)")

	return cmd
}

// runServe executes the serve command
func runServe(ctx context.Context, configPath, listenFlag string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("%w: %v", errConfig, err)
	}
	if listenFlag != "" {
		cfg.Server.Listen = listenFlag
	}

	registry := mock.NewRegistry()
	for _, fc := range cfg.Fixtures {
		fx := fixtureFromConfig(fc)
		fixtures.RegisterGraphQL(registry, fx)
		fixtures.RegisterREST(registry, fx)
	}

	handler := stubserver.NewServer(registry,
		stubserver.WithGraphQLPath(cfg.Server.GraphQLPath))

	listener, err := net.Listen("tcp", cfg.Server.Listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Server.Listen, err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Shut down cleanly on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(listener)
	}()

	fmt.Fprintf(os.Stderr, "ghstub: serving %d fixture(s) on http://%s\n",
		len(cfg.Fixtures), listener.Addr())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// fixtureFromConfig converts a config fixture definition into the assembler
// input.
func fixtureFromConfig(fc config.FixtureConfig) fixtures.Fixture {
	return fixtures.Fixture{
		Owner:       fc.Owner,
		Name:        fc.Name,
		Number:      fc.Number,
		Title:       fc.Title,
		Author:      fc.Author,
		State:       fc.State,
		Body:        fc.Body,
		BaseRef:     fc.BaseRef,
		HeadRef:     fc.HeadRef,
		HeadSHA:     fc.HeadSHA,
		Private:     fc.Private,
		Labels:      fc.Labels,
		Assignees:   fc.Assignees,
		Reviewers:   fc.Reviewers,
		ChecksState: fc.ChecksState,
	}
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, errConfig) {
		return 2 // Configuration errors
	}

	return 1 // General error
}
