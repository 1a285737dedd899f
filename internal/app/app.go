// SPDX-License-Identifier: MIT

// Package app wires configuration, table loading, network building and the HTTP API.
package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/tubemap/internal/config"
	"github.com/katalvlaran/tubemap/internal/httpapi"
)

// App serves one loaded Session over HTTP.
type App struct {
	session *Session
	server  *httpapi.Server
	logger  *zap.Logger
}

// New loads the network named by cfg and constructs the HTTP server.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	session, err := Load(cfg, logger)
	if err != nil {
		return nil, err
	}

	handler := httpapi.NewHandler(session.Network,
		httpapi.WithPalette(session.Palette),
		httpapi.WithCacheTTL(cfg.Server.CacheTTL),
		httpapi.WithLogger(logger),
	)
	server := httpapi.NewServer(cfg.HTTPAddress(), handler.Router(), logger)

	return &App{
		session: session,
		server:  server,
		logger:  logger,
	}, nil
}

// Session returns the loaded network and statistics.
func (a *App) Session() *Session {
	return a.session
}

// Run serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}
