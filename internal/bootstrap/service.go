package bootstrap

import (
	"context"

	"github.com/kartevonmorgen/openfairdb/internal/services/command"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mlog"
)

// Service is the application glue where we put all top level components to be used.
type Service struct {
	*Server
	Command *command.UseCase
	Logger  mlog.Logger
}

// Run starts the application.
// This is the only necessary code to run an app in main.go.
func (app *Service) Run() error {
	ctx := pkg.ContextWithLogger(context.Background(), app.Logger)

	// The index is a rebuildable cache; refill it from the repository on boot.
	if err := app.Command.ReindexAll(ctx); err != nil {
		app.Logger.Errorf("Failed to rebuild search index: %v", err)
	}

	return app.Server.Run()
}
