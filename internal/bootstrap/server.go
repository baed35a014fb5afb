package bootstrap

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/kartevonmorgen/openfairdb/pkg/mlog"
)

// Server represents the http server of the service.
type Server struct {
	app           *fiber.App
	serverAddress string
	logger        mlog.Logger
}

// ServerAddress returns is a convenience method to return the server address.
func (s *Server) ServerAddress() string {
	return s.serverAddress
}

// NewServer creates an instance of Server.
func NewServer(cfg *Config, app *fiber.App, logger mlog.Logger) *Server {
	return &Server{
		app:           app,
		serverAddress: cfg.ServerAddress,
		logger:        logger,
	}
}

// Run serves HTTP until the process receives a termination signal, then
// shuts down gracefully.
func (s *Server) Run() error {
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	errs := make(chan error, 1)

	go func() {
		s.logger.Infof("Listening on %s", s.serverAddress)

		errs <- s.app.Listen(s.serverAddress)
	}()

	select {
	case err := <-errs:
		return err
	case sig := <-shutdown:
		s.logger.Infof("Received signal %v, shutting down", sig)

		return s.app.Shutdown()
	}
}
