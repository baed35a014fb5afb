package main

import (
	"os"

	"github.com/kartevonmorgen/openfairdb/internal/bootstrap"
	"github.com/kartevonmorgen/openfairdb/pkg"
)

func main() {
	pkg.InitLocalEnvConfig()

	service := bootstrap.InitServers()

	if err := service.Run(); err != nil {
		service.Logger.Errorf("Service terminated: %v", err)
		_ = service.Logger.Sync()

		os.Exit(1)
	}

	_ = service.Logger.Sync()
}
