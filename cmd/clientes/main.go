package main

import (
	"os"

	"github.com/dvcrn/clientes-client/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Get().Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
