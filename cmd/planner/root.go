package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vmdash/scenario-planner/internal/config"
	"github.com/vmdash/scenario-planner/pkg/log"
)

var rootCmd = &cobra.Command{
	Use: "planner",
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

// initLogger installs the global zap logger at the configured level.
func initLogger(cfg *config.Config) func() {
	logLvl, err := zap.ParseAtomicLevel(cfg.Service.LogLevel)
	if err != nil {
		logLvl = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger := log.InitLog(logLvl)
	undo := zap.ReplaceGlobals(logger)
	return func() {
		_ = logger.Sync()
		undo()
	}
}
