package main

import (
	"fmt"
	"os"
	"path"
	"slices"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/limaJavier/timetable-engine/pkg/config"
	"github.com/limaJavier/timetable-engine/pkg/logger"
)

var configFileNames = []string{"timetabler.yaml", "timetabler.yml", "timetabler.json"}

// app holds what every command needs once the configuration is loaded
type app struct {
	cfgPath string
	cfg     *config.Config
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	application := &app{}

	rootCmd := &cobra.Command{
		Use:          "timetabler",
		Short:        "Academic timetable generation",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(application.cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log, err := logger.New(cfg.Env, cfg.Log)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			application.cfg = cfg
			application.logger = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = application.logger.Sync()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&application.cfgPath, "config", "c", defaultConfigPath(), "configuration file (YAML or JSON)")

	rootCmd.AddCommand(
		newGenerateCmd(application),
		newExportCmd(application),
		newStatusCmd(application),
		newVerifyCmd(application),
	)
	return rootCmd
}

// Looks for a configuration file next to the executable, returning an empty path when there is none
func defaultConfigPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	execPath = path.Dir(execPath)

	files, err := os.ReadDir(execPath)
	if err != nil {
		return ""
	}
	fileNames := lo.Map(files, func(file os.DirEntry, _ int) string { return file.Name() })

	for _, name := range configFileNames {
		if slices.Contains(fileNames, name) {
			return path.Join(execPath, name)
		}
	}
	return ""
}
