package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"goal-quantifier/config"
	"goal-quantifier/service"
)

var (
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "goal-quantifier",
	Short: "Inflation-adjusted future value step for the financial planning pipeline",
	Long: `goal-quantifier reads smart_goal_data from a Financial State Object,
computes the future value FV = PV * (1 + i)^n and writes it back under
quantification_data, leaving every other key untouched.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		return cfg.Validate()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(quantifyCmd)
	rootCmd.AddCommand(futureValueCmd)
	rootCmd.AddCommand(toolsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newQuantifier(cfg *config.Config, logger *zap.Logger) (*service.GoalQuantificationService, error) {
	policy, err := service.NewGrowthPolicy(cfg.Quantification.ExemptionRule)
	if err != nil {
		return nil, fmt.Errorf("exemption rule: %w", err)
	}
	return service.NewGoalQuantificationService(cfg.Quantification.InflationRate, policy, logger), nil
}
