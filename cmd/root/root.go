// Package root contains the root command for the debt-plan CLI.
package root

import (
	"fjacquet/debt-plan/internal/advisor"
	"fjacquet/debt-plan/internal/common"
	"fjacquet/debt-plan/internal/config"
	"fjacquet/debt-plan/internal/logging"
	"fjacquet/debt-plan/internal/simulator"
	"fjacquet/debt-plan/pkg/planner"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// CommonFlags are shared by the plan and compare commands.
type CommonFlags struct {
	Input  string
	Output string
	Format string
	Budget string
}

var (
	// Cfg is the loaded application configuration, available to
	// subcommands after PersistentPreRun.
	Cfg *config.Config

	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.NewNop()

	// SharedFlags holds flag values common to subcommands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "debt-plan",
		Short: "Compute debt repayment schedules from a CSV of debts.",
		Long: `debt-plan reads a portfolio of debts from CSV, picks (or takes) a
repayment strategy, and simulates the month-by-month payoff at a given
monthly budget. It reports months to debt-free and interest saved versus
paying minimums only, and can compare all strategies side by side.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to debt-plan!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg

			Log = logging.NewLogrusAdapterFromLogger(config.ConfigureLogging(cfg))
			common.SetLogger(Log)
			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			return nil
		},
	}
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input CSV file of debts")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (stdout when empty)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "text", "Output format: text, csv or yaml")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Budget, "budget", "b", "", "Total monthly payment budget")
}

// SimulatorOptions derives simulator options from the loaded config.
func SimulatorOptions() simulator.Options {
	opts := simulator.DefaultOptions()
	if Cfg != nil {
		opts.PayoffEpsilon = Cfg.PayoffEpsilon()
		opts.MaxMonths = Cfg.Simulator.MaxMonths
	}
	return opts
}

// AdvisorThresholds derives advisor thresholds from the loaded config.
func AdvisorThresholds() advisor.Thresholds {
	thresholds := advisor.DefaultThresholds()
	if Cfg != nil {
		thresholds.HighRatePercent = Cfg.Advisor.HighRatePercent
		thresholds.LargeTotalBalance = decimal.NewFromFloat(Cfg.Advisor.LargeTotalBalance)
		thresholds.SmallBalance = decimal.NewFromFloat(Cfg.Advisor.SmallBalance)
		thresholds.MinDebtsForSnowball = Cfg.Advisor.MinDebtsForSnowball
		thresholds.MeanRatePercent = Cfg.Advisor.MeanRatePercent
	}
	return thresholds
}

// NewPlanner builds a planner wired to the loaded config and logger.
func NewPlanner() *planner.Planner {
	return planner.New(SimulatorOptions(), AdvisorThresholds(), Log)
}

// NewPlannerWithSchedule is NewPlanner with per-month schedule collection on.
func NewPlannerWithSchedule() *planner.Planner {
	opts := SimulatorOptions()
	opts.CollectSchedule = true
	return planner.New(opts, AdvisorThresholds(), Log)
}
