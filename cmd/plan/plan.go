// Package plan implements the plan subcommand: recommend (or take) a
// strategy, order the portfolio and simulate the payoff.
package plan

import (
	"context"
	"fmt"
	"time"

	"fjacquet/debt-plan/cmd/root"
	"fjacquet/debt-plan/internal/common"
	"fjacquet/debt-plan/internal/explainer"
	"fjacquet/debt-plan/internal/models"
	"fjacquet/debt-plan/pkg/planner"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	strategyFlag string
	explainFlag  bool
	scheduleFlag bool
)

// Cmd is the plan command.
var Cmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a payoff plan for a debt portfolio",
	Long: `Read debts from CSV, pick the recommended strategy (or apply a forced
one), and simulate the month-by-month payoff at the given budget.`,
	RunE: runPlan,
}

// Init registers the plan command flags.
func Init() {
	Cmd.Flags().StringVarP(&strategyFlag, "strategy", "s", "", "Force a strategy instead of the recommendation (snowball, avalanche, highest-balance, lowest-balance, highest-interest, custom)")
	Cmd.Flags().BoolVarP(&explainFlag, "explain", "e", false, "Add a natural-language explanation of the plan")
	Cmd.Flags().BoolVar(&scheduleFlag, "schedule", false, "Include the per-month schedule in the output")
}

func runPlan(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("--input CSV file is required")
	}
	if root.SharedFlags.Budget == "" {
		return fmt.Errorf("--budget is required")
	}

	budget, err := common.ParseAmount(root.SharedFlags.Budget)
	if err != nil {
		return err
	}

	debts, err := common.ReadDebtsFromCSV(root.SharedFlags.Input)
	if err != nil {
		return err
	}

	p := root.NewPlanner()
	if scheduleFlag {
		p = root.NewPlannerWithSchedule()
	}

	var result planner.Plan
	if strategyFlag != "" {
		strategy, err := planner.ParseStrategy(strategyFlag)
		if err != nil {
			return err
		}
		result, err = p.BuildPlanWith(debts, strategy, budget)
		if err != nil {
			return err
		}
	} else {
		result, err = p.BuildPlan(debts, budget)
		if err != nil {
			return err
		}
	}

	explanation := ""
	if explainFlag {
		explanation = explainPlan(debts, budget, result)
	}

	return render(result, explanation)
}

// explainPlan produces the optional explanation, via Gemini when configured
// and the offline template otherwise. Explanation failures never block plan
// output.
func explainPlan(debts []models.DebtRecord, budget decimal.Decimal, result planner.Plan) string {
	timeout := 30 * time.Second
	if root.Cfg != nil && root.Cfg.AI.TimeoutSeconds > 0 {
		timeout = time.Duration(root.Cfg.AI.TimeoutSeconds) * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	text, err := buildExplainer(ctx).Explain(ctx, explainer.PlanSummary{
		Strategy:      result.Strategy,
		Debts:         debts,
		MonthlyBudget: budget,
		Result:        result.Result,
	})
	if err != nil {
		root.Log.WithError(err).Warn("failed to generate plan explanation")
		return ""
	}
	return text
}

// buildExplainer picks the Gemini explainer when AI is configured and the
// offline template otherwise.
func buildExplainer(ctx context.Context) explainer.Explainer {
	if root.Cfg != nil && root.Cfg.AI.Enabled && root.Cfg.AI.APIKey != "" {
		g, err := explainer.NewGeminiExplainer(ctx, root.Cfg.AI.APIKey, root.Cfg.AI.Model, root.Log)
		if err != nil {
			root.Log.WithError(err).Warn("failed to initialize Gemini explainer, using template")
			return explainer.TemplateExplainer{}
		}
		return g
	}
	return explainer.TemplateExplainer{}
}

type planYAML struct {
	Strategy    string                  `yaml:"strategy"`
	Description string                  `yaml:"description"`
	Order       []string                `yaml:"order"`
	Result      models.SimulationResult `yaml:"result"`
	Explanation string                  `yaml:"explanation,omitempty"`
}

func render(result planner.Plan, explanation string) error {
	switch root.SharedFlags.Format {
	case "yaml":
		out := planYAML{
			Strategy:    result.Strategy.String(),
			Description: result.Strategy.Description(),
			Order:       debtIDs(result.Ordered),
			Result:      result.Result,
			Explanation: explanation,
		}
		if root.SharedFlags.Output != "" {
			return common.WriteYAML(out, root.SharedFlags.Output)
		}
		text, err := common.MarshalYAML(out)
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	case "csv":
		if root.SharedFlags.Output == "" {
			return fmt.Errorf("--output is required for csv format")
		}
		if len(result.Result.Schedule) == 0 {
			return fmt.Errorf("csv format requires --schedule")
		}
		return common.WriteScheduleToCSV(result.Result.Schedule, root.SharedFlags.Output)
	case "text", "":
		printText(result, explanation)
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", root.SharedFlags.Format)
	}
}

func debtIDs(debts []models.DebtRecord) []string {
	ids := make([]string, len(debts))
	for i, d := range debts {
		ids[i] = d.ID
	}
	return ids
}

func printText(result planner.Plan, explanation string) {
	fmt.Printf("Strategy: %s - %s\n", result.Strategy, result.Strategy.Description())
	fmt.Println("Payoff order:")
	for i, d := range result.Ordered {
		fmt.Printf("  %d. %s (%s): balance %s at %.2f%%, minimum %s\n",
			i+1, d.Name, d.ID, d.Balance.StringFixed(2), d.AnnualRatePercent, d.MinimumPayment.StringFixed(2))
	}
	fmt.Printf("Months to debt-free: %s\n", formatMonths(result.Result.MonthsToPayoff))
	fmt.Printf("Interest paid: %s\n", result.Result.TotalInterestPaid.StringFixed(2))
	fmt.Printf("Interest saved vs minimums only: %s\n", result.Result.InterestSaved.StringFixed(2))
	if len(result.Result.Schedule) > 0 {
		fmt.Println("Schedule:")
		for _, m := range result.Result.Schedule {
			fmt.Printf("  month %3d: interest %s, paid %s\n",
				m.Month, m.InterestAccrued.StringFixed(2), m.TotalPaid.StringFixed(2))
		}
	}
	if explanation != "" {
		fmt.Printf("\n%s\n", explanation)
	}
}

// formatMonths applies the presentation rule for the non-convergence cap:
// the engine reports the capped month count, the CLI shows it as "never".
func formatMonths(months int) string {
	if months >= root.SimulatorOptions().MaxMonths {
		return fmt.Sprintf("never (still open after %d months)", months)
	}
	return fmt.Sprintf("%d", months)
}
