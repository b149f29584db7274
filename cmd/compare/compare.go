// Package compare implements the compare subcommand: simulate every
// non-custom strategy over the portfolio and rank the outcomes.
package compare

import (
	"fmt"

	"fjacquet/debt-plan/cmd/root"
	"fjacquet/debt-plan/internal/common"
	"fjacquet/debt-plan/internal/models"

	"github.com/spf13/cobra"
)

// Cmd is the compare command.
var Cmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all repayment strategies for a debt portfolio",
	Long: `Read debts from CSV and simulate every strategy (snowball, avalanche,
highest-balance, lowest-balance, highest-interest) at the given budget,
ranked by months to payoff.`,
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
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

	outcomes, err := root.NewPlanner().Compare(debts, budget)
	if err != nil {
		return err
	}

	recommended := root.NewPlanner().Recommend(debts)
	return render(outcomes, recommended)
}

func render(outcomes []models.StrategyOutcome, recommended models.Strategy) error {
	switch root.SharedFlags.Format {
	case "csv":
		if root.SharedFlags.Output == "" {
			return fmt.Errorf("--output is required for csv format")
		}
		return common.WriteComparisonToCSV(outcomes, root.SharedFlags.Output)
	case "yaml":
		out := comparisonYAML{
			Recommended: recommended.String(),
			Outcomes:    outcomes,
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
	case "text", "":
		printText(outcomes, recommended)
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", root.SharedFlags.Format)
	}
}

type comparisonYAML struct {
	Recommended string                   `yaml:"recommended"`
	Outcomes    []models.StrategyOutcome `yaml:"outcomes"`
}

func printText(outcomes []models.StrategyOutcome, recommended models.Strategy) {
	fmt.Printf("Recommended strategy: %s\n\n", recommended)
	fmt.Printf("%-18s %8s %15s %15s\n", "strategy", "months", "interest paid", "interest saved")
	for _, o := range outcomes {
		marker := " "
		if o.Strategy == recommended {
			marker = "*"
		}
		fmt.Printf("%s%-17s %8d %15s %15s\n",
			marker, o.Strategy,
			o.Result.MonthsToPayoff,
			o.Result.TotalInterestPaid.StringFixed(2),
			o.Result.InterestSaved.StringFixed(2))
	}
}
