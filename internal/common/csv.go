// Package common provides the CSV and YAML input/output shared by the CLI
// commands.
package common

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/debt-plan/internal/logging"
	"fjacquet/debt-plan/internal/models"
	"fjacquet/debt-plan/internal/planerror"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var log logging.Logger = logging.NewNop()

// Global CSV delimiter, configurable from the config layer.
var Delimiter rune = ','

// SetDelimiter sets the delimiter used for CSV input and output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger installs a configured logger. Nil is ignored.
func SetLogger(logger logging.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// ReadDebtsFromCSV reads a debt portfolio from a CSV file with columns
// id, name, balance, annual_rate_percent, minimum_payment. Rows are
// validated against the engine's input contract before being returned.
func ReadDebtsFromCSV(filePath string) ([]models.DebtRecord, error) {
	log.Debug("reading debts from CSV", logging.F("file", filePath))

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("failed to close file")
		}
	}()

	var debts []models.DebtRecord
	if err := gocsv.UnmarshalFile(file, &debts); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	for _, d := range debts {
		if err := validateDebt(d); err != nil {
			return nil, err
		}
	}

	log.Debug("read debts from CSV", logging.F("count", len(debts)))
	return debts, nil
}

// validateDebt enforces the boundary contract: balance and rate must be
// non-negative, and a debt with a balance needs a positive minimum payment.
func validateDebt(d models.DebtRecord) error {
	if d.Balance.IsNegative() {
		return &planerror.InvalidDebtError{
			DebtID: d.ID,
			Field:  "balance",
			Value:  d.Balance.String(),
			Reason: "must be non-negative",
		}
	}
	if d.AnnualRatePercent < 0 {
		return &planerror.InvalidDebtError{
			DebtID: d.ID,
			Field:  "annual_rate_percent",
			Value:  fmt.Sprintf("%g", d.AnnualRatePercent),
			Reason: "must be non-negative",
		}
	}
	if d.Balance.IsPositive() && !d.MinimumPayment.IsPositive() {
		return &planerror.InvalidMinimumPaymentError{
			DebtID:         d.ID,
			Name:           d.Name,
			MinimumPayment: d.MinimumPayment.String(),
		}
	}
	return nil
}

// comparisonRow is the flat CSV shape of one comparison outcome.
type comparisonRow struct {
	Strategy          string `csv:"strategy"`
	MonthsToPayoff    int    `csv:"months_to_payoff"`
	InterestSaved     string `csv:"interest_saved"`
	TotalInterestPaid string `csv:"total_interest_paid"`
}

// WriteComparisonToCSV writes ranked strategy outcomes to a CSV file.
func WriteComparisonToCSV(outcomes []models.StrategyOutcome, csvFile string) error {
	rows := make([]comparisonRow, 0, len(outcomes))
	for _, o := range outcomes {
		rows = append(rows, comparisonRow{
			Strategy:          o.Strategy.String(),
			MonthsToPayoff:    o.Result.MonthsToPayoff,
			InterestSaved:     o.Result.InterestSaved.StringFixed(2),
			TotalInterestPaid: o.Result.TotalInterestPaid.StringFixed(2),
		})
	}
	return writeCSVFile(rows, csvFile)
}

// scheduleRow is the flat CSV shape of one simulated month.
type scheduleRow struct {
	Month           int    `csv:"month"`
	InterestAccrued string `csv:"interest_accrued"`
	TotalPaid       string `csv:"total_paid"`
}

// WriteScheduleToCSV writes the per-month schedule of a simulation result.
func WriteScheduleToCSV(schedule []models.MonthSnapshot, csvFile string) error {
	rows := make([]scheduleRow, 0, len(schedule))
	for _, m := range schedule {
		rows = append(rows, scheduleRow{
			Month:           m.Month,
			InterestAccrued: m.InterestAccrued.StringFixed(2),
			TotalPaid:       m.TotalPaid.StringFixed(2),
		})
	}
	return writeCSVFile(rows, csvFile)
}

func writeCSVFile[TRow any](rows []TRow, csvFile string) error {
	log.Debug("writing CSV file", logging.F("file", csvFile), logging.F("rows", len(rows)))

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}

// WriteYAML marshals any result value to a YAML file. Used for the CLI's
// --format yaml output.
func WriteYAML(value interface{}, path string) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("error marshaling YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("error writing YAML file: %w", err)
	}
	return nil
}

// MarshalYAML renders any result value as YAML for stdout output.
func MarshalYAML(value interface{}) (string, error) {
	data, err := yaml.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("error marshaling YAML: %w", err)
	}
	return string(data), nil
}

// ParseAmount converts a CLI amount argument into a decimal, rejecting
// negative values.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount %q must be non-negative", s)
	}
	return amount, nil
}
