// Package simulator runs month-stepped amortization over an ordered debt
// portfolio: each month interest accrues, minimum payments apply, and the
// budget surplus goes entirely to the first remaining debt in order.
package simulator

import (
	"math"

	"fjacquet/debt-plan/internal/logging"
	"fjacquet/debt-plan/internal/models"
	"fjacquet/debt-plan/internal/planerror"

	"github.com/shopspring/decimal"
)

// DefaultMaxMonths is the circuit-breaker cap: 50 years of simulated months.
// A simulation that has not converged by then returns the cap as-is; callers
// decide how to present it.
const DefaultMaxMonths = 600

// defaultEpsilon is the balance below which a debt counts as paid. It
// absorbs sub-cent residue left by rate arithmetic.
var defaultEpsilon = decimal.NewFromFloat(0.1)

// Options tune a Simulator. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	// PayoffEpsilon is the balance at or below which a debt is considered
	// paid off.
	PayoffEpsilon decimal.Decimal

	// MaxMonths caps the simulated months.
	MaxMonths int

	// CollectSchedule records a MonthSnapshot per simulated month on the
	// result. Off by default; schedules for long simulations are large.
	CollectSchedule bool
}

// DefaultOptions returns the standard simulation options: epsilon 0.1,
// 600-month cap, no schedule.
func DefaultOptions() Options {
	return Options{
		PayoffEpsilon: defaultEpsilon,
		MaxMonths:     DefaultMaxMonths,
	}
}

// Simulator runs payoff simulations. It is stateless across calls and safe
// for concurrent use.
type Simulator struct {
	opts Options
	log  logging.Logger
}

// New builds a Simulator. Zero or missing option fields fall back to the
// defaults; a nil logger is replaced with a no-op logger.
func New(opts Options, log logging.Logger) *Simulator {
	if opts.MaxMonths <= 0 {
		opts.MaxMonths = DefaultMaxMonths
	}
	if !opts.PayoffEpsilon.IsPositive() {
		opts.PayoffEpsilon = defaultEpsilon
	}
	return &Simulator{
		opts: opts,
		log:  logging.OrNop(log),
	}
}

// workingDebt is one debt's mutable state inside a simulation run.
type workingDebt struct {
	id          string
	balance     decimal.Decimal
	monthlyRate decimal.Decimal
	minPayment  decimal.Decimal
}

// Simulate runs the amortization over the ordered portfolio at the given
// monthly budget. The input slice is never mutated. A budget below the total
// minimum payments is not rejected: minimums still apply in full each month
// and the run simply converges slowly or hits the month cap.
//
// It returns a typed error when any debt carries a balance but no positive
// minimum payment, since such a debt has no defined minimum-only payoff.
func (s *Simulator) Simulate(ordered []models.DebtRecord, monthlyBudget decimal.Decimal) (models.SimulationResult, error) {
	if len(ordered) == 0 {
		return models.SimulationResult{
			InterestSaved:     decimal.Zero,
			TotalInterestPaid: decimal.Zero,
			BaselineInterest:  decimal.Zero,
		}, nil
	}

	baseline, err := s.baselineInterest(ordered)
	if err != nil {
		return models.SimulationResult{}, err
	}

	working := make([]workingDebt, 0, len(ordered))
	for _, d := range ordered {
		if d.Balance.LessThanOrEqual(s.opts.PayoffEpsilon) {
			continue
		}
		working = append(working, workingDebt{
			id:          d.ID,
			balance:     d.Balance,
			monthlyRate: d.MonthlyRate(),
			minPayment:  d.MinimumPayment,
		})
	}

	totalInterest := decimal.Zero
	months := 0
	var schedule []models.MonthSnapshot

	for len(working) > 0 && months < s.opts.MaxMonths {
		monthInterest := decimal.Zero
		monthPaid := decimal.Zero

		// Accrue interest on every remaining debt.
		for i := range working {
			accrued := working[i].balance.Mul(working[i].monthlyRate)
			working[i].balance = working[i].balance.Add(accrued)
			monthInterest = monthInterest.Add(accrued)
		}
		totalInterest = totalInterest.Add(monthInterest)

		// Apply minimum payments, capped at each balance.
		minimumsDue := decimal.Zero
		for i := range working {
			minimumsDue = minimumsDue.Add(working[i].minPayment)
			pay := decimal.Min(working[i].minPayment, working[i].balance)
			working[i].balance = working[i].balance.Sub(pay)
			monthPaid = monthPaid.Add(pay)
		}

		// The surplus over the remaining debts' minimums goes entirely to
		// the first debt in order. Position, not identity, defines the
		// target: order is priority.
		extra := monthlyBudget.Sub(minimumsDue)
		if extra.IsPositive() {
			pay := decimal.Min(extra, working[0].balance)
			working[0].balance = working[0].balance.Sub(pay)
			monthPaid = monthPaid.Add(pay)
		}

		months++

		if s.opts.CollectSchedule {
			snap := models.MonthSnapshot{
				Month:           months,
				InterestAccrued: monthInterest,
				TotalPaid:       monthPaid,
				Balances:        make(map[string]decimal.Decimal, len(working)),
			}
			for _, w := range working {
				snap.Balances[w.id] = w.balance
			}
			schedule = append(schedule, snap)
		}

		// Drop paid-off debts; the epsilon absorbs rounding residue.
		remaining := working[:0]
		for _, w := range working {
			if w.balance.GreaterThan(s.opts.PayoffEpsilon) {
				remaining = append(remaining, w)
			}
		}
		working = remaining
	}

	if len(working) > 0 {
		s.log.Warn("simulation hit month cap before payoff",
			logging.F("max_months", s.opts.MaxMonths),
			logging.F("open_debts", len(working)),
		)
	}

	result := models.SimulationResult{
		MonthsToPayoff:    months,
		InterestSaved:     baseline.Sub(totalInterest),
		TotalInterestPaid: totalInterest,
		BaselineInterest:  baseline,
		Schedule:          schedule,
	}
	s.log.Debug("simulation complete",
		logging.F("months", result.MonthsToPayoff),
		logging.F("interest_paid", totalInterest.StringFixed(2)),
		logging.F("interest_saved", result.InterestSaved.StringFixed(2)),
	)
	return result, nil
}

// baselineInterest estimates the interest accrued if every debt were paid
// off independently at its own minimum pace: months = ceil(balance/minimum),
// interest = balance * monthlyRate * months per debt, summed. The estimate
// is deliberately simple (flat accrual on the opening balance) and is the
// fixed reference InterestSaved is measured against.
func (s *Simulator) baselineInterest(portfolio []models.DebtRecord) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, d := range portfolio {
		if d.Balance.LessThanOrEqual(decimal.Zero) {
			continue
		}
		if !d.MinimumPayment.IsPositive() {
			return decimal.Zero, &planerror.InvalidMinimumPaymentError{
				DebtID:         d.ID,
				Name:           d.Name,
				MinimumPayment: d.MinimumPayment.String(),
			}
		}
		balance, _ := d.Balance.Float64()
		minimum, _ := d.MinimumPayment.Float64()
		months := int64(math.Ceil(balance / minimum))
		total = total.Add(d.Balance.Mul(d.MonthlyRate()).Mul(decimal.NewFromInt(months)))
	}
	return total, nil
}
