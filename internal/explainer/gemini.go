package explainer

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/debt-plan/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiExplainer asks the Gemini API for a plan explanation and falls back
// to the template explanation when the call fails.
type GeminiExplainer struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	fallback TemplateExplainer
	log      logging.Logger
}

// NewGeminiExplainer creates a Gemini-backed explainer. The API key must be
// non-empty; modelName falls back to gemini-2.0-flash when empty.
func NewGeminiExplainer(ctx context.Context, apiKey, modelName string, log logging.Logger) (*GeminiExplainer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is empty")
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiExplainer{
		client: client,
		model:  client.GenerativeModel(modelName),
		log:    logging.OrNop(log),
	}, nil
}

// Close releases the underlying API client.
func (g *GeminiExplainer) Close() error {
	return g.client.Close()
}

// Explain generates an explanation for the plan. API failures are logged and
// answered with the template fallback instead of an error, so an outage
// never blocks plan output.
func (g *GeminiExplainer) Explain(ctx context.Context, summary PlanSummary) (string, error) {
	prompt := buildPrompt(summary)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		g.log.WithError(err).Warn("Gemini API call failed, using fallback explanation")
		return g.fallback.Explain(ctx, summary)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		g.log.Warn("empty Gemini response, using fallback explanation")
		return g.fallback.Explain(ctx, summary)
	}

	text := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return strings.TrimSpace(text), nil
}

func buildPrompt(summary PlanSummary) string {
	var debts strings.Builder
	for _, d := range summary.Debts {
		fmt.Fprintf(&debts, "- %s: balance %s, rate %.2f%%/year, minimum payment %s\n",
			d.Name, d.Balance.StringFixed(2), d.AnnualRatePercent, d.MinimumPayment.StringFixed(2))
	}

	return fmt.Sprintf(`Explain this debt repayment plan in plain language.

Strategy: %s (%s)
Monthly budget: %s
Months to debt-free: %d
Total interest paid: %s
Interest saved versus minimum payments only: %s

Debts:
%s
Write 3-4 sentences. Explain why this ordering fits this portfolio, mention
the months to payoff and interest saved, and stay realistic: no promises,
no financial advice disclaimers.`,
		summary.Strategy, summary.Strategy.Description(),
		summary.MonthlyBudget.StringFixed(2),
		summary.Result.MonthsToPayoff,
		summary.Result.TotalInterestPaid.StringFixed(2),
		summary.Result.InterestSaved.StringFixed(2),
		debts.String())
}
