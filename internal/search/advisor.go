package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"travel-planner/internal/domain/plan"
	"travel-planner/internal/domain/travel"
	"travel-planner/internal/llm"
)

// Seasonal notes for destinations with well-known peak periods. Matching is
// case-insensitive on the whole destination string.
var seasonalNotes = map[string]string{
	"tokyo":    "Cherry blossom season (late March to early April) drives prices up in Tokyo",
	"paris":    "Summer and fashion-week periods see peak pricing in Paris",
	"london":   "Expect higher rates in London around summer and the holiday season",
	"new york": "New York prices spike around Thanksgiving and New Year's Eve",
	"bali":     "Bali's dry season (April to October) is the busiest and priciest",
	"dubai":    "Winter months are peak season in Dubai, book early",
}

const llmTimeout = 5 * time.Second

// Advisor produces the recommendation list for a plan. Output is rule-driven
// and deterministic; an optional text generator contributes one extra
// destination line, and its failure never changes the rule output.
type Advisor struct {
	generator llm.TextGenerator
	logger    *slog.Logger
}

func NewAdvisor(generator llm.TextGenerator, logger *slog.Logger) *Advisor {
	return &Advisor{generator: generator, logger: logger}
}

// Advise returns at least two lines. The visa reminder is always last.
func (a *Advisor) Advise(ctx context.Context, sel plan.Selection, req travel.SearchRequest) []string {
	recs := []string{
		"Book flights 2-3 weeks in advance for best prices",
	}

	if sel.OverBudget {
		recs = append(recs, "Selected options exceed your budget. Consider flexible dates or alternative destinations")
	} else {
		if sel.BudgetUtilization < 70 {
			recs = append(recs, "Consider upgrading to higher quality options, you have budget flexibility")
		}
		if remaining := req.Budget - sel.TotalCost; remaining > 200 {
			recs = append(recs, fmt.Sprintf("Allocate your remaining $%.0f for activities, dining, or travel insurance", remaining))
		}
	}

	if note, ok := seasonalNotes[strings.ToLower(strings.TrimSpace(req.Destination))]; ok {
		recs = append(recs, note)
	}

	if line := a.generatedLine(ctx, req); line != "" {
		recs = append(recs, line)
	}

	return append(recs, "Verify visa requirements for the destination")
}

func (a *Advisor) generatedLine(ctx context.Context, req travel.SearchRequest) string {
	if a.generator == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"Give exactly one short practical travel tip for a trip to %s between %s and %s. Plain text, one sentence, no preamble.",
		req.Destination, req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"),
	)
	line, err := a.generator.Generate(ctx, prompt)
	if err != nil {
		a.logger.WarnContext(ctx, "advisor text generation failed",
			slog.String("destination", req.Destination), slog.String("error", err.Error()))
		return ""
	}
	return strings.TrimSpace(line)
}
