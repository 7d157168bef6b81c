package briefing

import (
	"math"
	"strings"
	"text/template"
	"time"

	"github.com/guregu/null/v6"

	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/pkg/utils"
)

const notAvailable = "N/A"

const promptTemplate = `Here is today's economic data ({{.Today}}):

HEADLINE NUMBERS:
- GDP: ${{num .Summary.GDP.Value 2}}T ({{.Summary.GDP.Label}}), {{signed .Summary.GDP.Change 1}}% annualized growth
- Unemployment: {{num .Summary.Unemployment.Value 1}}%, {{movement .Summary.Unemployment.Change 1}} from prior month
- CPI (YoY): {{num .Summary.Inflation.Value 1}}%, {{movement .Summary.Inflation.Change 1}} from prior month
- Fed Funds Rate: {{num .Summary.FedFunds.Value 2}}%, {{movement .Summary.FedFunds.Change 2}}

YIELD CURVE:
- 2Y Treasury: {{num .TwoYear 2}}%
- 10Y Treasury: {{num .TenYear 2}}%
- 2Y-10Y Spread: {{num .RecessionIndicators.CurrentSpread 2}}% ({{if .RecessionIndicators.YieldInversion.Bool}}INVERTED{{else}}positive/normal{{end}})

RECESSION INDICATORS:
- Sahm Rule: {{num .RecessionIndicators.SahmRule 2}} (threshold is 0.5 - above = recession signal)
- Yield Curve: {{if .RecessionIndicators.YieldInversion.Bool}}Inverted (recession signal){{else}}Normal (no signal){{end}}
- Unemployment Trend: {{text .RecessionIndicators.UnemploymentTrend}}

HOUSING:
- 30Y Mortgage Rate: {{num .Mortgage30 2}}%
- Housing Starts: {{num .HousingStarts 2}}M annualized

LABOR MARKET:
- Job Openings (JOLTS): {{num .LaborMarket.Jolts 2}}M
- Quits Rate: {{num .LaborMarket.Quits 1}}%
- Hires: {{num .LaborMarket.Hires 1}}M
- Labor Force Participation: {{num .LaborMarket.Participation 1}}%

Write a concise economic briefing (150-200 words) for a federal policy analyst or informed citizen. Structure it as:

1. **The Big Picture** (1-2 sentences): Overall economic assessment
2. **What Changed** (2-3 bullet points): Notable recent developments
3. **Watch List** (1-2 bullet points): Risks or indicators to monitor
4. **Bottom Line** (1 sentence): Summary takeaway

Guidelines:
- Be factual and balanced - avoid political commentary
- Use plain English, not jargon
- Reference specific numbers from the data
- Note any recession signals or their absence
- Compare current values to historical norms where relevant (e.g., 4% unemployment is historically low, 2% is the Fed's inflation target)

Do not include a title or date header - those will be added separately.`

var prompt = template.Must(template.New("briefing").Funcs(template.FuncMap{
	"num":      formatNumber,
	"signed":   formatSigned,
	"movement": formatMovement,
	"text":     formatText,
}).Parse(promptTemplate))

type promptData struct {
	*domain.EconomicSummary
	Today         string
	TwoYear       null.Float
	TenYear       null.Float
	HousingStarts null.Float
}

// BuildPrompt renders the narrative request for an economy summary.
// Unavailable figures render as N/A.
func BuildPrompt(summary *domain.EconomicSummary, now time.Time) (string, error) {
	data := promptData{
		EconomicSummary: summary,
		Today:           now.UTC().Format("Monday, January 2, 2006"),
		TwoYear:         maturity(summary.YieldCurve, "2Y"),
		TenYear:         maturity(summary.YieldCurve, "10Y"),
	}
	if n := len(summary.HousingData); n > 0 {
		data.HousingStarts = null.FloatFrom(summary.HousingData[n-1].Starts)
	}

	var sb strings.Builder
	if err := prompt.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func maturity(curve []domain.YieldPoint, label string) null.Float {
	for _, p := range curve {
		if p.Maturity == label {
			return null.FloatFrom(p.Yield)
		}
	}
	return null.Float{}
}

func formatNumber(v null.Float, places int) string {
	if !v.Valid {
		return notAvailable
	}
	return utils.FormatFixed(v.Float64, int32(places))
}

func formatSigned(v null.Float, places int) string {
	if v.Valid && v.Float64 > 0 {
		return "+" + formatNumber(v, places)
	}
	return formatNumber(v, places)
}

func formatMovement(v null.Float, places int) string {
	switch {
	case !v.Valid:
		return notAvailable
	case v.Float64 > 0:
		return "up " + formatNumber(v, places)
	case v.Float64 < 0:
		return "down " + formatNumber(null.FloatFrom(math.Abs(v.Float64)), places)
	default:
		return "unchanged"
	}
}

func formatText(v null.String) string {
	if !v.Valid || v.String == "" {
		return notAvailable
	}
	return v.String
}
