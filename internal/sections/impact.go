package sections

import (
	"io"
	"iter"
	"slices"

	"github.com/3-lines-studio/lumastay/internal/core"
)

// Values come from field pilots until live Salesforce analytics replace them.
var impactMetrics = []core.ImpactMetric{
	{
		ID:     "resolution",
		Value:  "42%",
		Label:  "Faster Issue Resolution",
		Detail: "Concierge Agent resolves maintenance and amenity tasks before guests escalate.",
	},
	{
		ID:     "upsell",
		Value:  "18%",
		Label:  "Lift in Experience Upsells",
		Detail: "Guided nudges prompt timely upgrades, late check-outs, and on-property bookings.",
	},
	{
		ID:     "satisfaction",
		Value:  "94",
		Label:  "NPS with Loyal Guests",
		Detail: "Guests enjoy consistent service regardless of staffing or property occupancy.",
	},
}

var integrations = []core.Integration{
	"Salesforce Service & Data Cloud",
	"Einstein 1 Studio & Prompt Builder",
	"Flow Orchestration & Omni-Channel",
	"Digital HQ for Slack + Mobile",
}

var impactTemplate = parse("impact.html")

type impactData struct {
	Metrics      iter.Seq[core.ImpactMetric]
	Integrations iter.Seq[core.Integration]
}

func Impact(w io.Writer) error {
	return execute(w, "impact", impactTemplate, impactData{
		Metrics:      slices.Values(impactMetrics),
		Integrations: slices.Values(integrations),
	})
}
