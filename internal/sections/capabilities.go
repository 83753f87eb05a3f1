package sections

import (
	"io"
	"iter"
	"slices"

	"github.com/3-lines-studio/lumastay/internal/core"
)

// Swapping the records below is how the cards are customized.
var capabilities = []core.Capability{
	{
		ID:          "knowledge",
		Name:        "Property Knowledge Graph",
		Description: "A living context model connects rooms, amenities, loyalty profiles, and on-property teams so the Concierge Agent answers with confidence.",
		Highlights: []string{
			"Auto-ingests brand standards & SOPs",
			"Learns from every resolved guest case",
			"Surfaces micro-moments for upsell",
		},
	},
	{
		ID:          "automation",
		Name:        "Agentic Automation",
		Description: "Secure workflows inside Salesforce execute on behalf of the associate, booking amenities, logging tasks, and orchestrating collaborators.",
		Highlights: []string{
			"One-click service recovery journeys",
			"Interleaves with Flow, Omni-Channel, and Mobile",
			"Guardrails keep humans in approval loop",
		},
	},
	{
		ID:          "insight",
		Name:        "360º Guest Insight Loop",
		Description: "Signals stream back into analytics so operations sees what guests value, where bottlenecks occur, and how each property performs.",
		Highlights: []string{
			"Real-time service health dashboards",
			"Predictive staffing recommendations",
			"Closed-loop satisfaction measurement",
		},
	},
}

var capabilitiesTemplate = parse("capabilities.html")

type capabilitiesData struct {
	Cards iter.Seq[core.Capability]
	Links pageLinks
}

func Capabilities(w io.Writer) error {
	return execute(w, "capabilities", capabilitiesTemplate, capabilitiesData{
		Cards: slices.Values(capabilities),
		Links: links,
	})
}
