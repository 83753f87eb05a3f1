package sections

import (
	"io"
	"iter"
	"slices"

	"github.com/3-lines-studio/lumastay/internal/core"
)

var journeySteps = []core.JourneyStep{
	{
		ID:          "arrival",
		Title:       "Arrival Pulse",
		Time:        "07:15 • Lobby",
		Description: "The Concierge Agent syncs overnight travel updates, flags VIP arrivals, and stages welcome amenities automatically in Salesforce Service Cloud.",
		Outcome:     "Associates greet by name with tailored surprises ready at check-in.",
	},
	{
		ID:          "midstay",
		Title:       "Mid-Stay Sensing",
		Time:        "13:05 • Pool Deck",
		Description: "Associates capture voice notes, and the agent structures them into service tasks while nudging maintenance and spa teams on the guest's preferences.",
		Outcome:     "Issues are resolved before guests notice, and upgrades land right on cue.",
	},
	{
		ID:          "departure",
		Title:       "Departure Encore",
		Time:        "21:30 • Salesforce Mobile",
		Description: "The agent composes a personalized farewell message, schedules loyalty follow ups, and shares a digest of on-property spend to the sales team.",
		Outcome:     "Guest sentiment soars and sales engages with precise context for the next stay.",
	},
}

var journeyTemplate = parse("journey.html")

type journeyData struct {
	Steps iter.Seq2[int, core.JourneyStep]
	Links pageLinks
}

func Journey(w io.Writer) error {
	return execute(w, "journey", journeyTemplate, journeyData{
		Steps: slices.All(journeySteps),
		Links: links,
	})
}
