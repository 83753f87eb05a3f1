package sections

import (
	"fmt"
	"io"

	"github.com/3-lines-studio/lumastay/internal/core"
)

const (
	NameHero         = "hero"
	NameJourney      = "journey"
	NameCapabilities = "capabilities"
	NameImpact       = "impact"
	NameTestimonial  = "testimonial"
	NameCallToAction = "call-to-action"
	NameFooter       = "footer"
)

// Page composes the seven sections in their fixed order.
type Page struct {
	Images ImageLoader
	Clock  core.Clock
}

type step struct {
	name   string
	render func(io.Writer) error
}

func (p Page) steps() []step {
	return []step{
		{NameHero, func(w io.Writer) error { return Hero(w, p.Images) }},
		{NameJourney, Journey},
		{NameCapabilities, Capabilities},
		{NameImpact, Impact},
		{NameTestimonial, func(w io.Writer) error { return Testimonial(w, p.Images) }},
		{NameCallToAction, CallToAction},
		{NameFooter, func(w io.Writer) error { return Footer(w, p.Clock) }},
	}
}

func Order() []string {
	steps := Page{}.steps()
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.name
	}
	return names
}

func (p Page) Render(w io.Writer) error {
	if p.Images == nil {
		return fmt.Errorf("page requires an image loader")
	}
	if p.Clock == nil {
		p.Clock = core.SystemClock{}
	}

	if _, err := io.WriteString(w, "<main class=\"page-shell\">\n"); err != nil {
		return err
	}
	for _, s := range p.steps() {
		if err := s.render(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</main>\n")
	return err
}

// Summary names a section and how many records it renders.
type Summary struct {
	Name  string
	Items int
}

// Summaries lists every section in page order. The impact section counts
// metrics and integrations together.
func Summaries() []Summary {
	return []Summary{
		{NameHero, len(featureCapsules)},
		{NameJourney, len(journeySteps)},
		{NameCapabilities, len(capabilities)},
		{NameImpact, len(impactMetrics) + len(integrations)},
		{NameTestimonial, 1},
		{NameCallToAction, 1},
		{NameFooter, 1},
	}
}
