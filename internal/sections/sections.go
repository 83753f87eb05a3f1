// Package sections renders the LumaStay microsite page. Each section owns its
// content as a literal data set and its markup as an embedded template;
// sections share nothing and take no content configuration.
package sections

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/3-lines-studio/lumastay/internal/core"
)

//go:embed templates/*.html
var templateFS embed.FS

// ImageLoader resolves an asset name to the URL the browser should load.
type ImageLoader interface {
	ImageURL(name string) string
}

var funcs = template.FuncMap{
	"ordinal": core.Ordinal,
}

func parse(name string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/"+name))
}

func execute(w io.Writer, section string, tmpl *template.Template, data any) error {
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render %s section: %w", section, err)
	}
	return nil
}

// pageLinks carries the anchor ids and link targets into every template that
// renders them, so markup and core's link constants cannot drift apart.
type pageLinks struct {
	JourneyID      string
	CapabilitiesID string
	ContactID      string
	Journey        string
	Capabilities   string
	Contact        string
	Mailto         string
	Salesforce     string
	Slack          string
}

var links = pageLinks{
	JourneyID:      core.AnchorJourney,
	CapabilitiesID: core.AnchorCapabilities,
	ContactID:      core.AnchorContact,
	Journey:        core.Fragment(core.AnchorJourney),
	Capabilities:   core.Fragment(core.AnchorCapabilities),
	Contact:        core.Fragment(core.AnchorContact),
	Mailto:         core.ContactMailto,
	Salesforce:     core.SalesforceURL,
	Slack:          core.SlackURL,
}
