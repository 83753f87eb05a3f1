package core

const (
	AnchorJourney      = "journey"
	AnchorCapabilities = "capabilities"
	AnchorContact      = "contact"
)

const (
	ContactMailto = "mailto:lumastay.solutions@example.com"
	SalesforceURL = "https://www.salesforce.com/"
	SlackURL      = "https://slack.com/"
)

// InternalAnchors lists every fragment the page links to.
var InternalAnchors = []string{AnchorJourney, AnchorCapabilities, AnchorContact}

func Fragment(anchor string) string {
	return "#" + anchor
}
