package sections

import "io"

var callToActionTemplate = parse("cta.html")

type callToActionData struct {
	Links pageLinks
}

func CallToAction(w io.Writer) error {
	return execute(w, "call to action", callToActionTemplate, callToActionData{Links: links})
}
