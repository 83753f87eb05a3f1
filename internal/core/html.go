package core

import (
	"fmt"
	"html/template"
	"io"
)

const ReloadPath = "/__lumastay/reload"

type ShellData struct {
	Metadata      Metadata
	StylesheetURL string
	Body          template.HTML
	LiveReload    bool
}

var shellTemplate = template.Must(template.New("shell").Parse(`<!doctype html>
<html lang="en" class="lumastay-app">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.Metadata.Title}}</title>
    <meta name="description" content="{{.Metadata.Description}}" />
    <link rel="preconnect" href="https://fonts.googleapis.com" />
    <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin />
    <link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Manrope:wght@400;500;600;700&amp;display=swap" />
    <style>.font-primary { --font-primary: "Manrope", system-ui, sans-serif; }</style>
    {{- if .StylesheetURL}}
    <link rel="stylesheet" href="{{.StylesheetURL}}" />
    {{- end}}
  </head>
  <body class="font-primary">
{{.Body}}
    {{- if .LiveReload}}
    <script>(function __lumastay_reload() {
      var source = new EventSource("` + ReloadPath + `");
      source.addEventListener("reload", function () { window.location.reload(); });
    })();</script>
    {{- end}}
  </body>
</html>
`))

// RenderDocument wraps an already composed page body with the document shell.
func RenderDocument(w io.Writer, data ShellData) error {
	if data.Metadata.Title == "" {
		return fmt.Errorf("missing document title")
	}
	return shellTemplate.Execute(w, data)
}
