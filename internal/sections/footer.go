package sections

import (
	"io"

	"github.com/3-lines-studio/lumastay/internal/core"
)

var footerTemplate = parse("footer.html")

type footerData struct {
	Year  int
	Links pageLinks
}

// Footer is the only section that reads the clock.
func Footer(w io.Writer, clock core.Clock) error {
	return execute(w, "footer", footerTemplate, footerData{
		Year:  clock.Now().Year(),
		Links: links,
	})
}
