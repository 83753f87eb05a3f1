package sections

import (
	"io"

	"github.com/3-lines-studio/lumastay/internal/core"
)

var testimonialTemplate = parse("testimonial.html")

type testimonialData struct {
	Avatar core.Image
}

func Testimonial(w io.Writer, images ImageLoader) error {
	return execute(w, "testimonial", testimonialTemplate, testimonialData{
		Avatar: core.Image{
			Src:    images.ImageURL("images/concierge-avatar.svg"),
			Alt:    "Headshot of Maya Chen, VP of Guest Experience",
			Width:  88,
			Height: 88,
		},
	})
}
