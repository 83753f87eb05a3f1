// Package linkcheck verifies that every in-page link in a rendered document
// points at an element that exists.
package linkcheck

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

var ErrMissingAnchor = errors.New("missing anchor target")

// Link is an in-page reference found in the document.
type Link struct {
	Fragment string // without the leading '#'
	Text     string
}

type Report struct {
	IDs     []string // every element id, in document order
	Links   []Link   // every href="#..." link, in document order
	Missing []string // fragments referenced but not defined, deduplicated
}

func (r Report) Err() error {
	if len(r.Missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: #%s", ErrMissingAnchor, strings.Join(r.Missing, ", #"))
}

func (r Report) HasID(id string) bool {
	return slices.Contains(r.IDs, id)
}

func Verify(r io.Reader) (Report, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Report{}, fmt.Errorf("parse document: %w", err)
	}

	var report Report
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if id := getAttr(n, "id"); id != "" {
				report.IDs = append(report.IDs, id)
			}
			if n.Data == "a" {
				if href := getAttr(n, "href"); strings.HasPrefix(href, "#") && len(href) > 1 {
					report.Links = append(report.Links, Link{
						Fragment: href[1:],
						Text:     extractText(n),
					})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	for _, link := range report.Links {
		if !report.HasID(link.Fragment) && !slices.Contains(report.Missing, link.Fragment) {
			report.Missing = append(report.Missing, link.Fragment)
		}
	}
	return report, nil
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func extractText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
