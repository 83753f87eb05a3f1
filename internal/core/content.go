package core

import "html/template"

type Capability struct {
	ID          string
	Name        string
	Description string
	Highlights  []string
}

// FeatureCapsule icons are trusted inline SVG authored alongside the data.
type FeatureCapsule struct {
	ID    string
	Icon  template.HTML
	Label string
}

type ImpactMetric struct {
	ID     string
	Value  string
	Label  string
	Detail string
}

type Integration = string

// JourneyStep order is chronological and rendered with Ordinal.
type JourneyStep struct {
	ID          string
	Title       string
	Time        string
	Description string
	Outcome     string
}

type Image struct {
	Src      string
	Alt      string
	Width    int
	Height   int
	Priority bool
}
