package sections

import (
	"io"
	"iter"
	"slices"

	"github.com/3-lines-studio/lumastay/internal/core"
)

var featureCapsules = []core.FeatureCapsule{
	{
		ID: "prep",
		Icon: `<svg aria-hidden="true" viewBox="0 0 32 32" class="hero-section__capsule-icon">
          <defs>
            <linearGradient id="prepGradient" x1="0%" x2="100%" y1="0%" y2="100%">
              <stop stop-color="#8c6fff" offset="0%" />
              <stop stop-color="#37d8ff" offset="100%" />
            </linearGradient>
          </defs>
          <rect width="32" height="32" rx="10" fill="url(#prepGradient)" opacity="0.4" />
          <path d="M10 11h12M10 21h12M10 16h7" stroke="#f7f8ff" stroke-width="2" stroke-linecap="round" />
          <circle cx="23" cy="16" r="1.5" fill="#f7f8ff" />
        </svg>`,
		Label: "Proactive Trip Prep",
	},
	{
		ID: "capture",
		Icon: `<svg aria-hidden="true" viewBox="0 0 32 32" class="hero-section__capsule-icon">
          <defs>
            <linearGradient id="captureGradient" x1="0%" x2="100%" y1="0%" y2="100%">
              <stop stop-color="#4de1ff" offset="0%" />
              <stop stop-color="#ff4fd8" offset="100%" />
            </linearGradient>
          </defs>
          <rect width="32" height="32" rx="10" fill="url(#captureGradient)" opacity="0.32" />
          <path d="M11 20.5v-9a1.5 1.5 0 0 1 1.5-1.5h7A1.5 1.5 0 0 1 21 11.5V20" stroke="#f7f8ff" stroke-width="2" stroke-linecap="round" />
          <path d="M11 19h10.5a1.5 1.5 0 0 1 0 3H13a2 2 0 0 1-2-2Z" fill="#f7f8ff" opacity="0.85" />
        </svg>`,
		Label: "Agentic Data Capture",
	},
	{
		ID: "nudges",
		Icon: `<svg aria-hidden="true" viewBox="0 0 32 32" class="hero-section__capsule-icon">
          <defs>
            <linearGradient id="nudgesGradient" x1="0%" x2="120%" y1="0%" y2="120%">
              <stop stop-color="#ff9bff" offset="0%" />
              <stop stop-color="#6291ff" offset="100%" />
            </linearGradient>
          </defs>
          <rect width="32" height="32" rx="10" fill="url(#nudgesGradient)" opacity="0.38" />
          <path d="M21 11.5 14.5 16l6.5 4.5" stroke="#f7f8ff" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" />
          <path d="M11 11.5v9" stroke="#f7f8ff" stroke-width="2" stroke-linecap="round" />
        </svg>`,
		Label: "Intelligent Nudges",
	},
	{
		ID: "growth",
		Icon: `<svg aria-hidden="true" viewBox="0 0 32 32" class="hero-section__capsule-icon">
          <defs>
            <linearGradient id="growthGradient" x1="0%" x2="100%" y1="100%" y2="0%">
              <stop stop-color="#2ec4b6" offset="0%" />
              <stop stop-color="#ffd166" offset="100%" />
            </linearGradient>
          </defs>
          <rect width="32" height="32" rx="10" fill="url(#growthGradient)" opacity="0.34" />
          <path d="M12 20l3.5-4 2 2 4.5-5" stroke="#f7f8ff" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" />
          <path d="M10 10h12v12H10z" stroke="#f7f8ff" stroke-width="1.5" opacity="0.55" />
        </svg>`,
		Label: "Portfolio Growth",
	},
	{
		ID: "clients",
		Icon: `<svg aria-hidden="true" viewBox="0 0 32 32" class="hero-section__capsule-icon">
          <defs>
            <linearGradient id="clientsGradient" x1="0%" x2="100%" y1="0%" y2="0%">
              <stop stop-color="#8e6bff" offset="0%" />
              <stop stop-color="#52eeff" offset="100%" />
            </linearGradient>
          </defs>
          <rect width="32" height="32" rx="10" fill="url(#clientsGradient)" opacity="0.35" />
          <circle cx="16" cy="14" r="4" fill="rgba(247, 248, 255, 0.9)" />
          <path d="M10.5 22.5c.9-2.7 3.1-4.5 5.5-4.5s4.6 1.8 5.5 4.5" stroke="#1c1f54" stroke-width="1.6" stroke-linecap="round" />
        </svg>`,
		Label: "Guest 360 Insights",
	},
}

var heroTemplate = parse("hero.html")

type heroData struct {
	Portrait  core.Image
	Companion core.Image
	Capsules  iter.Seq[core.FeatureCapsule]
	Links     pageLinks
}

func Hero(w io.Writer, images ImageLoader) error {
	return execute(w, "hero", heroTemplate, heroData{
		Portrait: core.Image{
			Src:      images.ImageURL("images/concierge-avatar.svg"),
			Alt:      "Portrait of LumaStay concierge lead",
			Width:    320,
			Height:   320,
			Priority: true,
		},
		Companion: core.Image{
			Src:    images.ImageURL("images/ai-companion.svg"),
			Width:  140,
			Height: 140,
		},
		Capsules: slices.Values(featureCapsules),
		Links:    links,
	})
}
