// Package assembler composes normalized posts and profile data into the fixed
// response envelopes of the two search modes.
package assembler

import (
	"math"
	"time"

	"github.com/LuckDucapa/spidey-ff-ig/internal/domain"
	"github.com/LuckDucapa/spidey-ff-ig/internal/normalizer"
	"github.com/LuckDucapa/spidey-ff-ig/pkg/config"
	"github.com/LuckDucapa/spidey-ff-ig/pkg/logger"
	"github.com/tidwall/gjson"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config     *config.Config
	Logger     logger.Logger
	Normalizer *normalizer.Normalizer
}

type Assembler struct {
	norm       *normalizer.Normalizer
	logger     logger.Logger
	labels     LabelStyle
	postsLimit int
}

func New(opts Opts) *Assembler {
	style := LabelStyle(opts.Config.Search.LabelStyle)
	if style != LabelSnake {
		style = LabelTitle
	}

	limit := opts.Config.Search.ProfilePostsLimit
	if limit <= 0 {
		limit = 8
	}

	return &Assembler{
		norm:       opts.Normalizer,
		logger:     opts.Logger.WithComponent("Assembler"),
		labels:     style,
		postsLimit: limit,
	}
}

// SearchMetadata heads every envelope.
type SearchMetadata struct {
	ID               string  `json:"id"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"created_at,omitempty"`
	RequestTimeTaken float64 `json:"request_time_taken"`
	RequestURL       string  `json:"request_url,omitempty"`
}

func roundSeconds(elapsed time.Duration) float64 {
	return math.Round(elapsed.Seconds()*100) / 100
}

// BioLinks derives a profile's external links: the structured bio_links list
// from the side-channel when present, else a single synthesized entry from the
// plain external-link attribute, else an empty list.
func BioLinks(profile *domain.ProfileRecord) []domain.BioLink {
	links := []domain.BioLink{}

	gjson.GetBytes(profile.Raw, "bio_links").ForEach(func(_ gjson.Result, l gjson.Result) bool {
		links = append(links, domain.BioLink{
			Title: l.Get("title").Str,
			URL:   l.Get("url").Str,
		})
		return true
	})

	if len(links) == 0 && profile.ExternalURL != "" {
		links = append(links, domain.BioLink{Title: "External Link", URL: profile.ExternalURL})
	}

	return links
}
