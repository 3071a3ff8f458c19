// Package normalizer turns raw provider media records into the one stable
// output shape every response mode shares. Every function here is a pure
// transform over an already-fetched record.
package normalizer

import (
	"errors"
	"fmt"
	"time"

	"github.com/LuckDucapa/spidey-ff-ig/internal/domain"
	"github.com/tidwall/gjson"
)

// ErrMalformedRecord means a required attribute is structurally absent and no
// fallback can resolve it. Every other missing field degrades to a default or
// an omitted key.
var ErrMalformedRecord = errors.New("malformed media record")

// ViewsPolicy decides what happens when no view count can be resolved.
type ViewsPolicy string

const (
	// ViewsOmit leaves the views key out when the count is unknown or zero.
	ViewsOmit ViewsPolicy = "omit"
	// ViewsZero always emits the key, defaulting to 0.
	ViewsZero ViewsPolicy = "zero"
)

// Media classes derived from the provider type tag.
const (
	TypeImage    = "image"
	TypeReel     = "reel"
	TypeCarousel = "carousel"
)

type Options struct {
	// DateOffset shifts the upload instant before formatting. Zero formats
	// plain UTC with a literal Z suffix.
	DateOffset time.Duration

	ViewsPolicy ViewsPolicy

	// Per-item carousel dimensions are not exposed by the provider, so sub-items
	// carry these placeholders.
	CarouselWidth  int
	CarouselHeight int
}

func DefaultOptions() Options {
	return Options{
		ViewsPolicy:    ViewsOmit,
		CarouselWidth:  1080,
		CarouselHeight: 1350,
	}
}

// ParseOffset reads a configured date offset: "Z" (or empty) for plain UTC,
// otherwise "+05:30" / "-03:00" style.
func ParseOffset(s string) (time.Duration, error) {
	if s == "" || s == "Z" {
		return 0, nil
	}
	var h, m int
	var sign byte
	if _, err := fmt.Sscanf(s, "%c%02d:%02d", &sign, &h, &m); err != nil {
		return 0, fmt.Errorf("invalid date offset %q: %w", s, err)
	}
	d := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
	switch sign {
	case '+':
		return d, nil
	case '-':
		return -d, nil
	}
	return 0, fmt.Errorf("invalid date offset %q", s)
}

type Normalizer struct {
	opts Options
}

func New(opts Options) *Normalizer {
	return &Normalizer{opts: opts}
}

// Normalize derives the canonical post shape. position is included only when
// greater than zero. The same record always yields the same output.
func (n *Normalizer) Normalize(rec *domain.MediaRecord, position int) (*domain.NormalizedPost, error) {
	if rec == nil || rec.Shortcode == "" {
		return nil, ErrMalformedRecord
	}

	class := classify(rec)

	link := rec.URL
	if rec.IsVideo && rec.VideoURL != "" {
		link = rec.VideoURL
	}

	width, height := n.resolveDimensions(rec)

	post := &domain.NormalizedPost{
		ID:        rec.Shortcode,
		Permalink: fmt.Sprintf("https://www.instagram.com/p/%s/", rec.Shortcode),
		Type:      class,
		Link:      link,
		Width:     width,
		Height:    height,
		Caption:   rec.Caption,
		Likes:     rec.Likes,
		Comments:  rec.Comments,
		ISODate:   n.formatDate(rec.TakenAt),
		Thumbnail: rec.URL,
	}

	if position > 0 {
		post.Position = position
	}

	post.Views = n.resolveViews(rec)

	if music := ExtractMusic(rec); music != nil {
		hasAudio := true
		post.Music = music
		post.HasAudio = &hasAudio
	} else if rec.IsVideo {
		hasAudio := false
		post.HasAudio = &hasAudio
	}

	if tagged := ExtractTagged(rec); len(tagged) > 0 {
		post.TaggedUsers = tagged
	}

	if class == TypeCarousel {
		if items := n.extractCarousel(rec); len(items) > 0 {
			post.CarouselItems = items
		}
	}

	return post, nil
}

// classify maps the provider type tag onto the three-way class. Unknown tags
// are images.
func classify(rec *domain.MediaRecord) string {
	switch rec.Typename {
	case "GraphSidecar", "XDTGraphSidecar":
		return TypeCarousel
	case "GraphVideo", "XDTGraphVideo":
		return TypeReel
	}
	if rec.IsVideo {
		return TypeReel
	}
	return TypeImage
}

// resolveDimensions prefers the record attributes and falls back to the
// side-channel dimensions map when the width is missing.
func (n *Normalizer) resolveDimensions(rec *domain.MediaRecord) (int, int) {
	if rec.Width != 0 {
		return rec.Width, rec.Height
	}
	dims := gjson.GetBytes(rec.Raw, "dimensions")
	return int(dims.Get("width").Int()), int(dims.Get("height").Int())
}

// resolveViews walks the fallback chain: attribute, side-channel
// video_view_count, side-channel play_count. The result honors the configured
// policy: omit (nil unless a non-zero count resolved) or zero (always a value).
func (n *Normalizer) resolveViews(rec *domain.MediaRecord) *int64 {
	var count *int64

	if rec.VideoViewCount != nil {
		count = rec.VideoViewCount
	} else if v := gjson.GetBytes(rec.Raw, "video_view_count"); v.Exists() && v.Type == gjson.Number {
		c := v.Int()
		count = &c
	} else if v := gjson.GetBytes(rec.Raw, "play_count"); v.Exists() && v.Type == gjson.Number {
		c := v.Int()
		count = &c
	}

	switch n.opts.ViewsPolicy {
	case ViewsZero:
		if count == nil {
			zero := int64(0)
			return &zero
		}
		return count
	default:
		if count == nil || *count == 0 {
			return nil
		}
		return count
	}
}

func (n *Normalizer) formatDate(t time.Time) string {
	if n.opts.DateOffset == 0 {
		return t.UTC().Format("2006-01-02T15:04:05Z")
	}

	off := n.opts.DateOffset
	sign := "+"
	if off < 0 {
		sign = "-"
		off = -off
	}
	h := int(off / time.Hour)
	m := int(off % time.Hour / time.Minute)

	return t.UTC().Add(n.opts.DateOffset).Format("2006-01-02 15:04:05") +
		fmt.Sprintf("%s%02d:%02d", sign, h, m)
}
