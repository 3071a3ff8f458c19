package normalizer

import (
	"fmt"

	"github.com/LuckDucapa/spidey-ff-ig/internal/domain"
)

// extractCarousel lists the sub-items of a sidecar post, 1-indexed. Items
// without their own shortcode get a synthesized "{parent}_{index}" id. The
// provider does not expose per-item dimensions, so every item carries the
// configured placeholder width and height.
func (n *Normalizer) extractCarousel(rec *domain.MediaRecord) []domain.CarouselItem {
	if len(rec.Sidecar) == 0 {
		return nil
	}

	items := make([]domain.CarouselItem, 0, len(rec.Sidecar))
	for i, node := range rec.Sidecar {
		pos := i + 1

		mediaType := "image"
		link := node.DisplayURL
		if node.IsVideo {
			mediaType = "video"
			link = node.VideoURL
		}

		id := node.Shortcode
		if id == "" {
			id = fmt.Sprintf("%s_%d", rec.Shortcode, pos)
		}

		items = append(items, domain.CarouselItem{
			Position: pos,
			ID:       id,
			Type:     mediaType,
			Link:     link,
			Width:    n.opts.CarouselWidth,
			Height:   n.opts.CarouselHeight,
		})
	}

	return items
}
