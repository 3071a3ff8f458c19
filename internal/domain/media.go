package domain

import "time"

// MediaRecord is one post or reel as returned by the fetch layer. Named fields
// carry the attributes every provider response exposes; Raw keeps the full
// provider node JSON so downstream code can reach fields that were never
// promoted to attributes (dimensions, play_count, music attribution, tag
// edges). Records are built once per request and never mutated.
type MediaRecord struct {
	Shortcode      string
	Typename       string // provider type tag, e.g. GraphImage, GraphVideo, GraphSidecar
	URL            string // display/image URL
	VideoURL       string
	IsVideo        bool
	Width          int
	Height         int
	VideoViewCount *int64 // nil when the provider did not expose it
	Caption        string
	Likes          int64
	Comments       int64
	TakenAt        time.Time // UTC instant
	VideoDuration  float64
	OwnerUsername  string
	OwnerID        int64
	Tagged         []TaggedSource
	Sidecar        []SidecarItem
	Raw            []byte // provider node JSON, side-channel fields
}

// TaggedSource is one entry of the record's top-level tagged-user list. The
// provider occasionally emits a bare username string instead of a structured
// user object; BareRef marks those so consumers can skip them.
type TaggedSource struct {
	BareRef    bool
	Username   string
	FullName   string
	IsVerified bool
}

// SidecarItem is one sub-item of a carousel post.
type SidecarItem struct {
	Shortcode  string
	IsVideo    bool
	DisplayURL string
	VideoURL   string
}
