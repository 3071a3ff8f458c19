package domain

// MusicInfo is the audio attribution of a reel.
type MusicInfo struct {
	ArtistName        string `json:"artist_name"`
	SongName          string `json:"song_name"`
	UsesOriginalAudio bool   `json:"uses_original_audio"`
	AudioID           string `json:"audio_id,omitempty"`
}

// TaggedUser is one user tagged on a post.
type TaggedUser struct {
	Username   string `json:"username"`
	Name       string `json:"name"`
	IsVerified bool   `json:"is_verified"`
}

// CarouselItem is one sub-item of a sidecar post, 1-indexed.
type CarouselItem struct {
	Position int    `json:"position"`
	ID       string `json:"id"`
	Type     string `json:"type"`
	Link     string `json:"link"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// NormalizedPost is the canonical output shape for one post. Optional keys are
// pointers or omitempty slices: they appear in the JSON only when the source
// data yielded something.
type NormalizedPost struct {
	Position      int            `json:"position,omitempty"`
	ID            string         `json:"id"`
	Permalink     string         `json:"permalink"`
	Type          string         `json:"type"`
	Link          string         `json:"link"`
	Width         int            `json:"width"`
	Height        int            `json:"height"`
	Views         *int64         `json:"views,omitempty"`
	Caption       string         `json:"caption"`
	Likes         int64          `json:"likes"`
	Comments      int64          `json:"comments"`
	ISODate       string         `json:"iso_date"`
	Thumbnail     string         `json:"thumbnail"`
	Music         *MusicInfo     `json:"music,omitempty"`
	HasAudio      *bool          `json:"has_audio,omitempty"`
	TaggedUsers   []TaggedUser   `json:"tagged_users,omitempty"`
	CarouselItems []CarouselItem `json:"carousel_items,omitempty"`
}
