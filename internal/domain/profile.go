package domain

// ProfileRecord is one account as returned by the fetch layer. Raw keeps the
// provider user node JSON for side-channel reads (bio_links).
type ProfileRecord struct {
	Username    string
	FullName    string
	UserID      int64
	IsVerified  bool
	IsBusiness  bool
	Followers   int64
	Following   int64
	MediaCount  int64
	Biography   string
	AvatarURL   string
	ExternalURL string
	Raw         []byte
}

// BioLink is one external link attached to a profile bio.
type BioLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
