package assembler

import (
	"fmt"
	"time"

	"github.com/LuckDucapa/spidey-ff-ig/internal/domain"
	"github.com/LuckDucapa/spidey-ff-ig/pkg/errors"
)

type SearchParameters struct {
	Engine   string `json:"engine"`
	Username string `json:"username"`
}

type ProfileBlock struct {
	Username     string           `json:"username"`
	Name         string           `json:"name"`
	Avatar       string           `json:"avatar"`
	AvatarHD     string           `json:"avatar_hd"`
	IsVerified   bool             `json:"is_verified"`
	IsBusiness   bool             `json:"is_business"`
	Posts        int64            `json:"posts"`
	Followers    int64            `json:"followers"`
	Following    int64            `json:"following"`
	ExternalLink string           `json:"external_link"`
	BioLinks     []domain.BioLink `json:"bio_links"`
	Bio          string           `json:"bio"`
}

type ProfileEnvelope struct {
	SearchMetadata   SearchMetadata           `json:"search_metadata"`
	SearchParameters SearchParameters         `json:"search_parameters"`
	Profile          ProfileBlock             `json:"profile"`
	Posts            []*domain.NormalizedPost `json:"posts"`
}

// AssembleProfile wraps a profile and its recent posts into the profile-mode
// envelope. Posts beyond the configured cap are dropped; the kept ones carry
// 1-based positions. startedAt is the request-scoped timestamp supplied by the
// caller, the assembler never reads the clock itself.
func (a *Assembler) AssembleProfile(profile *domain.ProfileRecord, records []*domain.MediaRecord, startedAt time.Time, elapsed time.Duration) (*ProfileEnvelope, error) {
	if len(records) > a.postsLimit {
		records = records[:a.postsLimit]
	}

	posts := make([]*domain.NormalizedPost, 0, len(records))
	for i, rec := range records {
		post, err := a.norm.Normalize(rec, i+1)
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("normalize post %d", i+1))
		}
		posts = append(posts, post)
	}

	return &ProfileEnvelope{
		SearchMetadata: SearchMetadata{
			ID:               fmt.Sprintf("search_%d", startedAt.Unix()),
			Status:           "Success",
			CreatedAt:        startedAt.UTC().Format("2006-01-02T15:04:05Z"),
			RequestTimeTaken: roundSeconds(elapsed),
			RequestURL:       fmt.Sprintf("https://www.instagram.com/%s", profile.Username),
		},
		SearchParameters: SearchParameters{
			Engine:   "instagram_profile",
			Username: profile.Username,
		},
		Profile: ProfileBlock{
			Username:     profile.Username,
			Name:         profile.FullName,
			Avatar:       profile.AvatarURL,
			AvatarHD:     profile.AvatarURL,
			IsVerified:   profile.IsVerified,
			IsBusiness:   profile.IsBusiness,
			Posts:        profile.MediaCount,
			Followers:    profile.Followers,
			Following:    profile.Following,
			ExternalLink: profile.ExternalURL,
			BioLinks:     BioLinks(profile),
			Bio:          profile.Biography,
		},
		Posts: posts,
	}, nil
}
