package assembler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/LuckDucapa/spidey-ff-ig/internal/domain"
	"github.com/LuckDucapa/spidey-ff-ig/pkg/formatter"
)

// noMusicMessage is emitted in place of the audio block for posts without
// music attribution.
const noMusicMessage = "No music metadata found (or Image Post)."

type MediaEnvelope struct {
	SearchMetadata SearchMetadata        `json:"search_metadata"`
	Type           string                `json:"type"`
	AuthorDetails  *OrderedObject        `json:"author_details"`
	BioLinks       []domain.BioLink      `json:"bio_links"`
	Audio          any                   `json:"audio"`
	ReelSpecs      *OrderedObject        `json:"reel_specs"`
	Engagement     *OrderedObject        `json:"engagement"`
	TaggedUsers    []domain.TaggedUser   `json:"tagged_users"`
	Caption        string                `json:"caption"`
	Downloads      *OrderedObject        `json:"downloads"`
	CarouselItems  []domain.CarouselItem `json:"carousel_items,omitempty"`
}

// AssembleMedia wraps one post into the media-mode envelope. author is the
// post owner's full profile when it could be fetched; nil produces the
// degraded author block. startedAt is the request-scoped timestamp supplied by
// the caller.
func (a *Assembler) AssembleMedia(rec *domain.MediaRecord, author *domain.ProfileRecord, startedAt time.Time, elapsed time.Duration) (*MediaEnvelope, error) {
	specs, err := a.norm.Normalize(rec, 0)
	if err != nil {
		return nil, err
	}

	env := &MediaEnvelope{
		SearchMetadata: SearchMetadata{
			ID:               fmt.Sprintf("req_%s", rec.Shortcode),
			Status:           "Success",
			RequestTimeTaken: roundSeconds(elapsed),
		},
		Type:          "media",
		AuthorDetails: a.authorDetails(rec, author),
		BioLinks:      []domain.BioLink{},
		Audio:         any(noMusicMessage),
		ReelSpecs:     a.reelSpecs(rec, specs),
		Engagement:    a.engagement(specs),
		TaggedUsers:   []domain.TaggedUser{},
		Caption:       rec.Caption,
		Downloads:     a.downloads(rec),
		CarouselItems: specs.CarouselItems,
	}

	if author != nil {
		env.BioLinks = BioLinks(author)
	}
	if specs.Music != nil {
		env.Audio = specs.Music
	}
	if specs.TaggedUsers != nil {
		env.TaggedUsers = specs.TaggedUsers
	}

	return env, nil
}

// authorDetails builds the full author block, or the minimal degraded form
// when the owner profile could not be fetched.
func (a *Assembler) authorDetails(rec *domain.MediaRecord, author *domain.ProfileRecord) *OrderedObject {
	o := NewOrderedObject()

	if author == nil {
		o.Set(a.labels.Label("Username"), "@"+rec.OwnerUsername)
		o.Set(a.labels.Label("User ID"), rec.OwnerID)
		o.Set(a.labels.Label("Note"), "hidden")
		return o
	}

	bio := author.Biography
	if bio == "" {
		bio = "Empty"
	}

	o.Set(a.labels.Label("Username"), "@"+author.Username)
	o.Set(a.labels.Label("Full Name"), author.FullName)
	o.Set(a.labels.Label("User ID"), author.UserID)
	o.Set(a.labels.Label("Verified"), strconv.FormatBool(author.IsVerified))
	o.Set(a.labels.Label("Business"), strconv.FormatBool(author.IsBusiness))
	o.Set(a.labels.Label("Followers"), formatter.FormatNumber(author.Followers))
	o.Set(a.labels.Label("Following"), formatter.FormatNumber(author.Following))
	o.Set(a.labels.Label("Total Posts"), formatter.FormatNumber(author.MediaCount))
	o.Set(a.labels.Label("Bio"), bio)
	o.Set(a.labels.Label("HD Avatar"), author.AvatarURL)
	return o
}

func (a *Assembler) reelSpecs(rec *domain.MediaRecord, specs *domain.NormalizedPost) *OrderedObject {
	duration := "N/A"
	if rec.VideoDuration > 0 {
		duration = fmt.Sprintf("%g sec", rec.VideoDuration)
	}

	o := NewOrderedObject()
	o.Set(a.labels.Label("Type"), specs.Type)
	o.Set(a.labels.Label("Dimensions"), fmt.Sprintf("%d x %d", specs.Width, specs.Height))
	o.Set(a.labels.Label("Duration"), duration)
	o.Set(a.labels.Label("Upload Date"), specs.ISODate)
	o.Set(a.labels.Label("Shortcode"), rec.Shortcode)
	return o
}

func (a *Assembler) engagement(specs *domain.NormalizedPost) *OrderedObject {
	o := NewOrderedObject()
	o.Set(a.labels.Label("Views"), formatter.FormatCount(specs.Views))
	o.Set(a.labels.Label("Likes"), formatter.FormatNumber(specs.Likes))
	o.Set(a.labels.Label("Comments"), formatter.FormatNumber(specs.Comments))
	return o
}

// downloads always carries the thumbnail; the direct link key matches the
// media type, never both.
func (a *Assembler) downloads(rec *domain.MediaRecord) *OrderedObject {
	o := NewOrderedObject()
	o.Set(a.labels.Label("Thumbnail"), rec.URL)
	if rec.IsVideo && rec.VideoURL != "" {
		o.Set(a.labels.Label("Video URL"), rec.VideoURL)
	} else {
		o.Set(a.labels.Label("Image URL"), rec.URL)
	}
	return o
}
