package normalizer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LuckDucapa/spidey-ff-ig/internal/domain"
)

func imageRecord() *domain.MediaRecord {
	return &domain.MediaRecord{
		Shortcode: "ABC123",
		Typename:  "GraphImage",
		URL:       "https://cdn.example/display.jpg",
		Width:     640,
		Height:    800,
		Caption:   "hello",
		Likes:     12,
		Comments:  3,
		TakenAt:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Raw:       []byte(`{}`),
	}
}

func TestNormalize_ImageDefaults(t *testing.T) {
	n := New(DefaultOptions())

	post, err := n.Normalize(imageRecord(), 0)
	require.NoError(t, err)

	require.Equal(t, "ABC123", post.ID)
	require.Equal(t, "https://www.instagram.com/p/ABC123/", post.Permalink)
	require.Equal(t, TypeImage, post.Type)
	require.Equal(t, "https://cdn.example/display.jpg", post.Link)
	require.Equal(t, "https://cdn.example/display.jpg", post.Thumbnail)
	require.Equal(t, 640, post.Width)
	require.Equal(t, 800, post.Height)
	require.Zero(t, post.Position)
	require.Nil(t, post.Views)
	require.Nil(t, post.HasAudio)
	require.Nil(t, post.Music)
}

func TestNormalize_UnknownTypenameIsImage(t *testing.T) {
	n := New(DefaultOptions())

	rec := imageRecord()
	rec.Typename = "GraphSomethingNew"

	post, err := n.Normalize(rec, 0)
	require.NoError(t, err)
	require.Equal(t, TypeImage, post.Type)
}

func TestNormalize_VideoLinkSelection(t *testing.T) {
	n := New(DefaultOptions())

	rec := imageRecord()
	rec.Typename = "GraphVideo"
	rec.IsVideo = true
	rec.VideoURL = "https://cdn.example/clip.mp4"

	post, err := n.Normalize(rec, 0)
	require.NoError(t, err)

	require.Equal(t, TypeReel, post.Type)
	require.Equal(t, "https://cdn.example/clip.mp4", post.Link)
	// Thumbnail keeps the display URL regardless of type.
	require.Equal(t, "https://cdn.example/display.jpg", post.Thumbnail)

	require.NotNil(t, post.HasAudio)
	require.False(t, *post.HasAudio)
	require.Nil(t, post.Music)
}

func TestNormalize_DimensionFallback(t *testing.T) {
	n := New(DefaultOptions())

	rec := imageRecord()
	rec.Width = 0
	rec.Height = 0
	rec.Raw = []byte(`{"dimensions":{"width":1080,"height":1350}}`)

	post, err := n.Normalize(rec, 0)
	require.NoError(t, err)
	require.Equal(t, 1080, post.Width)
	require.Equal(t, 1350, post.Height)
}

func TestNormalize_DimensionsDefaultZero(t *testing.T) {
	n := New(DefaultOptions())

	rec := imageRecord()
	rec.Width = 0
	rec.Height = 0

	post, err := n.Normalize(rec, 0)
	require.NoError(t, err)
	require.Zero(t, post.Width)
	require.Zero(t, post.Height)
}

func TestNormalize_ViewsFallbackChain(t *testing.T) {
	n := New(DefaultOptions())

	attr := int64(500)

	t.Run("attribute preferred", func(t *testing.T) {
		rec := imageRecord()
		rec.VideoViewCount = &attr
		rec.Raw = []byte(`{"video_view_count":100,"play_count":200}`)

		post, err := n.Normalize(rec, 0)
		require.NoError(t, err)
		require.NotNil(t, post.Views)
		require.EqualValues(t, 500, *post.Views)
	})

	t.Run("side-channel video_view_count", func(t *testing.T) {
		rec := imageRecord()
		rec.Raw = []byte(`{"video_view_count":100,"play_count":200}`)

		post, err := n.Normalize(rec, 0)
		require.NoError(t, err)
		require.NotNil(t, post.Views)
		require.EqualValues(t, 100, *post.Views)
	})

	t.Run("play_count last", func(t *testing.T) {
		rec := imageRecord()
		rec.Raw = []byte(`{"video_view_count":null,"play_count":200}`)

		post, err := n.Normalize(rec, 0)
		require.NoError(t, err)
		require.NotNil(t, post.Views)
		require.EqualValues(t, 200, *post.Views)
	})
}

func TestNormalize_ViewsOmitPolicy(t *testing.T) {
	n := New(DefaultOptions())

	// Unknown count: no views key.
	post, err := n.Normalize(imageRecord(), 0)
	require.NoError(t, err)
	raw, err := json.Marshal(post)
	require.NoError(t, err)
	require.NotContains(t, string(raw), `"views"`)

	// Zero resolves to omitted too.
	rec := imageRecord()
	zero := int64(0)
	rec.VideoViewCount = &zero
	post, err = n.Normalize(rec, 0)
	require.NoError(t, err)
	require.Nil(t, post.Views)
}

func TestNormalize_ViewsZeroPolicy(t *testing.T) {
	opts := DefaultOptions()
	opts.ViewsPolicy = ViewsZero
	n := New(opts)

	post, err := n.Normalize(imageRecord(), 0)
	require.NoError(t, err)
	require.NotNil(t, post.Views)
	require.EqualValues(t, 0, *post.Views)

	raw, err := json.Marshal(post)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"views":0`)
}

func TestNormalize_DateFormats(t *testing.T) {
	rec := imageRecord()
	rec.TakenAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	n := New(DefaultOptions())
	post, err := n.Normalize(rec, 0)
	require.NoError(t, err)
	require.Equal(t, "2024-05-01T10:00:00Z", post.ISODate)

	opts := DefaultOptions()
	opts.DateOffset = 5*time.Hour + 30*time.Minute
	n = New(opts)
	post, err = n.Normalize(rec, 0)
	require.NoError(t, err)
	require.Equal(t, "2024-05-01 15:30:00+05:30", post.ISODate)
}

func TestNormalize_PositionOnlyWhenSupplied(t *testing.T) {
	n := New(DefaultOptions())

	post, err := n.Normalize(imageRecord(), 3)
	require.NoError(t, err)
	require.Equal(t, 3, post.Position)

	post, err = n.Normalize(imageRecord(), 0)
	require.NoError(t, err)
	raw, err := json.Marshal(post)
	require.NoError(t, err)
	require.NotContains(t, string(raw), `"position"`)
}

func TestNormalize_Idempotent(t *testing.T) {
	n := New(DefaultOptions())

	rec := imageRecord()
	rec.Raw = []byte(`{"video_view_count":42,"clips_music_attribution_info":{"artist_name":"A","song_name":"S"}}`)

	first, err := n.Normalize(rec, 2)
	require.NoError(t, err)
	second, err := n.Normalize(rec, 2)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	require.Equal(t, string(a), string(b))
}

func TestNormalize_Malformed(t *testing.T) {
	n := New(DefaultOptions())

	_, err := n.Normalize(nil, 0)
	require.ErrorIs(t, err, ErrMalformedRecord)

	rec := imageRecord()
	rec.Shortcode = ""
	_, err = n.Normalize(rec, 0)
	require.ErrorIs(t, err, ErrMalformedRecord)
}

func TestParseOffset(t *testing.T) {
	d, err := ParseOffset("Z")
	require.NoError(t, err)
	require.Zero(t, d)

	d, err = ParseOffset("")
	require.NoError(t, err)
	require.Zero(t, d)

	d, err = ParseOffset("+05:30")
	require.NoError(t, err)
	require.Equal(t, 5*time.Hour+30*time.Minute, d)

	d, err = ParseOffset("-03:00")
	require.NoError(t, err)
	require.Equal(t, -3*time.Hour, d)

	_, err = ParseOffset("bogus")
	require.Error(t, err)
}
