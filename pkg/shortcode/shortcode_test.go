package shortcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtract_BareCode(t *testing.T) {
	code, err := Extract("DSaZgurjMFU")
	require.NoError(t, err)
	require.Equal(t, "DSaZgurjMFU", code)
}

func TestExtract_BareCodeWithNoise(t *testing.T) {
	code, err := Extract("  DSaZgurjMFU?igsh=abc  ")
	require.NoError(t, err)
	require.Equal(t, "DSaZgurjMFU", code)
}

func TestExtract_ReelURLWithQuery(t *testing.T) {
	code, err := Extract("https://www.instagram.com/reel/ABC123/?utm=x")
	require.NoError(t, err)
	require.Equal(t, "ABC123", code)
}

func TestExtract_PostURLNoTrailingSlash(t *testing.T) {
	code, err := Extract("https://instagram.com/p/XYZ789")
	require.NoError(t, err)
	require.Equal(t, "XYZ789", code)
}

func TestExtract_SegmentVariants(t *testing.T) {
	for _, in := range []string{
		"https://www.instagram.com/reels/C0dE123/",
		"https://www.instagram.com/tv/C0dE123/?hl=en",
		"https://www.instagram.com/p/C0dE123#comments",
	} {
		code, err := Extract(in)
		require.NoError(t, err, in)
		require.Equal(t, "C0dE123", code, in)
	}
}

func TestExtract_FallbackLastLongSegment(t *testing.T) {
	code, err := Extract("https://www.instagram.com/share/AbCdEf123?igsh=track")
	require.NoError(t, err)
	require.Equal(t, "AbCdEf123", code)
}

func TestExtract_BareDomain(t *testing.T) {
	_, err := Extract("https://www.instagram.com/")
	require.ErrorIs(t, err, ErrNotExtractable)
}

func TestExtract_Empty(t *testing.T) {
	_, err := Extract("")
	require.ErrorIs(t, err, ErrNotExtractable)

	_, err = Extract("   ")
	require.ErrorIs(t, err, ErrNotExtractable)
}
