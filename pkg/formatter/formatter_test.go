package formatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
		{-999, "-999"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, FormatNumber(tc.in), "n=%d", tc.in)
	}
}

func TestFormatCount(t *testing.T) {
	require.Equal(t, "N/A", FormatCount(nil))

	n := int64(9001)
	require.Equal(t, "9,001", FormatCount(&n))

	zero := int64(0)
	require.Equal(t, "0", FormatCount(&zero))
}
