// Package shortcode derives the canonical media identifier from whatever the
// caller pasted: a bare code, a full post URL, or a share URL with tracking
// parameters.
package shortcode

import (
	"errors"
	"regexp"
	"strings"
)

var ErrNotExtractable = errors.New("could not extract shortcode from input")

// Matches the path segment following p, tv, reel or reels, up to the next
// delimiter. Covers instagram.com/reel/ID/?x=y and instagram.com/p/ID alike.
var segmentRe = regexp.MustCompile(`(?:reels?|p|tv)/([^/?#&]+)`)

// Extract returns the shortcode for the given input.
//
// Inputs without a URL marker are treated as already-canonical identifiers.
// URLs are first matched against the known path segments; failing that, the
// last path segment longer than five characters is used. The fallback covers
// obscure share URL formats the segment match does not know about.
func Extract(input string) (string, error) {
	if !strings.Contains(input, "instagram.com") && !strings.Contains(input, "http") {
		code := strings.TrimSpace(input)
		code = strings.Split(code, "?")[0]
		code = strings.Split(code, "/")[0]
		if code == "" {
			return "", ErrNotExtractable
		}
		return code, nil
	}

	if m := segmentRe.FindStringSubmatch(input); m != nil {
		return m[1], nil
	}

	parts := strings.Split(strings.TrimRight(input, "/"), "/")
	for i := len(parts) - 1; i >= 0; i-- {
		clean := strings.Split(parts[i], "?")[0]
		// Hostnames and schemes are never shortcodes.
		if len(clean) > 5 && !strings.ContainsAny(clean, ".:") {
			return clean, nil
		}
	}

	return "", ErrNotExtractable
}
