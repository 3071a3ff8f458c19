package normalizer

import (
	"github.com/LuckDucapa/spidey-ff-ig/internal/domain"
	"github.com/tidwall/gjson"
)

// ExtractTagged returns the users tagged on a post. The edge list in the
// side-channel is authoritative; the record's top-level tagged list is used
// only when the edges yield nothing. The two sources are never merged.
func ExtractTagged(rec *domain.MediaRecord) []domain.TaggedUser {
	var tagged []domain.TaggedUser

	edges := gjson.GetBytes(rec.Raw, "edge_media_to_tagged_user.edges")
	edges.ForEach(func(_ gjson.Result, edge gjson.Result) bool {
		user := edge.Get("node.user")
		if !user.Exists() {
			return true
		}
		tagged = append(tagged, domain.TaggedUser{
			Username:   user.Get("username").Str,
			Name:       user.Get("full_name").Str,
			IsVerified: user.Get("is_verified").Bool(),
		})
		return true
	})
	if len(tagged) > 0 {
		return tagged
	}

	for _, src := range rec.Tagged {
		// Bare username strings carry no name or verification data; skip them.
		if src.BareRef {
			continue
		}
		tagged = append(tagged, domain.TaggedUser{
			Username:   src.Username,
			Name:       src.FullName,
			IsVerified: src.IsVerified,
		})
	}

	return tagged
}
