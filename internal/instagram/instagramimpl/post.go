package instagramimpl

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/LuckDucapa/spidey-ff-ig/internal/domain"
	"github.com/LuckDucapa/spidey-ff-ig/internal/instagram"
	"github.com/tidwall/gjson"
)

// Query hash of the public shortcode_media GraphQL query.
const shortcodeMediaQueryHash = "b3055c01b4b222b8a47dc12b090e4e64"

// GetPost fetches one post by shortcode via the GraphQL query endpoint.
func (ig *IgImpl) GetPost(ctx context.Context, shortcode string) (*domain.MediaRecord, error) {
	params := url.Values{}
	params.Set("query_hash", shortcodeMediaQueryHash)
	params.Set("variables", fmt.Sprintf(`{"shortcode":%q}`, shortcode))
	endpoint := fmt.Sprintf("%s/graphql/query/?%s", ig.Config.Instagram.BaseURL, params.Encode())

	body, err := ig.fetchJSON(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	node := gjson.GetBytes(body, "data.shortcode_media")
	if !node.Exists() || node.Type == gjson.Null {
		return nil, instagram.ErrNotFound
	}

	ig.Logger.Debug("Fetched post", "shortcode", shortcode)
	return parseMediaNode(node), nil
}

// parseMediaNode builds a MediaRecord from a GraphQL media node. Only fields
// the provider exposes on every node shape become named attributes; everything
// else stays reachable through Raw.
func parseMediaNode(node gjson.Result) *domain.MediaRecord {
	rec := &domain.MediaRecord{
		Shortcode:     node.Get("shortcode").Str,
		Typename:      node.Get("__typename").Str,
		URL:           node.Get("display_url").Str,
		VideoURL:      node.Get("video_url").Str,
		IsVideo:       node.Get("is_video").Bool(),
		Width:         int(node.Get("width").Int()),
		Height:        int(node.Get("height").Int()),
		Caption:       node.Get("edge_media_to_caption.edges.0.node.text").Str,
		Comments:      node.Get("edge_media_to_comment.count").Int(),
		TakenAt:       time.Unix(node.Get("taken_at_timestamp").Int(), 0).UTC(),
		VideoDuration: node.Get("video_duration").Float(),
		OwnerUsername: node.Get("owner.username").Str,
		OwnerID:       node.Get("owner.id").Int(),
		Raw:           []byte(node.Raw),
	}

	if v := node.Get("video_view_count"); v.Exists() && v.Type == gjson.Number {
		count := v.Int()
		rec.VideoViewCount = &count
	}

	rec.Likes = node.Get("edge_media_preview_like.count").Int()
	if rec.Likes == 0 {
		rec.Likes = node.Get("edge_liked_by.count").Int()
	}

	node.Get("usertags.in").ForEach(func(_ gjson.Result, el gjson.Result) bool {
		rec.Tagged = append(rec.Tagged, parseTaggedSource(el))
		return true
	})

	node.Get("edge_sidecar_to_children.edges").ForEach(func(_ gjson.Result, edge gjson.Result) bool {
		child := edge.Get("node")
		if !child.Exists() {
			return true
		}
		rec.Sidecar = append(rec.Sidecar, domain.SidecarItem{
			Shortcode:  child.Get("shortcode").Str,
			IsVideo:    child.Get("is_video").Bool(),
			DisplayURL: child.Get("display_url").Str,
			VideoURL:   child.Get("video_url").Str,
		})
		return true
	})

	return rec
}

// parseTaggedSource keeps the provider's inconsistency visible: an entry is
// sometimes a bare username string instead of a user object.
func parseTaggedSource(el gjson.Result) domain.TaggedSource {
	if el.Type == gjson.String {
		return domain.TaggedSource{BareRef: true, Username: el.Str}
	}
	user := el.Get("user")
	if user.Type == gjson.String {
		return domain.TaggedSource{BareRef: true, Username: user.Str}
	}
	return domain.TaggedSource{
		Username:   user.Get("username").Str,
		FullName:   user.Get("full_name").Str,
		IsVerified: user.Get("is_verified").Bool(),
	}
}
