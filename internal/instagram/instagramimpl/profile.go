package instagramimpl

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/LuckDucapa/spidey-ff-ig/internal/domain"
	"github.com/LuckDucapa/spidey-ff-ig/internal/instagram"
	"github.com/tidwall/gjson"
)

// GetProfile fetches one account via the web profile endpoint.
func (ig *IgImpl) GetProfile(ctx context.Context, username string) (*domain.ProfileRecord, error) {
	username = strings.TrimSpace(strings.TrimPrefix(username, "@"))
	if username == "" {
		return nil, instagram.ErrNotFound
	}

	params := url.Values{}
	params.Set("username", username)
	endpoint := fmt.Sprintf("%s/api/v1/users/web_profile_info/?%s", ig.Config.Instagram.BaseURL, params.Encode())

	body, err := ig.fetchJSON(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	user := gjson.GetBytes(body, "data.user")
	if !user.Exists() || user.Type == gjson.Null {
		return nil, instagram.ErrNotFound
	}

	ig.Logger.Debug("Fetched profile", "username", username)
	return parseProfileNode(user), nil
}

// GetProfileByID resolves the username behind a numeric user id, then reuses
// the username path. Two requests, still anonymous.
func (ig *IgImpl) GetProfileByID(ctx context.Context, userID int64) (*domain.ProfileRecord, error) {
	endpoint := fmt.Sprintf("%s/api/v1/users/%d/info/", ig.Config.Instagram.BaseURL, userID)

	body, err := ig.fetchJSON(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	username := gjson.GetBytes(body, "user.username").Str
	if username == "" {
		return nil, instagram.ErrNotFound
	}

	return ig.GetProfile(ctx, username)
}

// RecentPosts reads the timeline edges already present on the fetched profile
// page. No extra request, no pagination.
func (ig *IgImpl) RecentPosts(_ context.Context, profile *domain.ProfileRecord, limit int) ([]*domain.MediaRecord, error) {
	if profile == nil {
		return nil, instagram.ErrNotFound
	}

	edges := gjson.GetBytes(profile.Raw, "edge_owner_to_timeline_media.edges")

	var posts []*domain.MediaRecord
	edges.ForEach(func(_ gjson.Result, edge gjson.Result) bool {
		if limit > 0 && len(posts) >= limit {
			return false
		}
		node := edge.Get("node")
		if !node.Exists() {
			return true
		}
		posts = append(posts, parseMediaNode(node))
		return true
	})

	return posts, nil
}

func parseProfileNode(user gjson.Result) *domain.ProfileRecord {
	avatar := user.Get("profile_pic_url_hd").Str
	if avatar == "" {
		avatar = user.Get("profile_pic_url").Str
	}

	return &domain.ProfileRecord{
		Username:    user.Get("username").Str,
		FullName:    user.Get("full_name").Str,
		UserID:      user.Get("id").Int(),
		IsVerified:  user.Get("is_verified").Bool(),
		IsBusiness:  user.Get("is_business_account").Bool(),
		Followers:   user.Get("edge_followed_by.count").Int(),
		Following:   user.Get("edge_follow.count").Int(),
		MediaCount:  user.Get("edge_owner_to_timeline_media.count").Int(),
		Biography:   user.Get("biography").Str,
		AvatarURL:   avatar,
		ExternalURL: user.Get("external_url").Str,
		Raw:         []byte(user.Raw),
	}
}
