package instagram

import (
	"context"
	"errors"

	"github.com/LuckDucapa/spidey-ff-ig/internal/domain"
)

var (
	// ErrNotFound means the post or profile does not exist, or is private and
	// indistinguishable from absent without credentials.
	ErrNotFound = errors.New("record not found")

	// ErrAuthRequired means the provider demands a login to serve the record.
	ErrAuthRequired = errors.New("login required to access this record")

	// ErrUpstream covers every other fetch failure.
	ErrUpstream = errors.New("upstream fetch failed")
)

// Client fetches raw provider records. Implementations do not retry, do not
// paginate past the first page and do not authenticate.
type Client interface {
	GetPost(ctx context.Context, shortcode string) (*domain.MediaRecord, error)
	GetProfile(ctx context.Context, username string) (*domain.ProfileRecord, error)
	GetProfileByID(ctx context.Context, userID int64) (*domain.ProfileRecord, error)

	// RecentPosts returns up to limit most recent posts of the profile, in
	// provider order. The records come from the already-fetched profile page,
	// so this never costs an extra request.
	RecentPosts(ctx context.Context, profile *domain.ProfileRecord, limit int) ([]*domain.MediaRecord, error)
}
