package instagramimpl

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/LuckDucapa/spidey-ff-ig/internal/instagram"
	"github.com/LuckDucapa/spidey-ff-ig/pkg/config"
	"github.com/LuckDucapa/spidey-ff-ig/pkg/errors"
	"github.com/LuckDucapa/spidey-ff-ig/pkg/logger"
	"github.com/tidwall/gjson"
	"go.uber.org/fx"
)

// IgImpl talks to the anonymous Instagram web API. One fetch per call, no
// session, no retries.
type IgImpl struct {
	Client *http.Client
	Config *config.Config
	Logger logger.Logger
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

func New(opts Opts) *IgImpl {
	return &IgImpl{
		Client: &http.Client{Timeout: opts.Config.Instagram.Timeout},
		Config: opts.Config,
		Logger: opts.Logger.WithComponent("InstagramClient"),
	}
}

var _ instagram.Client = (*IgImpl)(nil)

// fetchJSON performs one GET against the web API and maps HTTP statuses to the
// fetch error kinds. A login redirect page instead of JSON also means the
// record needs credentials.
func (ig *IgImpl) fetchJSON(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("User-Agent", ig.Config.Instagram.UserAgent)
	req.Header.Set("X-IG-App-ID", ig.Config.Instagram.AppID)
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := ig.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", instagram.ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, instagram.ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, instagram.ErrAuthRequired
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %s", instagram.ErrUpstream, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", instagram.ErrUpstream, err)
	}

	if !gjson.ValidBytes(body) {
		// The web tier serves an HTML login wall with status 200.
		return nil, instagram.ErrAuthRequired
	}
	if gjson.GetBytes(body, "requires_to_login").Bool() {
		return nil, instagram.ErrAuthRequired
	}

	return body, nil
}
