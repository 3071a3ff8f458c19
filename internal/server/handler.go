package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/LuckDucapa/spidey-ff-ig/internal/domain"
	"github.com/LuckDucapa/spidey-ff-ig/internal/instagram"
	"github.com/LuckDucapa/spidey-ff-ig/internal/normalizer"
	"github.com/LuckDucapa/spidey-ff-ig/pkg/shortcode"
)

type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// handleSearch selects the mode from the query parameters: username/userid
// runs a profile search, url/id runs a media search.
func (s *Server) handleSearch(c echo.Context) error {
	start := time.Now()

	var (
		rawURL   = c.QueryParam("url")
		postID   = c.QueryParam("id")
		username = c.QueryParam("username")
		userID   = c.QueryParam("userid")
	)

	switch {
	case username != "" || userID != "":
		return s.profileSearch(c, start, username, userID)
	case rawURL != "" || postID != "":
		target := rawURL
		if target == "" {
			target = postID
		}
		return s.mediaSearch(c, start, target)
	default:
		return c.JSON(http.StatusBadRequest, errorBody{
			Status:  "Error",
			Message: "Missing parameters. Use 'url', 'id', 'username', or 'userid'.",
		})
	}
}

func (s *Server) profileSearch(c echo.Context, start time.Time, username, userID string) error {
	ctx := c.Request().Context()

	var (
		profile *domain.ProfileRecord
		err     error
	)
	if username != "" {
		profile, err = s.instagram.GetProfile(ctx, username)
	} else {
		id, perr := strconv.ParseInt(userID, 10, 64)
		if perr != nil {
			return c.JSON(http.StatusBadRequest, errorBody{Status: "Error", Message: "invalid userid"})
		}
		profile, err = s.instagram.GetProfileByID(ctx, id)
	}
	if err != nil {
		return s.errorResponse(c, err)
	}

	records, err := s.instagram.RecentPosts(ctx, profile, s.cfg.Search.ProfilePostsLimit)
	if err != nil {
		// A private or empty timeline still yields the profile block.
		s.logger.Warn("Failed to load recent posts", "username", profile.Username, "error", err)
		records = nil
	}

	env, err := s.assembler.AssembleProfile(profile, records, start, time.Since(start))
	if err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, env)
}

func (s *Server) mediaSearch(c echo.Context, start time.Time, target string) error {
	ctx := c.Request().Context()

	code, err := shortcode.Extract(target)
	if err != nil {
		return s.errorResponse(c, err)
	}

	rec, err := s.instagram.GetPost(ctx, code)
	if err != nil {
		return s.errorResponse(c, err)
	}

	// The author block degrades to its minimal form when the owner profile
	// cannot be fetched.
	author, err := s.instagram.GetProfile(ctx, rec.OwnerUsername)
	if err != nil {
		s.logger.Warn("Failed to load post owner profile", "username", rec.OwnerUsername, "error", err)
		author = nil
	}

	env, err := s.assembler.AssembleMedia(rec, author, start, time.Since(start))
	if err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, env)
}

func (s *Server) errorResponse(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, shortcode.ErrNotExtractable):
		status = http.StatusBadRequest
	case errors.Is(err, instagram.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, instagram.ErrAuthRequired):
		status = http.StatusForbidden
	case errors.Is(err, normalizer.ErrMalformedRecord):
		status = http.StatusBadGateway
	}
	return c.JSON(status, errorBody{Status: "Error", Message: err.Error()})
}
