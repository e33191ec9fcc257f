// Package osuapi is a thin client for the osu! API v2 endpoints the bot
// uses: user lookup, beatmap lookup and recent scores. Authentication uses
// the client-credentials grant; token refresh is handled by the oauth2
// transport.
package osuapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/SawshaDev/Aswo/app/shared/apperrors"
)

// Client defines the game-stats lookups used by the command handlers.
type Client interface {
	FetchUser(ctx context.Context, username string) (*User, error)
	FetchBeatmap(ctx context.Context, beatmapID int64) (*Beatmap, error)
	FetchRecentScores(ctx context.Context, userID int64, limit int, includeFails bool) ([]Score, error)
	FetchUserBeatmaps(ctx context.Context, userID int64, beatmapType string, limit int) ([]Beatmapset, error)
}

type client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client authenticating with the given osu! OAuth
// application credentials.
func New(clientID, clientSecret, tokenURL, baseURL string) Client {
	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
		Scopes:       []string{"public"},
	}

	httpClient := conf.Client(context.Background())
	httpClient.Timeout = 15 * time.Second

	return &client{
		baseURL: baseURL,
		http:    httpClient,
	}
}

// NewWithHTTPClient builds a Client on a caller-supplied http.Client.
// Used by tests to point at a stub server without OAuth.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) Client {
	return &client{baseURL: baseURL, http: httpClient}
}

func (c *client) FetchUser(ctx context.Context, username string) (*User, error) {
	var user User
	path := fmt.Sprintf("/users/%s/osu", url.PathEscape(username))
	if err := c.getJSON(ctx, path, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *client) FetchBeatmap(ctx context.Context, beatmapID int64) (*Beatmap, error) {
	var beatmap Beatmap
	path := fmt.Sprintf("/beatmaps/%d", beatmapID)
	if err := c.getJSON(ctx, path, nil, &beatmap); err != nil {
		return nil, err
	}
	return &beatmap, nil
}

func (c *client) FetchRecentScores(ctx context.Context, userID int64, limit int, includeFails bool) ([]Score, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if includeFails {
		query.Set("include_fails", "1")
	}

	var scores []Score
	path := fmt.Sprintf("/users/%d/scores/recent", userID)
	if err := c.getJSON(ctx, path, query, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

// FetchUserBeatmaps lists a user's beatmapsets of the given type, for
// example "favourite" or "ranked".
func (c *client) FetchUserBeatmaps(ctx context.Context, userID int64, beatmapType string, limit int) ([]Beatmapset, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	var sets []Beatmapset
	path := fmt.Sprintf("/users/%d/beatmapsets/%s", userID, url.PathEscape(beatmapType))
	if err := c.getJSON(ctx, path, query, &sets); err != nil {
		return nil, err
	}
	return sets, nil
}

func (c *client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	op := "osuapi: GET " + path

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &apperrors.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Resource: path}
	case resp.StatusCode >= 400:
		return &apperrors.ProtocolError{Op: op, Detail: "unexpected status " + resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &apperrors.ProtocolError{Op: op, Detail: "malformed response body", Err: err}
	}
	return nil
}

// NotFoundError indicates the requested user or beatmap does not exist.
// It is shown to the user directly instead of as a generic failure.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("osuapi: %s not found", e.Resource)
}
