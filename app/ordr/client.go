// Package ordr is the client for the o!rdr replay rendering service. It
// covers the two calls the bot makes: submitting a replay for rendering and
// listing the available skins. Completion events arrive separately over the
// notification channel, see the notify subpackage.
package ordr

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	cache "github.com/SawshaDev/Aswo/bigcache"

	"github.com/SawshaDev/Aswo/app/shared/apperrors"
)

// Client defines the render service operations used by the replay handlers.
type Client interface {
	// SubmitReplay sends a replay URL for rendering. It makes exactly one
	// attempt; retrying is deliberately left to the user.
	SubmitReplay(ctx context.Context, req SubmitRequest) (*Submission, error)
	// ListSkins returns one page of the skin catalogue. Pages are memoized
	// for a short window, see NewClient.
	ListSkins(ctx context.Context, page, pageSize int) (*SkinPage, error)
}

// SubmitRequest carries the fields of a render submission. Username and
// Resolution are fixed per deployment; SkinID comes from the preference
// store (default 1).
type SubmitRequest struct {
	ReplayURL  string
	Username   string
	Resolution string
	SkinID     int
}

// Submission is the accepted-render response.
type Submission struct {
	RenderID int64 `json:"renderID"`
}

// Skin is one entry of the o!rdr skin catalogue.
type Skin struct {
	ID             int    `json:"id"`
	Name           string `json:"skin"`
	Author         string `json:"author"`
	HighResPreview string `json:"highResPreview"`
	DownloadURL    string `json:"url"`
}

// SkinPage is one page of the catalogue plus the catalogue size.
type SkinPage struct {
	Skins    []Skin `json:"skins"`
	MaxSkins int    `json:"maxSkins"`
}

type client struct {
	baseURL         string
	verificationKey string
	http            *http.Client
	skinMemo        cache.CacheInterface
	logger          *slog.Logger
}

// NewClient creates an o!rdr client. skinMemo bounds repeated skin-listing
// calls; pass nil to disable memoization.
func NewClient(baseURL, verificationKey string, skinMemo cache.CacheInterface, logger *slog.Logger) Client {
	return &client{
		baseURL:         strings.TrimRight(baseURL, "/"),
		verificationKey: verificationKey,
		http:            &http.Client{Timeout: 30 * time.Second},
		skinMemo:        skinMemo,
		logger:          logger,
	}
}

// submitResponse is the raw wire shape of POST /renders. The service
// always includes errorCode; zero means the render was accepted.
type submitResponse struct {
	RenderID  int64  `json:"renderID"`
	ErrorCode int    `json:"errorCode"`
	Message   string `json:"message"`
}

func (c *client) SubmitReplay(ctx context.Context, req SubmitRequest) (*Submission, error) {
	const op = "ordr: submit replay"

	form := url.Values{}
	form.Set("replayURL", req.ReplayURL)
	form.Set("username", req.Username)
	form.Set("resolution", req.Resolution)
	form.Set("skin", strconv.Itoa(req.SkinID))
	form.Set("verificationKey", c.verificationKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/renders", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &apperrors.TransportError{Op: op, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &apperrors.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	var body submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &apperrors.ProtocolError{Op: op, Detail: "malformed response body", Err: err}
	}

	if body.ErrorCode != 0 {
		c.logger.InfoContext(ctx, "Render submission rejected",
			slog.Int("error_code", body.ErrorCode),
			slog.String("message", body.Message),
		)
		return nil, &DomainError{Code: body.ErrorCode}
	}
	if body.RenderID == 0 {
		return nil, &apperrors.ProtocolError{Op: op, Detail: "response carries neither renderID nor errorCode"}
	}

	return &Submission{RenderID: body.RenderID}, nil
}
