package ordr

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/SawshaDev/Aswo/app/shared/apperrors"
	"github.com/SawshaDev/Aswo/app/shared/metrics"
)

func (c *client) ListSkins(ctx context.Context, page, pageSize int) (*SkinPage, error) {
	const op = "ordr: list skins"

	memoKey := fmt.Sprintf("skins:%d:%d", page, pageSize)
	if c.skinMemo != nil {
		if raw, err := c.skinMemo.Get(memoKey); err == nil {
			var cached SkinPage
			if err := json.Unmarshal(raw, &cached); err == nil {
				if metrics.SkinLookupsCached != nil {
					metrics.SkinLookupsCached.Inc()
				}
				return &cached, nil
			}
			// A corrupt entry just means we re-fetch.
			_ = c.skinMemo.Delete(memoKey)
		}
	}

	u := fmt.Sprintf("%s/skins?pageSize=%s&page=%s", c.baseURL,
		strconv.Itoa(pageSize), strconv.Itoa(page))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &apperrors.TransportError{Op: op, Err: err}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &apperrors.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &apperrors.ProtocolError{Op: op, Detail: "unexpected status " + resp.Status}
	}

	var pageBody SkinPage
	if err := json.NewDecoder(resp.Body).Decode(&pageBody); err != nil {
		return nil, &apperrors.ProtocolError{Op: op, Detail: "malformed response body", Err: err}
	}

	if c.skinMemo != nil {
		if raw, err := json.Marshal(&pageBody); err == nil {
			if err := c.skinMemo.Set(memoKey, raw); err != nil {
				c.logger.DebugContext(ctx, "Failed to memoize skin page", slog.Any("error", err))
			}
		}
	}

	return &pageBody, nil
}

// FilterSkins returns the skins matching the current autocomplete input.
// An empty input matches everything; otherwise skins match on an id prefix
// or a case-insensitive name substring.
func FilterSkins(skins []Skin, current string) []Skin {
	if current == "" {
		return skins
	}

	lowered := strings.ToLower(current)
	var matched []Skin
	for _, skin := range skins {
		if strings.HasPrefix(strconv.Itoa(skin.ID), current) ||
			strings.Contains(strings.ToLower(skin.Name), lowered) {
			matched = append(matched, skin)
		}
	}
	return matched
}

// FindSkin resolves a skin id against a page of the catalogue.
func FindSkin(skins []Skin, skinID int) (*Skin, bool) {
	for i := range skins {
		if skins[i].ID == skinID {
			return &skins[i], true
		}
	}
	return nil, false
}
