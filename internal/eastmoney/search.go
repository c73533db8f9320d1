package eastmoney

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/url"
	"strconv"
)

// SearchResult is one security match for a keyword query.
type SearchResult struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Pinyin string `json:"pinyinString"`
}

type searchResponse struct {
	Data []SearchResult `json:"data"`
}

// Search queries the SSE short-name endpoint by keyword — a code, a
// full name, or a fuzzy fragment. An empty result list is a valid
// answer, not an error.
func (c *Client) Search(ctx context.Context, keyword string) ([]SearchResult, error) {
	params := url.Values{
		"dataType": {"[agzqdm]"},
		"input":    {keyword},
		// Cache buster; the endpoint serves stale results without it.
		"random": {strconv.FormatFloat(rand.Float64(), 'f', -1, 64)},
	}

	body, err := c.get(ctx, c.cfg.SearchURL, params)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", keyword, err)
	}

	var resp searchResponse
	if err := json.Unmarshal(unwrapJSONP(body), &resp); err != nil {
		return nil, fmt.Errorf("search decode %q: %w", keyword, err)
	}
	return resp.Data, nil
}
