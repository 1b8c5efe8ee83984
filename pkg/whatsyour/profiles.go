package whatsyour

import (
	"context"
	"net/http"
	"strconv"
)

// GetProfile fetches the public profile for username.
func (c *Client) GetProfile(ctx context.Context, username string) (*PublicProfile, error) {
	data, err := c.do(ctx, call{
		op:     "get_profile",
		method: http.MethodGet,
		path:   "/public/profile/" + pathEscape(username),
	})
	if err != nil {
		return nil, err
	}
	return decodeProfile(data)
}

// SearchProfiles searches public profiles. Results keep the server's order.
// A limit <= 0 selects DefaultSearchLimit.
func (c *Client) SearchProfiles(ctx context.Context, query string, limit int) ([]PublicProfile, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	data, err := c.do(ctx, call{
		op:     "search_profiles",
		method: http.MethodGet,
		path:   "/public/search",
		query: map[string]string{
			"q":     query,
			"limit": strconv.Itoa(limit),
		},
	})
	if err != nil {
		return nil, err
	}
	return decodeProfiles(data)
}
