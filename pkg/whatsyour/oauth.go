package whatsyour

import (
	"context"
	"net/http"
	"net/url"
)

const (
	// AuthorizeURL is the OAuth authorization endpoint users are sent to.
	AuthorizeURL = "https://whatsyour.info/oauth/authorize"

	oauthResponseType = "code"
	oauthScope        = "profile email"
	oauthGrantType    = "authorization_code"
)

// CreateOAuthURL builds the authorization URL for clientID. An empty state is omitted.
// No request is made.
func (c *Client) CreateOAuthURL(clientID, redirectURI, state string) string {
	return CreateOAuthURL(clientID, redirectURI, state)
}

// CreateOAuthURL is the package-level form of (*Client).CreateOAuthURL.
func CreateOAuthURL(clientID, redirectURI, state string) string {
	params := url.Values{}
	params.Set("client_id", clientID)
	params.Set("redirect_uri", redirectURI)
	params.Set("response_type", oauthResponseType)
	params.Set("scope", oauthScope)
	if state != "" {
		params.Set("state", state)
	}
	return AuthorizeURL + "?" + params.Encode()
}

// ExchangeCodeForToken trades an authorization code for an access token.
// The response body is returned as-is.
func (c *Client) ExchangeCodeForToken(ctx context.Context, clientID, clientSecret, code, redirectURI string) (TokenResponse, error) {
	data, err := c.do(ctx, call{
		op:     "exchange_code_for_token",
		method: http.MethodPost,
		path:   "/oauth/token",
		body: map[string]string{
			"client_id":     clientID,
			"client_secret": clientSecret,
			"code":          code,
			"redirect_uri":  redirectURI,
			"grant_type":    oauthGrantType,
		},
	})
	if err != nil {
		return nil, err
	}
	return TokenResponse(data), nil
}
