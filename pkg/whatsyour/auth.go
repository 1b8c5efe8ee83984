package whatsyour

import (
	"context"
	"net/http"
)

// AuthenticateUser logs a user in with email and password. The client's API
// key gates the endpoint; it is not the login principal.
func (c *Client) AuthenticateUser(ctx context.Context, email, password string) (*LoginResponse, error) {
	if err := c.requireAPIKey(); err != nil {
		return nil, err
	}
	data, err := c.do(ctx, call{
		op:     "authenticate_user",
		method: http.MethodPost,
		path:   "/auth/login",
		body: map[string]string{
			"email":    email,
			"password": password,
		},
	})
	if err != nil {
		return nil, err
	}
	return decodeLogin(data)
}

// VerifyToken checks a user session token and returns its owner.
func (c *Client) VerifyToken(ctx context.Context, token string) (*AuthUser, error) {
	return c.userByToken(ctx, "verify_token", "/auth/verify", token)
}

// GetUserProfile returns the account behind a user session token.
func (c *Client) GetUserProfile(ctx context.Context, token string) (*AuthUser, error) {
	return c.userByToken(ctx, "get_user_profile", "/auth/user", token)
}

// userByToken sends token in place of the client credential for this call only.
func (c *Client) userByToken(ctx context.Context, op, path, token string) (*AuthUser, error) {
	if err := c.requireAPIKey(); err != nil {
		return nil, err
	}
	data, err := c.do(ctx, call{
		op:      op,
		method:  http.MethodGet,
		path:    path,
		headers: map[string]string{"Authorization": bearer(token)},
	})
	if err != nil {
		return nil, err
	}
	return decodeUserField(data)
}
