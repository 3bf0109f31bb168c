package upstream

import (
	"context"
	"net/http"
)

type LoginResult struct {
	Token string `json:"token"`
}

// Login exchanges admin credentials for a bearer token. Authentication
// itself is owned by the upstream API; this backend only stores the token
// for the session.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	payload, err := c.request(ctx, http.MethodPost, "/api/v1/auth/login", body)
	if err != nil {
		return nil, err
	}
	return decodeOne[LoginResult](payload)
}
