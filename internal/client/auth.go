package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/api/response"
	"github.com/quizcourse/quizcourse/internal/domain"
)

// Login exchanges credentials for a bearer token using the form-encoded
// OAuth2 password flow.
func (c *Client) Login(ctx context.Context, email, password string) (response.LoginResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var resp response.LoginResponse
	err := c.do(ctx, http.MethodPost, "/login", strings.NewReader(form.Encode()), contentTypeForm, &resp)
	if err != nil {
		return response.LoginResponse{}, fmt.Errorf("c.Login -> %w", err)
	}

	return resp, nil
}

// LoginJSON is the JSON flavour of Login served under /users/login.
func (c *Client) LoginJSON(ctx context.Context, email, password string) (response.LoginResponse, error) {
	var resp response.LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/users/login", request.LoginRequest{
		Username: email,
		Password: password,
	}, &resp)
	if err != nil {
		return response.LoginResponse{}, fmt.Errorf("c.LoginJSON -> %w", err)
	}

	return resp, nil
}

func (c *Client) Register(ctx context.Context, req request.RegisterRequest) (domain.User, error) {
	if req.Interests == nil {
		req.Interests = []string{}
	}

	var user domain.User
	if err := c.doJSON(ctx, http.MethodPost, "/users/register", req, &user); err != nil {
		return domain.User{}, fmt.Errorf("c.Register -> %w", err)
	}

	return user, nil
}
