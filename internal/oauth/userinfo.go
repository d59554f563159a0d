package oauth

import (
	"context"
	"fmt"
	"net/http"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/earth/internal/xhttp"
)

type UserInfo struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

// FetchUserInfo asks the provider who the access token belongs to.
func FetchUserInfo(ctx context.Context, client *http.Client, endpoint string, accessToken string) (*UserInfo, error) {
	if endpoint == "" {
		endpoint = userInfoURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	xhttp.SetRequestHeaderBearer(req, accessToken)
	xhttp.SetRequestHeaderAcceptJSON(req)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo failed with status %d", resp.StatusCode)
	}

	var info UserInfo
	if err := go_json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo: %w", err)
	}
	if info.Email == "" {
		return nil, ErrNoEmail
	}

	return &info, nil
}
