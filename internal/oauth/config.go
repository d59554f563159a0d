package oauth

import (
	"github.com/garrettladley/earth/internal/config"
	"golang.org/x/oauth2"
)

const (
	authURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	tokenURL    = "https://oauth2.googleapis.com/token" //nolint:gosec // not credentials, just endpoint URL
	userInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
)

var scopes = []string{
	"openid",
	"email",
	"profile",
}

// NewConfig builds the provider config. RedirectURL is filled per flow run,
// once the loopback listener has a port.
func NewConfig(google config.Google) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     google.ClientID,
		ClientSecret: google.ClientSecret,
		Scopes:       scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   authURL,
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}
