package testutils

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"golang.org/x/oauth2"
)

type TestAuth struct {
	Config    *oauth2.Config
	fakeOAuth *httptest.Server
}

func (a *TestAuth) Close() {
	a.fakeOAuth.Close()
}

// NewTestAuth runs a fake OAuth token endpoint so that sign-in flows can be
// exercised without talking to a real identity provider.
func NewTestAuth() *TestAuth {
	fakeOAuthServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"access_token": "access_token",
			"refresh_token": "refresh_token",
			"token_type": "bearer",
			"expires_in": 3600
		}`))
	}))

	config := &oauth2.Config{
		ClientID:     "fakeClientID",
		ClientSecret: "fakeClientSecret",
		Endpoint: oauth2.Endpoint{
			AuthURL:  fmt.Sprintf("%s/auth", fakeOAuthServer.URL),
			TokenURL: fmt.Sprintf("%s/token", fakeOAuthServer.URL),
		},
		RedirectURL: fmt.Sprintf("%s/redirect", fakeOAuthServer.URL),
	}
	return &TestAuth{
		Config:    config,
		fakeOAuth: fakeOAuthServer,
	}
}
