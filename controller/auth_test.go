package controller

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jardellitieri/placar-magico/testutils"
)

func authController(t *testing.T) (*controller, *clock.Mock, *testutils.TestAuth) {
	t.Helper()

	testAuth := testutils.NewTestAuth()
	t.Cleanup(testAuth.Close)

	mockClock := clock.NewMock()
	return &controller{
		clock:      mockClock,
		authConfig: testAuth.Config,
		authStates: make(map[string]time.Time),
		sessions:   make(map[string]time.Time),
	}, mockClock, testAuth
}

func stateFromAuthURL(t *testing.T, authURL string) string {
	t.Helper()

	u, err := url.Parse(authURL)
	if err != nil {
		t.Fatalf("error parsing auth URL: %v", err)
	}
	state := u.Query().Get("state")
	if state == "" {
		t.Fatal("auth URL has no state parameter")
	}
	return state
}

func TestAuthFlow(t *testing.T) {
	ctx := context.Background()
	ctrl, _, testAuth := authController(t)

	if !ctrl.AuthConfigured() {
		t.Fatal("expected auth to be configured")
	}

	authURL, err := ctrl.AuthStart()
	if err != nil {
		t.Fatalf("unexpected error starting auth: %v", err)
	}
	if !strings.HasPrefix(authURL, testAuth.Config.Endpoint.AuthURL) {
		t.Errorf("auth URL does not point at the provider: %s", authURL)
	}

	state := stateFromAuthURL(t, authURL)
	session, err := ctrl.AuthExchange(ctx, state, "code")
	if err != nil {
		t.Fatalf("unexpected error exchanging code: %v", err)
	}
	if session == "" {
		t.Fatal("expected a session token")
	}

	if !ctrl.ValidSession(session) {
		t.Error("freshly minted session is not valid")
	}
	if ctrl.ValidSession("forged") {
		t.Error("an unknown token must not validate")
	}

	// A state is single use.
	if _, err := ctrl.AuthExchange(ctx, state, "code"); err == nil {
		t.Error("expected reusing a state to fail")
	}
}

func TestAuthExchange_expiredState(t *testing.T) {
	ctx := context.Background()
	ctrl, mockClock, _ := authController(t)

	authURL, err := ctrl.AuthStart()
	if err != nil {
		t.Fatalf("unexpected error starting auth: %v", err)
	}
	state := stateFromAuthURL(t, authURL)

	mockClock.Add(6 * time.Minute)
	if _, err := ctrl.AuthExchange(ctx, state, "code"); err == nil {
		t.Error("expected an expired state to fail")
	}
}

func TestValidSession_expiry(t *testing.T) {
	ctx := context.Background()
	ctrl, mockClock, _ := authController(t)

	authURL, err := ctrl.AuthStart()
	if err != nil {
		t.Fatalf("unexpected error starting auth: %v", err)
	}
	session, err := ctrl.AuthExchange(ctx, stateFromAuthURL(t, authURL), "code")
	if err != nil {
		t.Fatalf("unexpected error exchanging code: %v", err)
	}

	if !ctrl.ValidSession(session) {
		t.Fatal("session should be valid before expiry")
	}
	mockClock.Add(13 * time.Hour)
	if ctrl.ValidSession(session) {
		t.Error("session should have expired")
	}
}

func TestAuthUnconfigured(t *testing.T) {
	ctrl := &controller{
		authStates: make(map[string]time.Time),
		sessions:   make(map[string]time.Time),
	}

	if ctrl.AuthConfigured() {
		t.Error("expected auth to be unconfigured")
	}
	if _, err := ctrl.AuthStart(); err == nil {
		t.Error("expected AuthStart to fail without a provider")
	}
	if _, err := ctrl.AuthExchange(context.Background(), "s", "c"); err == nil {
		t.Error("expected AuthExchange to fail without a provider")
	}
}
