package controller

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

const (
	authStateTTL = 5 * time.Minute
	sessionTTL   = 12 * time.Hour
)

// AuthConfigured reports whether a sign-in provider was configured. Without
// one the app runs open, which is how it is used on a laptop at the pitch.
func (c *controller) AuthConfigured() bool {
	return c.authConfig != nil
}

// AuthStart returns the provider URL to redirect the user to.
func (c *controller) AuthStart() (string, error) {
	if c.authConfig == nil {
		return "", errors.New("sign-in is not configured")
	}

	state := randomToken()
	c.sessionMu.Lock()
	c.authStates[state] = c.clock.Now().Add(authStateTTL)
	c.sessionMu.Unlock()

	return c.authConfig.AuthCodeURL(state), nil
}

// AuthExchange validates the callback state, exchanges the code for a token
// and mints a session. The provider token itself is discarded - signing in is
// all the app needs from it.
func (c *controller) AuthExchange(ctx context.Context, state, code string) (string, error) {
	if c.authConfig == nil {
		return "", errors.New("sign-in is not configured")
	}

	c.sessionMu.Lock()
	expiry, ok := c.authStates[state]
	delete(c.authStates, state)
	c.sessionMu.Unlock()
	if !ok || c.clock.Now().After(expiry) {
		return "", errors.New("state is not valid")
	}

	if _, err := c.authConfig.Exchange(ctx, code); err != nil {
		return "", fmt.Errorf("error exchanging code: %w", err)
	}

	session := randomToken()
	c.sessionMu.Lock()
	c.sessions[session] = c.clock.Now().Add(sessionTTL)
	c.sessionMu.Unlock()
	return session, nil
}

func (c *controller) ValidSession(token string) bool {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()

	expiry, ok := c.sessions[token]
	if !ok {
		return false
	}
	if c.clock.Now().After(expiry) {
		delete(c.sessions, token)
		return false
	}
	return true
}

func randomToken() string {
	var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, 24)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
