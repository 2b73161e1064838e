package infra

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"gymtrack/internal/config"
)

// Identity is the tuple the identity provider hands back after a successful
// login. The rest of the system consumes exactly this and nothing else about
// the handshake.
type Identity struct {
	Subject       string
	Email         string
	EmailVerified bool
	FullName      string
	AvatarURL     string
	RawClaims     json.RawMessage
}

type IdentityProvider interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*Identity, error)
}

type googleProvider struct {
	verifier *oidc.IDTokenVerifier
	oauth    oauth2.Config
}

func NewGoogleIdentityProvider(ctx context.Context, cfg *config.Config) (IdentityProvider, error) {
	provider, err := oidc.NewProvider(ctx, "https://accounts.google.com")
	if err != nil {
		return nil, err
	}

	return &googleProvider{
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.GoogleClientID}),
		oauth: oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			Endpoint:     provider.Endpoint(),
			RedirectURL:  cfg.OAuthRedirectURI,
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		},
	}, nil
}

func (p *googleProvider) AuthURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

func (p *googleProvider) Exchange(ctx context.Context, code string) (*Identity, error) {
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, errors.New("token response missing id_token")
	}

	idToken, err := p.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, err
	}

	var claims struct {
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, err
	}

	var rawClaims map[string]interface{}
	_ = idToken.Claims(&rawClaims)
	rawJSON, _ := json.Marshal(rawClaims)

	if idToken.Subject == "" {
		return nil, errors.New("missing subject claim")
	}

	return &Identity{
		Subject:       idToken.Subject,
		Email:         strings.ToLower(claims.Email),
		EmailVerified: claims.EmailVerified,
		FullName:      claims.Name,
		AvatarURL:     claims.Picture,
		RawClaims:     rawJSON,
	}, nil
}
