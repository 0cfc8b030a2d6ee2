package apiclient

import (
	"encoding/base64"

	"github.com/golang-jwt/jwt/v5"
)

// AuthType identifies the authentication scheme.
type AuthType int

const (
	// AuthNone disables authentication.
	AuthNone AuthType = iota
	// AuthBasic uses HTTP Basic authentication.
	AuthBasic
	// AuthJWT sends the token with a "JWT" Authorization prefix.
	AuthJWT
	// AuthBearer uses Bearer token authentication.
	AuthBearer
	// AuthOAuth2 uses an OAuth2 access token (Bearer wire format).
	AuthOAuth2
	// AuthAPIKey sends the key in the x-api-key header.
	AuthAPIKey
	// AuthToken sends the token in a bare "token" header.
	AuthToken
)

// AuthConfig carries the credentials for one authentication scheme.
// The payload fields that apply are determined by Type; use the
// constructors below rather than building the struct by hand.
type AuthConfig struct {
	// Type is the authentication scheme.
	Type AuthType
	// Username is the basic auth username (AuthBasic).
	Username string
	// Password is the basic auth password (AuthBasic).
	Password string
	// Token is the secret for AuthJWT, AuthBearer, AuthOAuth2 and AuthToken.
	Token string
	// Key is the API key value (AuthAPIKey).
	Key string
}

// BasicAuth creates a basic auth config.
func BasicAuth(username, password string) *AuthConfig {
	return &AuthConfig{Type: AuthBasic, Username: username, Password: password}
}

// JWTAuth creates a JWT auth config from an already-signed token.
func JWTAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthJWT, Token: token}
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthBearer, Token: token}
}

// OAuth2Auth creates an OAuth2 auth config. The access token is sent
// with the standard Bearer prefix.
func OAuth2Auth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthOAuth2, Token: token}
}

// APIKeyAuth creates an API key auth config.
func APIKeyAuth(key string) *AuthConfig {
	return &AuthConfig{Type: AuthAPIKey, Key: key}
}

// TokenAuth creates a bare token-header auth config.
func TokenAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthToken, Token: token}
}

// SignedJWTAuth signs the claims with HMAC-SHA256 and returns a JWT auth
// config carrying the resulting token. The secret is never retained.
func SignedJWTAuth(secret []byte, claims jwt.MapClaims) (*AuthConfig, error) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return nil, err
	}
	return JWTAuth(token), nil
}

// Headers resolves the scheme to its exact header set. The function is
// pure: it never fails and never touches anything outside the config.
// Each scheme produces exactly one header; AuthNone (and a nil config)
// produce none.
func (a *AuthConfig) Headers() map[string]string {
	if a == nil {
		return map[string]string{}
	}
	switch a.Type {
	case AuthBasic:
		creds := base64.StdEncoding.EncodeToString([]byte(a.Username + ":" + a.Password))
		return map[string]string{"Authorization": "Basic " + creds}
	case AuthJWT:
		return map[string]string{"Authorization": "JWT " + a.Token}
	case AuthBearer:
		return map[string]string{"Authorization": "Bearer " + a.Token}
	case AuthOAuth2:
		return map[string]string{"Authorization": "Bearer " + a.Token}
	case AuthAPIKey:
		return map[string]string{"x-api-key": a.Key}
	case AuthToken:
		return map[string]string{"token": a.Token}
	default:
		return map[string]string{}
	}
}
