package federated

import (
	"context"
	"fmt"
	"log"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"falgoritma/pkg/utils"
)

const appleIssuer = "https://appleid.apple.com"

// AppleVerifier validates Apple identity tokens against Apple's JWKS. The key
// set is cached and refreshed in the background by keyfunc, keyed by kid.
type AppleVerifier struct {
	issuer string
	jwks   keyfunc.Keyfunc
}

func NewAppleVerifier() (*AppleVerifier, error) {
	jwksURL := appleIssuer + "/auth/keys"
	jwks, err := keyfunc.NewDefault([]string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("fetch JWKS from %s: %w", jwksURL, err)
	}

	return &AppleVerifier{
		issuer: appleIssuer,
		jwks:   jwks,
	}, nil
}

func (a *AppleVerifier) Verify(ctx context.Context, identityToken string) (*ProviderClaims, error) {
	token, err := jwt.Parse(identityToken, a.jwks.KeyfuncCtx(ctx),
		jwt.WithIssuer(a.issuer),
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		log.Printf("apple identity token rejected: %v", err)
		return nil, utils.ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, utils.ErrUnauthenticated
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if sub == "" || email == "" {
		return nil, utils.ErrUnauthenticated
	}

	return &ProviderClaims{
		Subject: sub,
		Email:   email,
	}, nil
}
