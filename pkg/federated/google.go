package federated

import (
	"context"
	"log"

	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"falgoritma/pkg/utils"
)

// GoogleVerifier validates Google ID tokens against the tokeninfo endpoint.
type GoogleVerifier struct {
	svc *goauth2.Service
}

func NewGoogleVerifier(ctx context.Context) (*GoogleVerifier, error) {
	svc, err := goauth2.NewService(ctx, option.WithoutAuthentication())
	if err != nil {
		return nil, err
	}
	return &GoogleVerifier{svc: svc}, nil
}

func (g *GoogleVerifier) Verify(ctx context.Context, idToken string) (*ProviderClaims, error) {
	info, err := g.svc.Tokeninfo().IdToken(idToken).Context(ctx).Do()
	if err != nil {
		log.Printf("google tokeninfo call failed: %v", err)
		return nil, utils.ErrUnauthenticated
	}

	if info.Email == "" {
		return nil, utils.ErrUnauthenticated
	}

	return &ProviderClaims{
		Subject: info.UserId,
		Email:   info.Email,
	}, nil
}
