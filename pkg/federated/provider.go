// Package federated verifies sign-in proofs issued by external identity
// providers and normalizes them into claims the auth service can consume.
package federated

import "context"

// ProviderClaims is what a successful provider verification yields. Subject is
// the provider-scoped stable user id, never our own account id.
type ProviderClaims struct {
	Subject string
	Email   string
	Name    string
}

type Verifier interface {
	Verify(ctx context.Context, token string) (*ProviderClaims, error)
}
