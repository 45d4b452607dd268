package utils

import (
	"errors"
	"fmt"
)

var (
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAccountNotFound      = errors.New("account not found")
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrOnboardingCompleted  = errors.New("onboarding already completed")
	ErrInvalidBirthDate     = errors.New("invalid birth date")
	ErrInsufficientCredits  = errors.New("insufficient credits")
	ErrMissingGuestData     = errors.New("guest data required")
	ErrTooManyPhotos        = errors.New("too many photos")
	ErrFortuneNotFound      = errors.New("fortune not found")
	ErrFortuneForbidden     = errors.New("fortune belongs to another account")
	ErrInvalidPackage       = errors.New("invalid credit package")
	ErrInvalidPlan          = errors.New("invalid subscription plan")
	ErrSubscriptionExists   = errors.New("an active subscription already exists")
	ErrNoActiveSubscription = errors.New("no active subscription")
	ErrDatabaseError        = errors.New("database error")
)

type GenerationFailureKind string

const (
	GenerationProviderError GenerationFailureKind = "provider_error"
	GenerationEmptyResponse GenerationFailureKind = "empty_response"
	GenerationTimeout       GenerationFailureKind = "timeout"
)

// GenerationError is the tagged failure of the interpretation provider.
// Callers only ever see this type, never provider-specific payloads.
type GenerationError struct {
	Kind   GenerationFailureKind
	Status int // provider HTTP status, set for provider_error only
}

func (e *GenerationError) Error() string {
	if e.Kind == GenerationProviderError {
		return fmt.Sprintf("generation failed: %s (status %d)", e.Kind, e.Status)
	}
	return fmt.Sprintf("generation failed: %s", e.Kind)
}
