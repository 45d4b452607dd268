package response_models

// AccountResponse is the projection of an account returned to clients.
// The password hash has no field here.
type AccountResponse struct {
	ID                  string `json:"id"`
	Email               string `json:"email"`
	FullName            string `json:"full_name"`
	BirthDate           string `json:"birth_date,omitempty"` // YYYY-MM-DD
	RelationshipStatus  string `json:"relationship_status"`
	Profession          string `json:"profession"`
	Credits             int    `json:"credits"`
	IsPremium           bool   `json:"is_premium"`
	PremiumExpiresAt    *int64 `json:"premium_expires_at,omitempty"`
	OnboardingCompleted bool   `json:"onboarding_completed"`
	CreatedAt           int64  `json:"created_at"`
}

type AuthResponse struct {
	Token string          `json:"token"`
	User  AccountResponse `json:"user"`
}
