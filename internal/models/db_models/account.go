package db_models

type Account struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string // empty for federated-only accounts
	GoogleID     string `gorm:"index"`
	AppleID      string `gorm:"index"`

	FullName           string
	BirthDate          *int64 // unix seconds, midnight of the birth date
	RelationshipStatus string
	Profession         string

	Credits             int  `gorm:"not null;default:0"`
	IsPremium           bool `gorm:"not null;default:false"`
	PremiumExpiresAt    *int64
	OnboardingCompleted bool `gorm:"not null;default:false"`

	Fortunes      []Fortune
	Subscriptions []Subscription
}
