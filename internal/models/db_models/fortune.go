package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Fortune is immutable once created and readable only by its owner.
// Guest fields are a snapshot taken at creation time; for self fortunes they
// stay empty and the owner's profile at that moment was used instead.
type Fortune struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index;not null"`

	Photos  pq.StringArray `gorm:"type:text[]"` // base64 payloads, at most 5
	ForSelf bool           `gorm:"not null"`

	GuestName               string
	GuestGender             string
	GuestBirthDate          string // kept verbatim as submitted (YYYY-MM-DD)
	GuestRelationshipStatus string
	GuestProfession         string

	Interpretation string `gorm:"type:text;not null"`

	Account Account `gorm:"foreignKey:AccountID"`
}
