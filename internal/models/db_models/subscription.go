package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionStatus string

const (
	SubStatusActive    SubscriptionStatus = "active"
	SubStatusCancelled SubscriptionStatus = "cancelled"
)

type Subscription struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index;not null"`

	PlanType string             `gorm:"index;not null"` // "weekly" | "monthly" | "yearly"
	Status   SubscriptionStatus `gorm:"index;not null"`
	StartsAt int64              `gorm:"not null"`
	EndsAt   int64              `gorm:"not null"`

	// Snapshot of the plan as sold (name, price, credit grant) for audit.
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
}
