package request_models

type GuestData struct {
	Name               string `json:"name" binding:"required"`
	Gender             string `json:"gender" binding:"required"`
	BirthDate          string `json:"birthDate" binding:"required"`
	RelationshipStatus string `json:"relationshipStatus" binding:"required"`
	Profession         string `json:"profession" binding:"required"`
}

type CreateFortuneRequest struct {
	// Base64 encoded photos, at most 5.
	Photos    []string   `json:"photos" binding:"required,min=1,max=5"`
	ForSelf   bool       `json:"forSelf"`
	GuestData *GuestData `json:"guestData" binding:"omitempty"`
}
