package request_models

type OnboardingRequest struct {
	FullName           string `json:"fullName" binding:"required"`
	BirthDate          string `json:"birthDate" binding:"required,datetime=2006-01-02"`
	RelationshipStatus string `json:"relationshipStatus" binding:"required,oneof=Bekar Evli Platonik Diğer"`
	Profession         string `json:"profession" binding:"required"`
}

type UpdateProfileRequest struct {
	RelationshipStatus string `json:"relationshipStatus" binding:"omitempty,oneof=Bekar Evli Platonik Diğer"`
	Profession         string `json:"profession"`
}
