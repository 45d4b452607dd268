package response_models

type FortuneResponse struct {
	ID                      string   `json:"id"`
	CreatedAt               int64    `json:"created_at"`
	Photos                  []string `json:"photos"`
	ForSelf                 bool     `json:"for_self"`
	GuestName               string   `json:"guest_name,omitempty"`
	GuestGender             string   `json:"guest_gender,omitempty"`
	GuestBirthDate          string   `json:"guest_birth_date,omitempty"`
	GuestRelationshipStatus string   `json:"guest_relationship_status,omitempty"`
	GuestProfession         string   `json:"guest_profession,omitempty"`
	Interpretation          string   `json:"interpretation"`
}

type FortuneSummaryResponse struct {
	ID        string `json:"id"`
	CreatedAt int64  `json:"created_at"`
	ForSelf   bool   `json:"for_self"`
	GuestName string `json:"guest_name,omitempty"`
	Preview   string `json:"preview"`
}
