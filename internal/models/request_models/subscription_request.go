package request_models

type SubscribeRequest struct {
	PlanType string `json:"planType" binding:"required,oneof=weekly monthly yearly"`
}
