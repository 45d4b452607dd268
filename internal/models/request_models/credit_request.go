package request_models

type SimulatePurchaseRequest struct {
	PackageID string `json:"packageId" binding:"required"`
}
