package response_models

import "falgoritma/internal/config"

type BalanceResponse struct {
	Credits int `json:"credits"`
}

type PurchaseResponse struct {
	Success    bool                 `json:"success"`
	Package    config.CreditPackage `json:"package"`
	NewBalance int                  `json:"new_balance"`
}
