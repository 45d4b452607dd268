package response_models

type SubscriptionResponse struct {
	ID        string `json:"id"`
	PlanType  string `json:"plan_type"`
	Status    string `json:"status"`
	StartsAt  int64  `json:"starts_at"`
	EndsAt    int64  `json:"ends_at"`
	CreatedAt int64  `json:"created_at"`
}

type SubscribeResponse struct {
	Subscription SubscriptionResponse `json:"subscription"`
	Message      string               `json:"message"`
}

type SubscriptionStatusResponse struct {
	IsPremium          bool                  `json:"is_premium"`
	PremiumExpiresAt   *int64                `json:"premium_expires_at,omitempty"`
	Credits            int                   `json:"credits"`
	ActiveSubscription *SubscriptionResponse `json:"active_subscription,omitempty"`
}
