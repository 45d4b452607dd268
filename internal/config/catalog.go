// Package config holds the static product data: purchasable credit packages,
// subscription plans and the interpretation prompt. Loaded once at process
// start, never mutated afterwards.
package config

type CreditPackage struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Credits int     `json:"credits"`
	PriceTL float64 `json:"price_tl"`
}

type SubscriptionPlan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	PlanType string   `json:"plan_type"` // "weekly" | "monthly" | "yearly"
	Price    float64  `json:"price"`
	Credits  int      `json:"credits"`
	Features []string `json:"features"`
}

// Catalog is the read-only lookup table over both product lists.
type Catalog struct {
	packages []CreditPackage
	plans    []SubscriptionPlan
}

func NewCatalog() *Catalog {
	return &Catalog{
		packages: []CreditPackage{
			{ID: "mini", Name: "Mini", Credits: 6, PriceTL: 39},
			{ID: "standart", Name: "Standart", Credits: 12, PriceTL: 69},
			{ID: "avantajli", Name: "Avantajlı", Credits: 18, PriceTL: 89},
			{ID: "power", Name: "Power", Credits: 30, PriceTL: 169},
		},
		plans: []SubscriptionPlan{
			{
				ID:       "weekly",
				Name:     "Haftalık Premium",
				PlanType: "weekly",
				Price:    29.99,
				Credits:  15,
				Features: []string{"Haftalık 15 kredi", "Öncelikli destek", "Reklamsız deneyim"},
			},
			{
				ID:       "monthly",
				Name:     "Aylık Premium",
				PlanType: "monthly",
				Price:    79.99,
				Credits:  50,
				Features: []string{"Aylık 50 kredi", "Öncelikli destek", "Reklamsız deneyim", "%20 tasarruf"},
			},
			{
				ID:       "yearly",
				Name:     "Yıllık Premium",
				PlanType: "yearly",
				Price:    599.99,
				Credits:  500,
				Features: []string{"Yıllık 500 kredi", "Öncelikli destek", "Reklamsız deneyim", "%40 tasarruf", "VIP rozet"},
			},
		},
	}
}

func (c *Catalog) Packages() []CreditPackage {
	out := make([]CreditPackage, len(c.packages))
	copy(out, c.packages)
	return out
}

func (c *Catalog) PackageByID(id string) (CreditPackage, bool) {
	for _, p := range c.packages {
		if p.ID == id {
			return p, true
		}
	}
	return CreditPackage{}, false
}

func (c *Catalog) Plans() []SubscriptionPlan {
	out := make([]SubscriptionPlan, len(c.plans))
	copy(out, c.plans)
	return out
}

func (c *Catalog) PlanByType(planType string) (SubscriptionPlan, bool) {
	for _, p := range c.plans {
		if p.PlanType == planType {
			return p, true
		}
	}
	return SubscriptionPlan{}, false
}
