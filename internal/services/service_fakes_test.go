package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"falgoritma/internal/models/db_models"
	"falgoritma/pkg/federated"
	"falgoritma/pkg/utils"
)

// In-memory repository fakes. They honor the same atomicity contracts as the
// gorm implementations: the debit inside InsertWithDebit is guarded, so
// concurrent callers cannot overdraw an account.

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*db_models.Account
	seq      int64
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[uuid.UUID]*db_models.Account{}}
}

func (f *fakeAccountRepo) nextSeq() int64 {
	f.seq++
	return f.seq
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	account.CreatedAt = f.nextSeq()
	stored := *account
	f.accounts[account.ID] = &stored
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	account, ok := f.accounts[id]
	if !ok {
		return nil, nil
	}
	copied := *account
	return &copied, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, account := range f.accounts {
		if account.Email == email {
			copied := *account
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	account, ok := f.accounts[id]
	if !ok {
		return nil
	}

	for key, value := range fields {
		switch key {
		case "full_name":
			account.FullName = value.(string)
		case "birth_date":
			v := value.(int64)
			account.BirthDate = &v
		case "relationship_status":
			account.RelationshipStatus = value.(string)
		case "profession":
			account.Profession = value.(string)
		case "onboarding_completed":
			account.OnboardingCompleted = value.(bool)
		case "google_id":
			account.GoogleID = value.(string)
		case "apple_id":
			account.AppleID = value.(string)
		case "credits":
			switch v := value.(type) {
			case clause.Expr:
				account.Credits += v.Vars[0].(int)
			case int:
				account.Credits = v
			}
		}
	}
	return nil
}

func (f *fakeAccountRepo) CreditBalance(ctx context.Context, id uuid.UUID, amount int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	account, ok := f.accounts[id]
	if !ok {
		return 0, nil
	}
	account.Credits += amount
	return account.Credits, nil
}

func (f *fakeAccountRepo) creditsOf(id uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.accounts[id].Credits
}

type fakeFortuneRepo struct {
	mu       sync.Mutex
	accounts *fakeAccountRepo
	fortunes []*db_models.Fortune
}

func newFakeFortuneRepo(accounts *fakeAccountRepo) *fakeFortuneRepo {
	return &fakeFortuneRepo{accounts: accounts}
}

func (f *fakeFortuneRepo) InsertWithDebit(ctx context.Context, fortune *db_models.Fortune, cost int) error {
	f.accounts.mu.Lock()
	account, ok := f.accounts.accounts[fortune.AccountID]
	if !ok || account.Credits < cost {
		f.accounts.mu.Unlock()
		return utils.ErrInsufficientCredits
	}
	account.Credits -= cost
	seq := f.accounts.nextSeq()
	f.accounts.mu.Unlock()

	f.mu.Lock()
	defer f.mu.Unlock()
	if fortune.ID == uuid.Nil {
		fortune.ID = uuid.New()
	}
	fortune.CreatedAt = seq
	stored := *fortune
	f.fortunes = append(f.fortunes, &stored)
	return nil
}

func (f *fakeFortuneRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Fortune, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []db_models.Fortune
	for i := len(f.fortunes) - 1; i >= 0; i-- {
		if f.fortunes[i].AccountID == accountID {
			out = append(out, *f.fortunes[i])
		}
	}
	return out, nil
}

func (f *fakeFortuneRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.Fortune, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, fortune := range f.fortunes {
		if fortune.ID == id {
			copied := *fortune
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeFortuneRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.fortunes)
}

type fakeSubscriptionRepo struct {
	mu       sync.Mutex
	accounts *fakeAccountRepo
	subs     []*db_models.Subscription
}

func newFakeSubscriptionRepo(accounts *fakeAccountRepo) *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{accounts: accounts}
}

func (f *fakeSubscriptionRepo) InsertWithPremium(ctx context.Context, sub *db_models.Subscription, creditGrant int) error {
	f.mu.Lock()
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	stored := *sub
	f.subs = append(f.subs, &stored)
	f.mu.Unlock()

	f.accounts.mu.Lock()
	defer f.accounts.mu.Unlock()
	account := f.accounts.accounts[sub.AccountID]
	account.IsPremium = true
	endsAt := sub.EndsAt
	account.PremiumExpiresAt = &endsAt
	account.Credits += creditGrant
	return nil
}

func (f *fakeSubscriptionRepo) FindActive(ctx context.Context, accountID uuid.UUID, now int64) (*db_models.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := len(f.subs) - 1; i >= 0; i-- {
		sub := f.subs[i]
		if sub.AccountID == accountID && sub.Status == db_models.SubStatusActive && sub.EndsAt >= now {
			copied := *sub
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeSubscriptionRepo) CancelWithClear(ctx context.Context, sub *db_models.Subscription) error {
	f.mu.Lock()
	for _, stored := range f.subs {
		if stored.ID == sub.ID {
			stored.Status = db_models.SubStatusCancelled
		}
	}
	f.mu.Unlock()

	f.accounts.mu.Lock()
	defer f.accounts.mu.Unlock()
	account := f.accounts.accounts[sub.AccountID]
	account.IsPremium = false
	account.PremiumExpiresAt = nil
	return nil
}

type fakeLLMClient struct {
	mu    sync.Mutex
	text  string
	err   error
	delay time.Duration
	calls int
}

func (f *fakeLLMClient) GenerateInterpretation(ctx context.Context, photos []string, subject PersonAttributes) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type fakeVerifier struct {
	claims *federated.ProviderClaims
	err    error
}

func (f *fakeVerifier) Verify(ctx context.Context, token string) (*federated.ProviderClaims, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}
