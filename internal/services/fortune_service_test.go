package services

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"falgoritma/internal/models/db_models"
	"falgoritma/internal/models/request_models"
	"falgoritma/pkg/utils"
)

func newFortuneFixture(credits int) (*fakeAccountRepo, *fakeFortuneRepo, *fakeLLMClient, FortuneServiceInterface, uuid.UUID) {
	accounts := newFakeAccountRepo()
	fortunes := newFakeFortuneRepo(accounts)
	llm := &fakeLLMClient{text: "☕ Genel Bakış\nFincanda büyük bir kuş figürü görüyorum."}

	account := &db_models.Account{Email: "ayse@example.com", FullName: "Ayşe Yılmaz", Credits: credits}
	_ = accounts.Insert(context.Background(), account)

	service := NewFortuneService(accounts, fortunes, llm)
	return accounts, fortunes, llm, service, account.ID
}

func selfFortuneRequest() request_models.CreateFortuneRequest {
	return request_models.CreateFortuneRequest{
		Photos:  []string{"cGhvdG8x"},
		ForSelf: true,
	}
}

func TestCreateFortune_DebitsExactlyCost(t *testing.T) {
	accounts, fortunes, _, service, accountID := newFortuneFixture(10)

	resp, err := service.CreateFortune(context.Background(), accountID, selfFortuneRequest())
	require.NoError(t, err)

	assert.Equal(t, 10-FortuneCost, accounts.creditsOf(accountID))
	assert.Equal(t, 1, fortunes.count())
	assert.True(t, resp.ForSelf)
	assert.NotEmpty(t, resp.Interpretation)
}

func TestCreateFortune_InsufficientCredits(t *testing.T) {
	accounts, fortunes, llm, service, accountID := newFortuneFixture(FortuneCost - 1)

	_, err := service.CreateFortune(context.Background(), accountID, selfFortuneRequest())
	assert.ErrorIs(t, err, utils.ErrInsufficientCredits)

	// Nothing moved, and the provider was never even called.
	assert.Equal(t, FortuneCost-1, accounts.creditsOf(accountID))
	assert.Equal(t, 0, fortunes.count())
	assert.Equal(t, 0, llm.calls)
}

func TestCreateFortune_GenerationFailureLeavesNoTrace(t *testing.T) {
	accounts, fortunes, llm, service, accountID := newFortuneFixture(10)
	llm.err = &utils.GenerationError{Kind: utils.GenerationTimeout}

	_, err := service.CreateFortune(context.Background(), accountID, selfFortuneRequest())

	var genErr *utils.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, utils.GenerationTimeout, genErr.Kind)

	assert.Equal(t, 10, accounts.creditsOf(accountID))
	assert.Equal(t, 0, fortunes.count())
}

func TestCreateFortune_GuestRequiresGuestData(t *testing.T) {
	_, _, _, service, accountID := newFortuneFixture(10)

	req := request_models.CreateFortuneRequest{
		Photos:  []string{"cGhvdG8x"},
		ForSelf: false,
	}

	_, err := service.CreateFortune(context.Background(), accountID, req)
	assert.ErrorIs(t, err, utils.ErrMissingGuestData)
}

func TestCreateFortune_GuestSnapshotStored(t *testing.T) {
	_, _, _, service, accountID := newFortuneFixture(10)

	req := request_models.CreateFortuneRequest{
		Photos:  []string{"cGhvdG8x", "cGhvdG8y"},
		ForSelf: false,
		GuestData: &request_models.GuestData{
			Name:               "Mehmet",
			Gender:             "Erkek",
			BirthDate:          "1985-03-20",
			RelationshipStatus: "Bekar",
			Profession:         "Avukat",
		},
	}

	resp, err := service.CreateFortune(context.Background(), accountID, req)
	require.NoError(t, err)

	assert.False(t, resp.ForSelf)
	assert.Equal(t, "Mehmet", resp.GuestName)
	assert.Equal(t, "1985-03-20", resp.GuestBirthDate)
	assert.Len(t, resp.Photos, 2)
}

func TestCreateFortune_TooManyPhotos(t *testing.T) {
	_, _, _, service, accountID := newFortuneFixture(10)

	req := selfFortuneRequest()
	req.Photos = []string{"a", "b", "c", "d", "e", "f"}

	_, err := service.CreateFortune(context.Background(), accountID, req)
	assert.ErrorIs(t, err, utils.ErrTooManyPhotos)
}

// Two concurrent requests against a balance that only covers one of them:
// both pass the pre-check (the generator call holds no lock), but the guarded
// debit lets exactly one commit.
func TestCreateFortune_ConcurrentDoubleSpend(t *testing.T) {
	accounts, fortunes, llm, service, accountID := newFortuneFixture(FortuneCost)
	llm.delay = 20 * time.Millisecond // keeps both requests in flight together

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.CreateFortune(context.Background(), accountID, selfFortuneRequest())
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, utils.ErrInsufficientCredits)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, fortunes.count())
	assert.Equal(t, 0, accounts.creditsOf(accountID))
}

func TestListFortunes_NewestFirstWithPreview(t *testing.T) {
	_, _, llm, service, accountID := newFortuneFixture(9)

	llm.text = strings.Repeat("ş", 150)
	_, err := service.CreateFortune(context.Background(), accountID, selfFortuneRequest())
	require.NoError(t, err)

	llm.text = "kısa yorum"
	_, err = service.CreateFortune(context.Background(), accountID, selfFortuneRequest())
	require.NoError(t, err)

	list, err := service.ListFortunes(context.Background(), accountID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Newest first.
	assert.Equal(t, "kısa yorum", list[0].Preview)

	// Preview cut at 100 runes, not bytes.
	assert.Equal(t, strings.Repeat("ş", 100)+"...", list[1].Preview)
}

func TestGetFortuneById_NotFoundVsForbidden(t *testing.T) {
	accounts, _, _, service, accountID := newFortuneFixture(10)

	_, err := service.GetFortuneById(context.Background(), accountID, uuid.New())
	assert.ErrorIs(t, err, utils.ErrFortuneNotFound)

	resp, err := service.CreateFortune(context.Background(), accountID, selfFortuneRequest())
	require.NoError(t, err)
	fortuneID := uuid.MustParse(resp.ID)

	other := &db_models.Account{Email: "other@example.com", Credits: 10}
	require.NoError(t, accounts.Insert(context.Background(), other))

	_, err = service.GetFortuneById(context.Background(), other.ID, fortuneID)
	assert.ErrorIs(t, err, utils.ErrFortuneForbidden)

	got, err := service.GetFortuneById(context.Background(), accountID, fortuneID)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, got.ID)
}
