package models_test

import (
	"testing"

	"github.com/duobudget/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCreateEnvelopeDefaults() {
	result, err := models.CreateEnvelope(models.EnvelopeCreate{Name: "Groceries"}, testUsers)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), result.Envelopes, 1)

	envelope := result.Envelopes[0]
	assert.False(suite.T(), result.Reactivated)
	assert.Equal(suite.T(), "Groceries", envelope.Name)
	assert.Equal(suite.T(), models.DefaultCategory, envelope.Category)
	assert.Nil(suite.T(), envelope.UserID)
	assert.False(suite.T(), envelope.IsIndividual)
	assert.False(suite.T(), envelope.Rollover)
	assert.True(suite.T(), envelope.Allocation.IsZero())
	assert.True(suite.T(), envelope.Balance.IsZero())
}

func (suite *TestSuiteStandard) TestCreateEnvelopeAttributes() {
	category := "transport"
	allocation := decimal.NewFromFloat(120.5)
	rollover := true

	result, err := models.CreateEnvelope(models.EnvelopeCreate{
		Name:       "Fuel",
		Category:   &category,
		Allocation: &allocation,
		Rollover:   &rollover,
	}, testUsers)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), result.Envelopes, 1)

	envelope := result.Envelopes[0]
	assert.Equal(suite.T(), "transport", envelope.Category)
	assert.True(suite.T(), envelope.Rollover)
	assert.True(suite.T(), envelope.Allocation.Equal(allocation))
	assert.True(suite.T(), envelope.Balance.Equal(allocation), "balance starts at the allocation")
}

func (suite *TestSuiteStandard) TestCreateEnvelopeNegativeAllocation() {
	allocation := decimal.NewFromFloat(-10)

	_, err := models.CreateEnvelope(models.EnvelopeCreate{Name: "Broken", Allocation: &allocation}, testUsers)
	assert.ErrorIs(suite.T(), err, models.ErrInvalidAmount)
}

func (suite *TestSuiteStandard) TestCreateEnvelopeIndividual() {
	allocation := decimal.NewFromFloat(50)

	result, err := models.CreateEnvelope(models.EnvelopeCreate{
		Name:         "Hobby",
		Allocation:   &allocation,
		IsIndividual: true,
	}, testUsers)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), result.Envelopes, 2, "an individual envelope is a pair of rows")

	for i, envelope := range result.Envelopes {
		require.NotNil(suite.T(), envelope.UserID)
		assert.Equal(suite.T(), testUsers[i], *envelope.UserID)
		assert.True(suite.T(), envelope.IsIndividual)
		assert.True(suite.T(), envelope.Balance.Equal(allocation))
	}
}

func (suite *TestSuiteStandard) TestCreateEnvelopeNameInUse() {
	_, err := models.CreateEnvelope(models.EnvelopeCreate{Name: "Rent"}, testUsers)
	require.NoError(suite.T(), err)

	tests := []struct {
		name       string
		create     models.EnvelopeCreate
		individual bool
	}{
		{"same shared name", models.EnvelopeCreate{Name: "Rent"}, false},
		{"same name as individual", models.EnvelopeCreate{Name: "Rent", IsIndividual: true}, true},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := models.CreateEnvelope(tt.create, testUsers)
			assert.ErrorIs(t, err, models.ErrEnvelopeNameInUse)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateEnvelopeReactivate() {
	allocation := decimal.NewFromFloat(100)
	category := "fun"

	_, err := models.CreateEnvelope(models.EnvelopeCreate{
		Name:       "Cinema",
		Category:   &category,
		Allocation: &allocation,
	}, testUsers)
	require.NoError(suite.T(), err)

	_, err = models.SoftDeleteEnvelope("Cinema", testUsers[0])
	require.NoError(suite.T(), err)

	// Reactivate with a new allocation, the category is omitted and must
	// survive from the deleted row.
	newAllocation := decimal.NewFromFloat(75)
	result, err := models.CreateEnvelope(models.EnvelopeCreate{
		Name:       "Cinema",
		Allocation: &newAllocation,
	}, testUsers)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), result.Envelopes, 1)

	envelope := result.Envelopes[0]
	assert.True(suite.T(), result.Reactivated)
	assert.False(suite.T(), envelope.IsDeleted)
	assert.Equal(suite.T(), "fun", envelope.Category)
	assert.True(suite.T(), envelope.Allocation.Equal(newAllocation))
	assert.True(suite.T(), envelope.Balance.Equal(newAllocation), "balance starts over at the effective allocation")
}

func (suite *TestSuiteStandard) TestCreateEnvelopeReactivateTwin() {
	allocation := decimal.NewFromFloat(40)

	created, err := models.CreateEnvelope(models.EnvelopeCreate{
		Name:         "Clothes",
		Allocation:   &allocation,
		IsIndividual: true,
	}, testUsers)
	require.NoError(suite.T(), err)

	// bob spends, then alice deletes her instance
	_, err = models.RecordTransaction(created.Envelopes[1].ID, decimal.NewFromFloat(15), models.TransactionTypeSpend, testUsers[1], "jeans", nil)
	require.NoError(suite.T(), err)

	_, err = models.SoftDeleteEnvelope("Clothes", testUsers[0])
	require.NoError(suite.T(), err)

	result, err := models.CreateEnvelope(models.EnvelopeCreate{Name: "Clothes"}, testUsers)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), result.Envelopes, 2)
	assert.True(suite.T(), result.Reactivated)

	// alice's instance is back at its allocation, bob's was never touched
	alice, err := models.ResolveEnvelope("Clothes", testUsers[0])
	require.NoError(suite.T(), err)
	assert.True(suite.T(), alice.Balance.Equal(allocation))

	bob, err := models.ResolveEnvelope("Clothes", testUsers[1])
	require.NoError(suite.T(), err)
	assert.True(suite.T(), bob.Balance.Equal(decimal.NewFromFloat(25)), "balance is %s", bob.Balance)
}

func (suite *TestSuiteStandard) TestCreateEnvelopeStoredTypeWins() {
	_, err := models.CreateEnvelope(models.EnvelopeCreate{Name: "Internet"}, testUsers)
	require.NoError(suite.T(), err)

	_, err = models.SoftDeleteEnvelope("Internet", testUsers[0])
	require.NoError(suite.T(), err)

	// Asking for an individual envelope under a name that already exists
	// as shared reactivates the shared one.
	result, err := models.CreateEnvelope(models.EnvelopeCreate{Name: "Internet", IsIndividual: true}, testUsers)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), result.Envelopes, 1)
	assert.False(suite.T(), result.Envelopes[0].IsIndividual)
	assert.Nil(suite.T(), result.Envelopes[0].UserID)
}

func (suite *TestSuiteStandard) TestResolveEnvelope() {
	_, err := models.CreateEnvelope(models.EnvelopeCreate{Name: "Household"}, testUsers)
	require.NoError(suite.T(), err)

	_, err = models.CreateEnvelope(models.EnvelopeCreate{Name: "Pocket Money", IsIndividual: true}, testUsers)
	require.NoError(suite.T(), err)

	shared, err := models.ResolveEnvelope("Household", testUsers[1])
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), shared.UserID)

	for _, user := range testUsers {
		own, err := models.ResolveEnvelope("Pocket Money", user)
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), own.UserID)
		assert.Equal(suite.T(), user, *own.UserID)
	}
}

func (suite *TestSuiteStandard) TestResolveEnvelopeNotFound() {
	suite.createTestEnvelope(models.Envelope{Name: "Gone", IsDeleted: true})

	tests := []string{"Gone", "NeverExisted"}
	for _, name := range tests {
		suite.T().Run(name, func(t *testing.T) {
			_, err := models.ResolveEnvelope(name, testUsers[0])
			assert.ErrorIs(t, err, models.ErrResourceNotFound)
		})
	}
}

func (suite *TestSuiteStandard) TestSoftDeleteEnvelope() {
	_, err := models.CreateEnvelope(models.EnvelopeCreate{Name: "Streaming"}, testUsers)
	require.NoError(suite.T(), err)

	deleted, err := models.SoftDeleteEnvelope("Streaming", testUsers[1])
	require.NoError(suite.T(), err)
	assert.True(suite.T(), deleted.IsDeleted)

	_, err = models.ResolveEnvelope("Streaming", testUsers[1])
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	_, err = models.SoftDeleteEnvelope("Streaming", testUsers[1])
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound, "deleting twice reports not found")
}

func (suite *TestSuiteStandard) TestSoftDeleteEnvelopeOwnInstanceOnly() {
	_, err := models.CreateEnvelope(models.EnvelopeCreate{Name: "Games", IsIndividual: true}, testUsers)
	require.NoError(suite.T(), err)

	_, err = models.SoftDeleteEnvelope("Games", testUsers[0])
	require.NoError(suite.T(), err)

	_, err = models.ResolveEnvelope("Games", testUsers[0])
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	// the partner's instance stays active
	_, err = models.ResolveEnvelope("Games", testUsers[1])
	assert.NoError(suite.T(), err)
}

func (suite *TestSuiteStandard) TestSoftDeleteEnvelopeByID() {
	envelope := suite.createTestEnvelope(models.Envelope{Name: "Coffee"})

	deleted, err := models.SoftDeleteEnvelopeByID(envelope.ID)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), deleted.IsDeleted)

	_, err = models.SoftDeleteEnvelopeByID(envelope.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	_, err = models.SoftDeleteEnvelopeByID(uuid.New())
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestActiveEnvelopes() {
	suite.createTestEnvelope(models.Envelope{Name: "Banana"})
	suite.createTestEnvelope(models.Envelope{Name: "Apple"})
	suite.createTestEnvelope(models.Envelope{Name: "Deleted", IsDeleted: true})

	_, err := models.CreateEnvelope(models.EnvelopeCreate{Name: "Cherry", IsIndividual: true}, testUsers)
	require.NoError(suite.T(), err)

	envelopes, err := models.ActiveEnvelopes()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), envelopes, 4)

	assert.Equal(suite.T(), "Apple", envelopes[0].Name)
	assert.Equal(suite.T(), "Banana", envelopes[1].Name)
	assert.Equal(suite.T(), "Cherry", envelopes[2].Name)
	assert.Equal(suite.T(), testUsers[0], *envelopes[2].UserID)
	assert.Equal(suite.T(), "Cherry", envelopes[3].Name)
	assert.Equal(suite.T(), testUsers[1], *envelopes[3].UserID)
}

func (suite *TestSuiteStandard) TestEnvelopeCategories() {
	suite.createTestEnvelope(models.Envelope{Name: "A", Category: "groceries"})
	suite.createTestEnvelope(models.Envelope{Name: "B", Category: "fun"})
	suite.createTestEnvelope(models.Envelope{Name: "C", Category: "groceries"})
	suite.createTestEnvelope(models.Envelope{Name: "D", Category: "hidden", IsDeleted: true})

	categories, err := models.EnvelopeCategories()
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"fun", "groceries"}, categories)
}

func (suite *TestSuiteStandard) TestEnvelopeNameNormalized() {
	// "Café" typed on a keyboard that produces the decomposed form
	result, err := models.CreateEnvelope(models.EnvelopeCreate{Name: "  Café "}, testUsers)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Café", result.Envelopes[0].Name)

	_, err = models.ResolveEnvelope("Café", testUsers[0])
	assert.NoError(suite.T(), err, "the composed form finds the envelope")
}

func (suite *TestSuiteStandard) TestEnvelopeUniqueIndexes() {
	user := testUsers[0]

	suite.createTestEnvelope(models.Envelope{Name: "Shared"})
	err := models.DB.Create(&models.Envelope{Name: "Shared", Category: models.DefaultCategory}).Error
	assert.ErrorIs(suite.T(), err, models.ErrEnvelopeNameInUse)

	suite.createTestEnvelope(models.Envelope{Name: "Own", UserID: &user, IsIndividual: true})
	err = models.DB.Create(&models.Envelope{Name: "Own", Category: models.DefaultCategory, UserID: &user}).Error
	assert.ErrorIs(suite.T(), err, models.ErrEnvelopeNameInUse)

	// the same name for the other user is allowed
	other := testUsers[1]
	err = models.DB.Create(&models.Envelope{Name: "Own", Category: models.DefaultCategory, UserID: &other}).Error
	assert.NoError(suite.T(), err)
}

func (suite *TestSuiteStandard) TestEnvelopesByIDs() {
	first := suite.createTestEnvelope(models.Envelope{})
	second := suite.createTestEnvelope(models.Envelope{IsDeleted: true})

	byID, err := models.EnvelopesByIDs([]uuid.UUID{first.ID, second.ID, uuid.New()})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), byID, 2)
	assert.Equal(suite.T(), first.Name, byID[first.ID].Name)
	assert.True(suite.T(), byID[second.ID].IsDeleted)
}
