package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare-catalog/models"
	"petcare-catalog/repository"
	"petcare-catalog/utils"
)

func newCatalogFixture() (*CatalogService, *fakeServiceRepo, *fakeTypeRepo, models.ServiceType) {
	serviceRepo := newFakeServiceRepo()
	typeRepo := newFakeTypeRepo()
	haircut := typeRepo.add("Haircut", "haircut", uuid.New(), models.TypeStatusActive)
	return NewCatalogService(serviceRepo, typeRepo), serviceRepo, typeRepo, haircut
}

func price(value int64) *decimal.Decimal {
	d := decimal.NewFromInt(value)
	return &d
}

func TestServiceCreatePricingModes(t *testing.T) {
	tests := []struct {
		name       string
		price      *decimal.Decimal
		variations []VariationInput
		wantErr    bool
	}{
		{"flat price only", price(100), nil, false},
		{"single variation only", nil, []VariationInput{{Name: "Short hair", Price: decimal.NewFromInt(300)}}, false},
		{"price and variations", price(100), []VariationInput{{Name: "Short hair", Price: decimal.NewFromInt(300)}}, true},
		{"neither", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, haircut := newCatalogFixture()
			created, err := svc.Create(CreateServiceInput{
				OrganizationID: uuid.New(),
				Name:           "Dog haircut",
				TypeID:         haircut.ID,
				Price:          tt.price,
				Variations:     tt.variations,
			})
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, utils.ErrValidation, err.(*utils.AppError).Kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.variations), len(created.Variations))
			if tt.price != nil {
				require.True(t, created.Price.Valid)
				assert.True(t, created.Price.Decimal.Equal(*tt.price))
			} else {
				assert.False(t, created.Price.Valid)
			}
		})
	}
}

func TestServiceCreateTypeChecks(t *testing.T) {
	svc, _, typeRepo, _ := newCatalogFixture()
	pending := typeRepo.add("Spa", "spa", uuid.New(), models.TypeStatusPending)

	_, err := svc.Create(CreateServiceInput{
		OrganizationID: uuid.New(),
		Name:           "Dog spa",
		TypeID:         uuid.New(),
		Price:          price(100),
	})
	require.Error(t, err)
	assert.Equal(t, utils.ErrNotFound, err.(*utils.AppError).Kind)

	_, err = svc.Create(CreateServiceInput{
		OrganizationID: uuid.New(),
		Name:           "Dog spa",
		TypeID:         pending.ID,
		Price:          price(100),
	})
	require.Error(t, err)
	assert.Equal(t, utils.ErrValidation, err.(*utils.AppError).Kind)
}

func TestServiceCreateRejectsNegativePrices(t *testing.T) {
	svc, _, _, haircut := newCatalogFixture()
	negative := decimal.NewFromInt(-5)

	_, err := svc.Create(CreateServiceInput{
		OrganizationID: uuid.New(),
		Name:           "Dog haircut",
		TypeID:         haircut.ID,
		Price:          &negative,
	})
	require.Error(t, err)
	assert.Equal(t, utils.ErrValidation, err.(*utils.AppError).Kind)

	_, err = svc.Create(CreateServiceInput{
		OrganizationID: uuid.New(),
		Name:           "Dog haircut",
		TypeID:         haircut.ID,
		Variations:     []VariationInput{{Name: "Short hair", Price: negative}},
	})
	require.Error(t, err)
	assert.Equal(t, utils.ErrValidation, err.(*utils.AppError).Kind)
}

func TestServiceListPagination(t *testing.T) {
	svc, _, _, haircut := newCatalogFixture()
	organizationID := uuid.New()

	for i := 0; i < 15; i++ {
		_, err := svc.Create(CreateServiceInput{
			OrganizationID: organizationID,
			Name:           fmt.Sprintf("Service %02d", i),
			TypeID:         haircut.ID,
			Price:          price(100),
		})
		require.NoError(t, err)
	}

	result, err := svc.List(repository.ServiceFilter{
		OrganizationID: &organizationID,
		Page:           2,
		Limit:          10,
	})
	require.NoError(t, err)
	assert.Len(t, result.Data, 5)
	assert.Equal(t, int64(15), result.Total)
	assert.Equal(t, 2, result.TotalPages)
	assert.False(t, result.HasNextPage)
	assert.True(t, result.HasPreviousPage)

	first, err := svc.List(repository.ServiceFilter{OrganizationID: &organizationID, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, first.Data, 10)
	assert.True(t, first.HasNextPage)
	assert.False(t, first.HasPreviousPage)
	// Newest first.
	assert.Equal(t, "Service 14", first.Data[0].Name)
}

func TestServiceListDefaults(t *testing.T) {
	svc, _, _, _ := newCatalogFixture()

	result, err := svc.List(repository.ServiceFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 20, result.Limit)
	assert.Equal(t, 0, result.TotalPages)
	assert.False(t, result.HasNextPage)
	assert.False(t, result.HasPreviousPage)
}

func TestServiceUpdateAppendsVariationAfterClearingPrice(t *testing.T) {
	svc, _, _, haircut := newCatalogFixture()

	created, err := svc.Create(CreateServiceInput{
		OrganizationID: uuid.New(),
		Name:           "Dog haircut",
		TypeID:         haircut.ID,
		Price:          price(500),
	})
	require.NoError(t, err)

	name := "Long hair"
	variationPrice := price(700)
	updated, err := svc.Update(created.ID, UpdateServiceInput{
		Price: models.OptionalDecimal{Present: true, Value: nil},
		Variations: []UpdateVariationInput{
			{Name: &name, Price: variationPrice},
		},
	})
	require.NoError(t, err)
	assert.False(t, updated.Price.Valid)
	require.Len(t, updated.Variations, 1)
	assert.Equal(t, "Long hair", updated.Variations[0].Name)
	assert.True(t, updated.Variations[0].Price.Equal(*variationPrice))
}

func TestServiceUpdateKeepsPricingInvariant(t *testing.T) {
	svc, _, _, haircut := newCatalogFixture()

	created, err := svc.Create(CreateServiceInput{
		OrganizationID: uuid.New(),
		Name:           "Dog haircut",
		TypeID:         haircut.ID,
		Price:          price(500),
	})
	require.NoError(t, err)

	// Appending a variation while the flat price stays set must fail.
	name := "Long hair"
	_, err = svc.Update(created.ID, UpdateServiceInput{
		Variations: []UpdateVariationInput{{Name: &name, Price: price(700)}},
	})
	require.Error(t, err)
	assert.Equal(t, utils.ErrValidation, err.(*utils.AppError).Kind)

	// Clearing the price without supplying any variation must fail too.
	_, err = svc.Update(created.ID, UpdateServiceInput{
		Price: models.OptionalDecimal{Present: true, Value: nil},
	})
	require.Error(t, err)
	assert.Equal(t, utils.ErrValidation, err.(*utils.AppError).Kind)

	// The rejected updates left the service untouched.
	current, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.True(t, current.Price.Valid)
	assert.Empty(t, current.Variations)
}

func TestServiceUpdateVariationReconciliation(t *testing.T) {
	svc, _, _, haircut := newCatalogFixture()

	created, err := svc.Create(CreateServiceInput{
		OrganizationID: uuid.New(),
		Name:           "Dog haircut",
		TypeID:         haircut.ID,
		Variations: []VariationInput{
			{Name: "Short hair", Price: decimal.NewFromInt(300)},
			{Name: "Long hair", Price: decimal.NewFromInt(700)},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Variations, 2)
	short, long := created.Variations[0], created.Variations[1]

	// One call deletes one variation, renames another, and adds a third.
	renamed := "Short coat"
	extra := "Double coat"
	updated, err := svc.Update(created.ID, UpdateServiceInput{
		DeleteVariationIDs: []uuid.UUID{long.ID},
		Variations: []UpdateVariationInput{
			{ID: &short.ID, Name: &renamed},
			{Name: &extra, Price: price(900)},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.Variations, 2)

	names := []string{updated.Variations[0].Name, updated.Variations[1].Name}
	assert.Contains(t, names, "Short coat")
	assert.Contains(t, names, "Double coat")
	// The renamed variation keeps its price.
	for _, v := range updated.Variations {
		if v.ID == short.ID {
			assert.True(t, v.Price.Equal(decimal.NewFromInt(300)))
		}
	}
}

func TestServiceUpdateDeleteIgnoresForeignVariationIDs(t *testing.T) {
	svc, _, _, haircut := newCatalogFixture()

	created, err := svc.Create(CreateServiceInput{
		OrganizationID: uuid.New(),
		Name:           "Dog haircut",
		TypeID:         haircut.ID,
		Variations:     []VariationInput{{Name: "Short hair", Price: decimal.NewFromInt(300)}},
	})
	require.NoError(t, err)

	// Unknown ids in the delete list are ignored; the update would otherwise
	// leave the service without any pricing mode and be rejected.
	updated, err := svc.Update(created.ID, UpdateServiceInput{
		DeleteVariationIDs: []uuid.UUID{uuid.New()},
	})
	require.NoError(t, err)
	assert.Len(t, updated.Variations, 1)
}

func TestServiceUpdateNewVariationRequiresNameAndPrice(t *testing.T) {
	svc, _, _, haircut := newCatalogFixture()

	created, err := svc.Create(CreateServiceInput{
		OrganizationID: uuid.New(),
		Name:           "Dog haircut",
		TypeID:         haircut.ID,
		Price:          price(500),
	})
	require.NoError(t, err)

	name := "Long hair"
	_, err = svc.Update(created.ID, UpdateServiceInput{
		Variations: []UpdateVariationInput{{Name: &name}},
	})
	require.Error(t, err)
	assert.Equal(t, utils.ErrValidation, err.(*utils.AppError).Kind)
}

func TestServiceUpdateRevalidatesType(t *testing.T) {
	svc, _, typeRepo, haircut := newCatalogFixture()
	rejected := typeRepo.add("Spa", "spa", uuid.New(), models.TypeStatusRejected)

	created, err := svc.Create(CreateServiceInput{
		OrganizationID: uuid.New(),
		Name:           "Dog haircut",
		TypeID:         haircut.ID,
		Price:          price(500),
	})
	require.NoError(t, err)

	_, err = svc.Update(created.ID, UpdateServiceInput{TypeID: &rejected.ID})
	require.Error(t, err)
	assert.Equal(t, utils.ErrValidation, err.(*utils.AppError).Kind)

	missing := uuid.New()
	_, err = svc.Update(created.ID, UpdateServiceInput{TypeID: &missing})
	require.Error(t, err)
	assert.Equal(t, utils.ErrNotFound, err.(*utils.AppError).Kind)
}

func TestServiceDelete(t *testing.T) {
	svc, _, _, haircut := newCatalogFixture()

	created, err := svc.Create(CreateServiceInput{
		OrganizationID: uuid.New(),
		Name:           "Dog haircut",
		TypeID:         haircut.ID,
		Price:          price(500),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	err = svc.Delete(created.ID)
	require.Error(t, err)
	assert.Equal(t, utils.ErrNotFound, err.(*utils.AppError).Kind)
}
