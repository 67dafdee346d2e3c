package usecase

import (
	"context"
	"errors"
	"testing"

	"flower-shop-service/src/internal/entity"
	"flower-shop-service/src/internal/model"
	httpError "flower-shop-service/src/pkg/http-error"
	"flower-shop-service/src/pkg/log"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCatalogUseCase(t *testing.T) (*CatalogUseCase, *mockCatalogStore) {
	t.Helper()
	v := viper.New()
	v.Set("log.level", "ERROR")
	log.InitLogger(v)

	store := &mockCatalogStore{}
	// nil redis: every call goes straight to the store
	return NewCatalogUseCase(log.GetLogger(), store, nil), store
}

func TestListRegionsReturnsRows(t *testing.T) {
	uc, store := newTestCatalogUseCase(t)

	store.On("ListRegions", mock.Anything).Return([]entity.Region{
		{RegionID: 1, RegionName: "Central"},
		{RegionID: 2, RegionName: "North"},
	}, nil)

	result := uc.ListRegions(context.Background())
	require.NoError(t, result.Error)

	regions := result.Data.([]entity.Region)
	require.Len(t, regions, 2)
	assert.Equal(t, "Central", regions[0].RegionName)
}

func TestListBranchesPassesRegionFilter(t *testing.T) {
	uc, store := newTestCatalogUseCase(t)

	regionID := int64(3)
	store.On("ListBranches", mock.Anything, &regionID).Return([]entity.Branch{
		{BranchID: 5, BranchName: "Silom"},
	}, nil)

	result := uc.ListBranches(context.Background(), &model.BranchFilterRequest{RegionID: &regionID})
	require.NoError(t, result.Error)

	branches := result.Data.([]entity.Branch)
	require.Len(t, branches, 1)
	assert.Equal(t, "Silom", branches[0].BranchName)
}

func TestListBranchesWithoutFilterListsAll(t *testing.T) {
	uc, store := newTestCatalogUseCase(t)

	store.On("ListBranches", mock.Anything, (*int64)(nil)).Return([]entity.Branch{
		{BranchID: 5, BranchName: "Silom"},
		{BranchID: 6, BranchName: "Sathorn"},
	}, nil)

	result := uc.ListBranches(context.Background(), &model.BranchFilterRequest{})
	require.NoError(t, result.Error)
	assert.Len(t, result.Data.([]entity.Branch), 2)
}

func TestListVasesDefaultsProductType(t *testing.T) {
	uc, store := newTestCatalogUseCase(t)

	store.On("ListVases", mock.Anything, int64(defaultVaseProductTypeID)).Return([]entity.Product{
		{ProductID: 9, ProductName: "Round Vase"},
	}, nil)

	result := uc.ListVases(context.Background(), &model.VaseFilterRequest{})
	require.NoError(t, result.Error)

	store.AssertCalled(t, "ListVases", mock.Anything, int64(defaultVaseProductTypeID))
}

func TestListVasesHonorsExplicitProductType(t *testing.T) {
	uc, store := newTestCatalogUseCase(t)

	store.On("ListVases", mock.Anything, int64(7)).Return([]entity.Product{}, nil)

	result := uc.ListVases(context.Background(), &model.VaseFilterRequest{ProductTypeID: 7})
	require.NoError(t, result.Error)

	store.AssertCalled(t, "ListVases", mock.Anything, int64(7))
}

func TestCatalogLoadFailureReturnsInternalError(t *testing.T) {
	uc, store := newTestCatalogUseCase(t)

	store.On("ListFlowerTypes", mock.Anything).Return(nil, errors.New("connection refused"))

	result := uc.ListFlowerTypes(context.Background())
	require.Error(t, result.Error)

	var commonErr *httpError.CommonError
	require.ErrorAs(t, result.Error, &commonErr)
	assert.Equal(t, 500, commonErr.Code)
	assert.Contains(t, commonErr.Detail, "connection refused")
}
