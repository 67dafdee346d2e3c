package usecase

import (
	"context"

	"flower-shop-service/src/internal/entity"
	"flower-shop-service/src/internal/repository"

	"github.com/stretchr/testify/mock"
)

// mockOrderStore runs the Transact callback against a mocked tx store, so
// tests can drive every statement of the submission transaction.
type mockOrderStore struct {
	mock.Mock
	tx             *mockOrderTxStore
	transactCalls  int
	transactFailed error
}

func (m *mockOrderStore) Transact(ctx context.Context, fn func(store repository.OrderTxStore) error) error {
	m.transactCalls++
	if m.transactFailed != nil {
		return m.transactFailed
	}
	return fn(m.tx)
}

func (m *mockOrderStore) FindOrderByCode(ctx context.Context, code string) (*entity.OrderDetail, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.OrderDetail), args.Error(1)
}

func (m *mockOrderStore) FindCartLinesByOrderID(ctx context.Context, orderID int64) ([]entity.OrderCartLine, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.OrderCartLine), args.Error(1)
}

func (m *mockOrderStore) UpdateOrderStatus(ctx context.Context, code, fromStatus, toStatus string) (int64, error) {
	args := m.Called(ctx, code, fromStatus, toStatus)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderStore) TransRefExists(ctx context.Context, transRef string) (bool, error) {
	args := m.Called(ctx, transRef)
	return args.Bool(0), args.Error(1)
}

type mockOrderTxStore struct {
	mock.Mock
}

func (m *mockOrderTxStore) OrderCodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *mockOrderTxStore) FindBranchIDByName(ctx context.Context, name string) (*int64, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int64), args.Error(1)
}

func (m *mockOrderTxStore) FindBranchProvinceID(ctx context.Context, branchID int64) (*int64, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int64), args.Error(1)
}

func (m *mockOrderTxStore) FindCustomerIDByPhone(ctx context.Context, phone string) (*int64, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int64), args.Error(1)
}

func (m *mockOrderTxStore) InsertCustomer(ctx context.Context, name, phone *string) (int64, error) {
	args := m.Called(ctx, name, phone)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderTxStore) InsertCustomerAddress(ctx context.Context, address *entity.CustomerAddress) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *mockOrderTxStore) InsertOrder(ctx context.Context, order *entity.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderTxStore) InsertPayment(ctx context.Context, orderID, paymentMethodID int64) (int64, error) {
	args := m.Called(ctx, orderID, paymentMethodID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderTxStore) TransRefExists(ctx context.Context, transRef string) (bool, error) {
	args := m.Called(ctx, transRef)
	return args.Bool(0), args.Error(1)
}

func (m *mockOrderTxStore) InsertPaymentEvidence(ctx context.Context, evidence *entity.PaymentEvidence) error {
	args := m.Called(ctx, evidence)
	return args.Error(0)
}

func (m *mockOrderTxStore) InsertPaymentCardEvidence(ctx context.Context, evidence *entity.PaymentCardEvidence) error {
	args := m.Called(ctx, evidence)
	return args.Error(0)
}

func (m *mockOrderTxStore) InsertCartLine(ctx context.Context, line *entity.CartLine) (int64, error) {
	args := m.Called(ctx, line)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderTxStore) ReserveStock(ctx context.Context, branchID, productID int64, qty int) error {
	args := m.Called(ctx, branchID, productID, qty)
	return args.Error(0)
}

func (m *mockOrderTxStore) InsertBouquetCustomization(ctx context.Context, shoppingCartID, bouquetStyleID int64) error {
	args := m.Called(ctx, shoppingCartID, bouquetStyleID)
	return args.Error(0)
}

func (m *mockOrderTxStore) InsertVaseCustomization(ctx context.Context, shoppingCartID, vaseColorID int64) error {
	args := m.Called(ctx, shoppingCartID, vaseColorID)
	return args.Error(0)
}

func (m *mockOrderTxStore) InsertFlowerDetail(ctx context.Context, shoppingCartID, flowerTypeID int64) error {
	args := m.Called(ctx, shoppingCartID, flowerTypeID)
	return args.Error(0)
}

type mockCatalogStore struct {
	mock.Mock
}

func (m *mockCatalogStore) ListRegions(ctx context.Context) ([]entity.Region, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Region), args.Error(1)
}

func (m *mockCatalogStore) ListProvinces(ctx context.Context) ([]entity.Province, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Province), args.Error(1)
}

func (m *mockCatalogStore) ListBranches(ctx context.Context, regionID *int64) ([]entity.Branch, error) {
	args := m.Called(ctx, regionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Branch), args.Error(1)
}

func (m *mockCatalogStore) ListVases(ctx context.Context, productTypeID int64) ([]entity.Product, error) {
	args := m.Called(ctx, productTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *mockCatalogStore) ListVaseColors(ctx context.Context) ([]entity.VaseColor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VaseColor), args.Error(1)
}

func (m *mockCatalogStore) ListFlowerTypes(ctx context.Context) ([]entity.FlowerType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.FlowerType), args.Error(1)
}
