package repository

import (
	"context"
	"errors"

	"flower-shop-service/src/internal/entity"
)

// ErrInsufficientStock is returned by ReserveStock when the branch tracks
// the product but cannot cover the requested quantity.
var ErrInsufficientStock = errors.New("insufficient stock")

// OrderStore is the order repository surface the usecases depend on.
type OrderStore interface {
	// Transact runs fn inside one database transaction. Any error from fn
	// rolls the whole transaction back; nothing partial survives.
	Transact(ctx context.Context, fn func(store OrderTxStore) error) error
	FindOrderByCode(ctx context.Context, code string) (*entity.OrderDetail, error)
	FindCartLinesByOrderID(ctx context.Context, orderID int64) ([]entity.OrderCartLine, error)
	UpdateOrderStatus(ctx context.Context, code, fromStatus, toStatus string) (int64, error)
	TransRefExists(ctx context.Context, transRef string) (bool, error)
}

// OrderTxStore exposes the per-statement operations of one order-submission
// transaction. Every method runs on the transaction that Transact opened.
type OrderTxStore interface {
	OrderCodeExists(ctx context.Context, code string) (bool, error)
	FindBranchIDByName(ctx context.Context, name string) (*int64, error)
	FindBranchProvinceID(ctx context.Context, branchID int64) (*int64, error)
	FindCustomerIDByPhone(ctx context.Context, phone string) (*int64, error)
	InsertCustomer(ctx context.Context, name, phone *string) (int64, error)
	InsertCustomerAddress(ctx context.Context, address *entity.CustomerAddress) error
	InsertOrder(ctx context.Context, order *entity.Order) (int64, error)
	InsertPayment(ctx context.Context, orderID, paymentMethodID int64) (int64, error)
	TransRefExists(ctx context.Context, transRef string) (bool, error)
	InsertPaymentEvidence(ctx context.Context, evidence *entity.PaymentEvidence) error
	InsertPaymentCardEvidence(ctx context.Context, evidence *entity.PaymentCardEvidence) error
	InsertCartLine(ctx context.Context, line *entity.CartLine) (int64, error)
	ReserveStock(ctx context.Context, branchID, productID int64, qty int) error
	InsertBouquetCustomization(ctx context.Context, shoppingCartID, bouquetStyleID int64) error
	InsertVaseCustomization(ctx context.Context, shoppingCartID, vaseColorID int64) error
	InsertFlowerDetail(ctx context.Context, shoppingCartID, flowerTypeID int64) error
}

// CatalogStore serves the storefront's read-only reference data.
type CatalogStore interface {
	ListRegions(ctx context.Context) ([]entity.Region, error)
	ListProvinces(ctx context.Context) ([]entity.Province, error)
	ListBranches(ctx context.Context, regionID *int64) ([]entity.Branch, error)
	ListVases(ctx context.Context, productTypeID int64) ([]entity.Product, error)
	ListVaseColors(ctx context.Context) ([]entity.VaseColor, error)
	ListFlowerTypes(ctx context.Context) ([]entity.FlowerType, error)
}
