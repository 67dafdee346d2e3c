package repository

import (
	"context"
	"database/sql"
	"errors"

	"flower-shop-service/src/internal/entity"

	"github.com/jmoiron/sqlx"
)

// orderTxStore binds every OrderTxStore operation to one open transaction.
type orderTxStore struct {
	tx *sqlx.Tx
}

var orderCodeExistsQuery = "SELECT 1 FROM `order` WHERE order_code = ? LIMIT 1"

func (s *orderTxStore) OrderCodeExists(ctx context.Context, code string) (bool, error) {
	var one int
	err := s.tx.GetContext(ctx, &one, orderCodeExistsQuery, code)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

var findBranchIDByNameQuery = "SELECT branch_id FROM branch WHERE branch_name = ? LIMIT 1"

func (s *orderTxStore) FindBranchIDByName(ctx context.Context, name string) (*int64, error) {
	var branchID int64
	err := s.tx.GetContext(ctx, &branchID, findBranchIDByNameQuery, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &branchID, nil
}

var findBranchProvinceIDQuery = "SELECT province_id FROM branch WHERE branch_id = ? LIMIT 1"

func (s *orderTxStore) FindBranchProvinceID(ctx context.Context, branchID int64) (*int64, error) {
	var provinceID int64
	err := s.tx.GetContext(ctx, &provinceID, findBranchProvinceIDQuery, branchID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &provinceID, nil
}

var findCustomerIDByPhoneQuery = "SELECT customer_id FROM customer WHERE phone = ? LIMIT 1"

func (s *orderTxStore) FindCustomerIDByPhone(ctx context.Context, phone string) (*int64, error) {
	var customerID int64
	err := s.tx.GetContext(ctx, &customerID, findCustomerIDByPhoneQuery, phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customerID, nil
}

var insertCustomerQuery = "INSERT INTO customer (customer_name, phone) VALUES (?, ?)"

func (s *orderTxStore) InsertCustomer(ctx context.Context, name, phone *string) (int64, error) {
	res, err := s.tx.ExecContext(ctx, insertCustomerQuery, name, phone)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

var insertCustomerAddressQuery = `
	INSERT INTO customer_address (customer_id, province_id, receiver_name, receiver_phone, receiver_address)
	VALUES (:customer_id, :province_id, :receiver_name, :receiver_phone, :receiver_address)
`

func (s *orderTxStore) InsertCustomerAddress(ctx context.Context, address *entity.CustomerAddress) error {
	res, err := s.tx.NamedExecContext(ctx, insertCustomerAddressQuery, address)
	if err != nil {
		return err
	}
	address.CustomerAddressID, err = res.LastInsertId()
	return err
}

var insertOrderQuery = `
	INSERT INTO ` + "`order`" + ` (branch_id, customer_id, customer_address_id, promotion_id, customer_note, order_code, order_status, total_amount, florist_photo_url, rider_photo_url)
	VALUES (:branch_id, :customer_id, :customer_address_id, :promotion_id, :customer_note, :order_code, :order_status, :total_amount, :florist_photo_url, :rider_photo_url)
`

func (s *orderTxStore) InsertOrder(ctx context.Context, order *entity.Order) (int64, error) {
	res, err := s.tx.NamedExecContext(ctx, insertOrderQuery, order)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

var insertPaymentQuery = "INSERT INTO payment (order_id, payment_method_id, paid_at) VALUES (?, ?, NOW())"

func (s *orderTxStore) InsertPayment(ctx context.Context, orderID, paymentMethodID int64) (int64, error) {
	res, err := s.tx.ExecContext(ctx, insertPaymentQuery, orderID, paymentMethodID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *orderTxStore) TransRefExists(ctx context.Context, transRef string) (bool, error) {
	return transRefExists(ctx, s.tx, transRef)
}

var insertPaymentEvidenceQuery = `
	INSERT INTO payment_evidence (payment_id, trans_ref, sender_name, sender_bank, trans_timestamp, raw_payload)
	VALUES (:payment_id, :trans_ref, :sender_name, :sender_bank, :trans_timestamp, :raw_payload)
`

func (s *orderTxStore) InsertPaymentEvidence(ctx context.Context, evidence *entity.PaymentEvidence) error {
	_, err := s.tx.NamedExecContext(ctx, insertPaymentEvidenceQuery, evidence)
	return err
}

var insertPaymentCardEvidenceQuery = "INSERT INTO payment_card_evidence (payment_id, masked_card_number) VALUES (?, ?)"

func (s *orderTxStore) InsertPaymentCardEvidence(ctx context.Context, evidence *entity.PaymentCardEvidence) error {
	_, err := s.tx.ExecContext(ctx, insertPaymentCardEvidenceQuery, evidence.PaymentID, evidence.MaskedCardNumber)
	return err
}

var insertCartLineQuery = "INSERT INTO shopping_cart (order_id, product_id, qty, price_total) VALUES (?, ?, ?, ?)"

func (s *orderTxStore) InsertCartLine(ctx context.Context, line *entity.CartLine) (int64, error) {
	res, err := s.tx.ExecContext(ctx, insertCartLineQuery, line.OrderID, line.ProductID, line.Qty, line.PriceTotal)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

var (
	selectStockForUpdateQuery = "SELECT stock FROM branch_stock WHERE branch_id = ? AND product_id = ? FOR UPDATE"
	// UPDATE assignments apply left to right, so the IF already sees the
	// decremented stock and must not subtract again.
	decrementStockQuery = `
		UPDATE branch_stock
		SET stock = stock - ?, is_available = IF(stock > 0, is_available, 0)
		WHERE branch_id = ? AND product_id = ? AND stock >= ?
	`
)

// ReserveStock decrements branch stock under a row lock. A missing stock row
// means the branch does not track the product and the reservation is a no-op.
func (s *orderTxStore) ReserveStock(ctx context.Context, branchID, productID int64, qty int) error {
	var stock int
	err := s.tx.GetContext(ctx, &stock, selectStockForUpdateQuery, branchID, productID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	if stock < qty {
		return ErrInsufficientStock
	}

	res, err := s.tx.ExecContext(ctx, decrementStockQuery, qty, branchID, productID, qty)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

var insertBouquetCustomizationQuery = "INSERT INTO bouquet_customization (shopping_cart_id, bouquet_style_id) VALUES (?, ?)"

func (s *orderTxStore) InsertBouquetCustomization(ctx context.Context, shoppingCartID, bouquetStyleID int64) error {
	_, err := s.tx.ExecContext(ctx, insertBouquetCustomizationQuery, shoppingCartID, bouquetStyleID)
	return err
}

var insertVaseCustomizationQuery = "INSERT INTO vase_customization (shopping_cart_id, vase_color_id) VALUES (?, ?)"

func (s *orderTxStore) InsertVaseCustomization(ctx context.Context, shoppingCartID, vaseColorID int64) error {
	_, err := s.tx.ExecContext(ctx, insertVaseCustomizationQuery, shoppingCartID, vaseColorID)
	return err
}

var insertFlowerDetailQuery = "INSERT INTO flower_detail (shopping_cart_id, flower_type_id) VALUES (?, ?)"

func (s *orderTxStore) InsertFlowerDetail(ctx context.Context, shoppingCartID, flowerTypeID int64) error {
	_, err := s.tx.ExecContext(ctx, insertFlowerDetailQuery, shoppingCartID, flowerTypeID)
	return err
}
