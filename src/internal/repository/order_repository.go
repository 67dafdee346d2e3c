package repository

import (
	"context"
	"database/sql"
	"errors"

	"flower-shop-service/src/internal/entity"
	"flower-shop-service/src/pkg/databases/mysql"

	"github.com/jmoiron/sqlx"
)

type OrderRepository struct {
	DB mysql.DBInterface
}

func NewOrderRepository(db mysql.DBInterface) *OrderRepository {
	return &OrderRepository{
		DB: db,
	}
}

func (r *OrderRepository) Transact(ctx context.Context, fn func(store OrderTxStore) error) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&orderTxStore{tx: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

var findOrderByCodeQuery = `
	SELECT
		o.order_id,
		o.order_code,
		o.order_status,
		o.total_amount,
		o.customer_note,
		b.branch_name,
		ca.receiver_name,
		ca.receiver_phone,
		ca.receiver_address
	FROM ` + "`order`" + ` o
	LEFT JOIN branch b ON b.branch_id = o.branch_id
	LEFT JOIN customer_address ca ON ca.customer_address_id = o.customer_address_id
	WHERE o.order_code = ?
`

func (r *OrderRepository) FindOrderByCode(ctx context.Context, code string) (*entity.OrderDetail, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var detail entity.OrderDetail
	if err := db.GetContext(ctx, &detail, findOrderByCodeQuery, code); err != nil {
		return nil, err
	}
	return &detail, nil
}

var findCartLinesQuery = `
	SELECT
		sc.shopping_cart_id,
		sc.product_id,
		pr.product_name,
		pt.product_type_name,
		sc.qty,
		sc.price_total,
		GROUP_CONCAT(ft.flower_name ORDER BY ft.flower_name SEPARATOR ', ') AS flowers,
		vco.vase_color_name
	FROM shopping_cart sc
	JOIN product pr ON pr.product_id = sc.product_id
	JOIN product_type pt ON pt.product_type_id = pr.product_type_id
	LEFT JOIN flower_detail fd ON fd.shopping_cart_id = sc.shopping_cart_id
	LEFT JOIN flower_type ft ON ft.flower_type_id = fd.flower_type_id
	LEFT JOIN vase_customization vc ON vc.shopping_cart_id = sc.shopping_cart_id
	LEFT JOIN vase_color vco ON vco.vase_color_id = vc.vase_color_id
	WHERE sc.order_id = ?
	GROUP BY sc.shopping_cart_id, sc.product_id, pr.product_name, pt.product_type_name, sc.qty, sc.price_total, vco.vase_color_name
`

func (r *OrderRepository) FindCartLinesByOrderID(ctx context.Context, orderID int64) ([]entity.OrderCartLine, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var lines []entity.OrderCartLine
	if err := db.SelectContext(ctx, &lines, findCartLinesQuery, orderID); err != nil {
		return nil, err
	}
	return lines, nil
}

var updateOrderStatusQuery = "UPDATE `order` SET order_status = ?, updated_at = NOW() WHERE order_code = ? AND order_status = ?"

// UpdateOrderStatus moves an order from one status to another and reports
// affected rows, so callers can tell a stale transition from a missing order.
func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, code, fromStatus, toStatus string) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	res, err := db.ExecContext(ctx, updateOrderStatusQuery, toStatus, code, fromStatus)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

var transRefExistsQuery = "SELECT 1 FROM payment_evidence WHERE trans_ref = ? LIMIT 1"

func (r *OrderRepository) TransRefExists(ctx context.Context, transRef string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}
	return transRefExists(ctx, db, transRef)
}

func transRefExists(ctx context.Context, q sqlx.QueryerContext, transRef string) (bool, error) {
	var one int
	err := sqlx.GetContext(ctx, q, &one, transRefExistsQuery, transRef)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
