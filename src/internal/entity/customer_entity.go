package entity

import "time"

type Customer struct {
	CustomerID   int64     `db:"customer_id"`
	CustomerName *string   `db:"customer_name"`
	Phone        *string   `db:"phone"`
	CreatedAt    time.Time `db:"created_at"`
}

type CustomerAddress struct {
	CustomerAddressID int64   `db:"customer_address_id"`
	CustomerID        int64   `db:"customer_id"`
	ProvinceID        *int64  `db:"province_id"`
	ReceiverName      *string `db:"receiver_name"`
	ReceiverPhone     *string `db:"receiver_phone"`
	ReceiverAddress   *string `db:"receiver_address"`
}
