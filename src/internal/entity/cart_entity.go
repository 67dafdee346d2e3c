package entity

type CartLine struct {
	ShoppingCartID int64   `db:"shopping_cart_id"`
	OrderID        int64   `db:"order_id"`
	ProductID      int64   `db:"product_id"`
	Qty            int     `db:"qty"`
	PriceTotal     float64 `db:"price_total"`
}

type BouquetCustomization struct {
	BouquetCustomizationID int64 `db:"bouquet_customization_id"`
	ShoppingCartID         int64 `db:"shopping_cart_id"`
	BouquetStyleID         int64 `db:"bouquet_style_id"`
}

type VaseCustomization struct {
	VaseCustomizationID int64 `db:"vase_customization_id"`
	ShoppingCartID      int64 `db:"shopping_cart_id"`
	VaseColorID         int64 `db:"vase_color_id"`
}

type FlowerDetail struct {
	FlowerDetailID int64 `db:"flower_detail_id"`
	ShoppingCartID int64 `db:"shopping_cart_id"`
	FlowerTypeID   int64 `db:"flower_type_id"`
}

// BranchStock tracks per-branch product stock. IsAvailable flips to false
// when stock hits zero.
type BranchStock struct {
	BranchID    int64 `db:"branch_id"`
	ProductID   int64 `db:"product_id"`
	Stock       int   `db:"stock"`
	IsAvailable bool  `db:"is_available"`
}
