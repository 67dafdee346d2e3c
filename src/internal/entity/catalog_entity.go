package entity

type Region struct {
	RegionID   int64  `db:"region_id"`
	RegionName string `db:"region_name"`
}

type Province struct {
	ProvinceID   int64  `db:"province_id"`
	ProvinceName string `db:"province_name"`
	RegionID     int64  `db:"region_id"`
}

type Branch struct {
	BranchID     int64  `db:"branch_id"`
	BranchName   string `db:"branch_name"`
	ProvinceName string `db:"province_name"`
	RegionID     int64  `db:"region_id"`
	RegionName   string `db:"region_name"`
}

type Product struct {
	ProductID     int64   `db:"product_id"`
	ProductName   string  `db:"product_name"`
	ProductPrice  float64 `db:"product_price"`
	ProductTypeID int64   `db:"product_type_id"`
}

type VaseColor struct {
	VaseColorID   int64  `db:"vase_color_id"`
	VaseColorName string `db:"vase_color_name"`
	Hex           string `db:"hex"`
}

type FlowerType struct {
	FlowerTypeID int64  `db:"flower_type_id"`
	FlowerName   string `db:"flower_name"`
}
