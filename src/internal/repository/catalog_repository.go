package repository

import (
	"context"

	"flower-shop-service/src/internal/entity"
	"flower-shop-service/src/pkg/databases/mysql"
)

type CatalogRepository struct {
	DB mysql.DBInterface
}

func NewCatalogRepository(db mysql.DBInterface) *CatalogRepository {
	return &CatalogRepository{
		DB: db,
	}
}

var listRegionsQuery = "SELECT region_id, region_name FROM region ORDER BY region_name"

func (r *CatalogRepository) ListRegions(ctx context.Context) ([]entity.Region, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var regions []entity.Region
	if err := db.SelectContext(ctx, &regions, listRegionsQuery); err != nil {
		return nil, err
	}
	return regions, nil
}

var listProvincesQuery = "SELECT province_id, province_name, region_id FROM province ORDER BY province_name"

func (r *CatalogRepository) ListProvinces(ctx context.Context) ([]entity.Province, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var provinces []entity.Province
	if err := db.SelectContext(ctx, &provinces, listProvincesQuery); err != nil {
		return nil, err
	}
	return provinces, nil
}

var listBranchesQuery = `
	SELECT b.branch_id, b.branch_name, p.province_name, r.region_id, r.region_name
	FROM branch b
	JOIN province p ON b.province_id = p.province_id
	JOIN region r ON p.region_id = r.region_id
`

func (r *CatalogRepository) ListBranches(ctx context.Context, regionID *int64) ([]entity.Branch, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := listBranchesQuery
	args := []interface{}{}
	if regionID != nil {
		query += " WHERE r.region_id = ?"
		args = append(args, *regionID)
	}
	query += " ORDER BY b.branch_name"

	var branches []entity.Branch
	if err := db.SelectContext(ctx, &branches, query, args...); err != nil {
		return nil, err
	}
	return branches, nil
}

var listVasesQuery = `
	SELECT product_id, product_name, product_price, product_type_id
	FROM product
	WHERE product_type_id = ?
	ORDER BY product_name
`

func (r *CatalogRepository) ListVases(ctx context.Context, productTypeID int64) ([]entity.Product, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var products []entity.Product
	if err := db.SelectContext(ctx, &products, listVasesQuery, productTypeID); err != nil {
		return nil, err
	}
	return products, nil
}

var listVaseColorsQuery = "SELECT vase_color_id, vase_color_name, hex FROM vase_color ORDER BY vase_color_id"

func (r *CatalogRepository) ListVaseColors(ctx context.Context) ([]entity.VaseColor, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var colors []entity.VaseColor
	if err := db.SelectContext(ctx, &colors, listVaseColorsQuery); err != nil {
		return nil, err
	}
	return colors, nil
}

var listFlowerTypesQuery = "SELECT flower_type_id, flower_name FROM flower_type ORDER BY flower_name"

func (r *CatalogRepository) ListFlowerTypes(ctx context.Context) ([]entity.FlowerType, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var types []entity.FlowerType
	if err := db.SelectContext(ctx, &types, listFlowerTypesQuery); err != nil {
		return nil, err
	}
	return types, nil
}
