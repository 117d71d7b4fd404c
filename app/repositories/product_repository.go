package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/companyapi/app/models"
	"github.com/shashiranjanraj/companyapi/pkg/orm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) q(ctx context.Context) *orm.Query {
	return orm.New(r.db).WithContext(ctx)
}

func (r *ProductRepository) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.q(ctx).Order("id").Get(&products)
	return products, classify("products.all", err)
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (models.Product, error) {
	var product models.Product
	err := r.q(ctx).Where("id = ?", id).First(&product)
	return product, classify("products.find", err)
}

// Exists reports whether a product with id is stored. Orders use it to
// check their product reference.
func (r *ProductRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := r.q(ctx).Model(&models.Product{}).Where("id = ?", id).Exists()
	return ok, classify("products.exists", err)
}

// WithSku returns the products holding sku.
func (r *ProductRepository) WithSku(ctx context.Context, sku string) ([]models.Product, error) {
	var products []models.Product
	err := r.q(ctx).Where("sku = ?", sku).Get(&products)
	return products, classify("products.with_sku", err)
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	return classify("products.create", r.q(ctx).Create(product))
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	return classify("products.update", r.q(ctx).Save(product))
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	return classify("products.delete", r.q(ctx).Delete(&models.Product{}, id))
}
