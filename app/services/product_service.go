package services

import (
	"context"

	"github.com/shashiranjanraj/companyapi/app/apperrors"
	"github.com/shashiranjanraj/companyapi/app/models"
	"github.com/shashiranjanraj/companyapi/app/query"
)

const productEntity = "product"

type ProductStore interface {
	All(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (models.Product, error)
	WithSku(ctx context.Context, sku string) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int64) error
}

type ProductFilter struct {
	Sku, Price, Name, Description, Manufacturer, Type *string
}

type ProductService struct {
	products ProductStore
}

func NewProductService(products ProductStore) *ProductService {
	return &ProductService{products: products}
}

func productSku(p models.Product) string { return p.Sku }

func (s *ProductService) List(ctx context.Context, f ProductFilter) (out []models.Product, err error) {
	defer func() { track(productEntity, "list", err) }()

	all, err := s.products.All(ctx)
	if err != nil {
		return nil, fault(ctx, productEntity, "list", err)
	}

	filter := query.New().
		Eq("sku", f.Sku).
		Eq("price", f.Price).
		Eq("name", f.Name).
		Eq("description", f.Description).
		Eq("manufacturer", f.Manufacturer).
		Eq("type", f.Type)
	return query.Apply(filter, all), nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (product models.Product, err error) {
	defer func() { track(productEntity, "get", err) }()

	product, err = s.products.FindByID(ctx, id)
	if err != nil {
		return models.Product{}, lookup(ctx, productEntity, "get", id, err)
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, product models.Product) (_ models.Product, err error) {
	defer func() { track(productEntity, "create", err) }()

	product.ID = 0
	if err := s.checkSku(ctx, "create", product); err != nil {
		return models.Product{}, err
	}
	if err := s.products.Create(ctx, &product); err != nil {
		return models.Product{}, fault(ctx, productEntity, "create", err)
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id int64, product models.Product) (_ models.Product, err error) {
	defer func() { track(productEntity, "update", err) }()

	if product.ID != id {
		return models.Product{}, apperrors.BadRequest("path id %d does not match body id %d", id, product.ID)
	}
	if _, err := s.products.FindByID(ctx, id); err != nil {
		return models.Product{}, lookup(ctx, productEntity, "update", id, err)
	}
	if err := s.checkSku(ctx, "update", product); err != nil {
		return models.Product{}, err
	}
	if err := s.products.Update(ctx, &product); err != nil {
		return models.Product{}, fault(ctx, productEntity, "update", err)
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) (err error) {
	defer func() { track(productEntity, "delete", err) }()

	if _, err := s.products.FindByID(ctx, id); err != nil {
		return lookup(ctx, productEntity, "delete", id, err)
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return fault(ctx, productEntity, "delete", err)
	}
	return nil
}

func (s *ProductService) checkSku(ctx context.Context, op string, product models.Product) error {
	holders, err := s.products.WithSku(ctx, product.Sku)
	if err != nil {
		return fault(ctx, productEntity, op, err)
	}
	if query.IsTaken(holders, product, productSku) {
		return apperrors.Conflict("sku %q is already taken", product.Sku)
	}
	return nil
}
