package repository

import (
	"context"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
	"shreeanna/pkg/errors"
)

type boltProductRepository struct {
	store *Store
}

func NewBoltProductRepository(store *Store) repository.ProductRepository {
	return &boltProductRepository{store: store}
}

func (r *boltProductRepository) Create(ctx context.Context, product *entity.Product) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		return put(tx, bucketProducts, product.ID, product)
	})
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}
	return nil
}

func (r *boltProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	var found bool

	err := r.store.db.View(func(tx *bolt.Tx) error {
		var err error
		found, err = getInto(tx, bucketProducts, id, &product)
		return err
	})
	if err != nil {
		return nil, errors.Internal("Failed to get product", err)
	}
	if !found {
		return nil, errors.NotFound("Product", nil)
	}
	return &product, nil
}

func (r *boltProductRepository) Update(ctx context.Context, product *entity.Product) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		var existing entity.Product
		found, err := getInto(tx, bucketProducts, product.ID, &existing)
		if err != nil {
			return err
		}
		if !found {
			return errors.NotFound("Product", nil)
		}
		product.UpdatedAt = time.Now()
		return put(tx, bucketProducts, product.ID, product)
	})
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr
	}
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}
	return nil
}

func (r *boltProductRepository) Delete(ctx context.Context, id string) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketProducts).Delete([]byte(id))
	})
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}
	return nil
}

func (r *boltProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	return r.list(func(*entity.Product) bool { return true })
}

func (r *boltProductRepository) ListByProvider(ctx context.Context, providerID string) ([]*entity.Product, error) {
	return r.list(func(p *entity.Product) bool { return p.ProviderID == providerID })
}

func (r *boltProductRepository) ListByStatus(ctx context.Context, status string) ([]*entity.Product, error) {
	return r.list(func(p *entity.Product) bool { return p.Status == status })
}

func (r *boltProductRepository) list(match func(*entity.Product) bool) ([]*entity.Product, error) {
	var products []*entity.Product

	err := r.store.db.View(func(tx *bolt.Tx) error {
		return forEach(tx, bucketProducts, func(v []byte) error {
			var product entity.Product
			if err := unmarshal(v, &product); err != nil {
				return err
			}
			if match(&product) {
				products = append(products, &product)
			}
			return nil
		})
	})
	if err != nil {
		return nil, errors.Internal("Failed to list products", err)
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}
