package inventory

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"inventory-manager/feature/inventory/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// manualSupplier marks products entered by hand.
const manualSupplier = "Manual"

// ListProducts returns the catalog ordered by category then name.
// A non-empty category keeps only that category (case-insensitive).
func (s *Service) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	products, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := products[:0]
	for _, p := range products {
		if category == "" || strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := strings.ToLower(out[i].Category), strings.ToLower(out[j].Category)
		if ci != cj {
			return ci < cj
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

// GetProduct returns the product with id.
func (s *Service) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	products, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexOf(products, id); i >= 0 {
		return &products[i], nil
	}
	return nil, ErrProductNotFound
}

// FindByBarcode returns the first product whose barcode, or failing that SKU, equals code.
func (s *Service) FindByBarcode(ctx context.Context, code string) (*models.Product, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrProductNotFound
	}
	products, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Barcode == code {
			return &products[i], nil
		}
	}
	for i := range products {
		if products[i].SKU == code {
			return &products[i], nil
		}
	}
	return nil, ErrProductNotFound
}

// AddProduct appends a manually entered product with the next free id.
func (s *Service) AddProduct(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	return s.mutate(ctx, "add", func(products []models.Product) ([]models.Product, int, error) {
		p := models.Product{ID: maxID(products) + 1, LastRestocked: s.now()}
		s.applyInput(&p, in, true)
		return append(products, p), len(products), nil
	})
}

// QuickAdd appends a product from just a name and price. Keys are synthesized.
func (s *Service) QuickAdd(ctx context.Context, in models.QuickAddInput) (*models.Product, error) {
	return s.mutate(ctx, "quick add", func(products []models.Product) ([]models.Product, int, error) {
		now := s.now()
		id := maxID(products) + 1
		stamp := strconv.FormatInt(now.UnixMilli(), 10) + "-" + strconv.Itoa(id)
		p := models.Product{
			ID:            id,
			Name:          strings.TrimSpace(in.Name),
			Barcode:       "BAR-" + stamp,
			SKU:           "SKU-" + stamp,
			Category:      s.cfg.DefaultCategory,
			Supplier:      manualSupplier,
			Price:         decimal.NewFromFloat(in.Price),
			Stock:         in.Stock,
			MinStock:      s.cfg.DefaultMinStock,
			Icon:          s.cfg.DefaultIcon,
			LastRestocked: now,
		}
		return append(products, p), len(products), nil
	})
}

// UpdateProduct overwrites the product's fields from the form. The id never changes.
func (s *Service) UpdateProduct(ctx context.Context, id int, in models.ProductInput) (*models.Product, error) {
	return s.mutate(ctx, "update", func(products []models.Product) ([]models.Product, int, error) {
		i := indexOf(products, id)
		if i < 0 {
			return nil, 0, ErrProductNotFound
		}
		p := products[i]
		s.applyInput(&p, in, false)
		p.LastRestocked = s.now()
		products[i] = p
		return products, i, nil
	})
}

// AdjustStock adds delta to the stock, never going below zero.
// A positive delta counts as a restock.
func (s *Service) AdjustStock(ctx context.Context, id, delta int) (*models.Product, error) {
	return s.mutate(ctx, "adjust stock", func(products []models.Product) ([]models.Product, int, error) {
		i := indexOf(products, id)
		if i < 0 {
			return nil, 0, ErrProductNotFound
		}
		p := products[i]
		p.Stock += delta
		if p.Stock < 0 {
			p.Stock = 0
		}
		if delta > 0 {
			p.LastRestocked = s.now()
		}
		products[i] = p
		return products, i, nil
	})
}

// DeleteProduct removes the product with id.
func (s *Service) DeleteProduct(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(products, id)
	if i < 0 {
		return ErrProductNotFound
	}
	next := make([]models.Product, 0, len(products)-1)
	next = append(next, products[:i]...)
	next = append(next, products[i+1:]...)
	if err := s.store.Replace(ctx, next); err != nil {
		return err
	}
	s.logger.Info("Product deleted", zap.Int("id", id))
	return nil
}

// Reset empties the catalog.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Replace(ctx, nil); err != nil {
		return err
	}
	s.logger.Warn("Catalog reset")
	return nil
}

// mutate loads the catalog, lets fn change it and stores the result.
// fn returns the new catalog and the position of the touched product.
func (s *Service) mutate(ctx context.Context, op string, fn func([]models.Product) ([]models.Product, int, error)) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	next, pos, err := fn(products)
	if err != nil {
		return nil, err
	}
	if err := s.store.Replace(ctx, next); err != nil {
		return nil, err
	}

	p := next[pos]
	s.logger.Info("Product saved", zap.String("op", op), zap.Int("id", p.ID))
	return &p, nil
}

// applyInput copies the form onto p. Blank optional fields keep the current value.
func (s *Service) applyInput(p *models.Product, in models.ProductInput, isNew bool) {
	p.Name = strings.TrimSpace(in.Name)
	p.Barcode = strings.TrimSpace(in.Barcode)
	p.SKU = strings.TrimSpace(in.SKU)
	p.Category = orDefault(in.Category, orDefault(p.Category, s.cfg.DefaultCategory))
	p.Supplier = orDefault(in.Supplier, orDefault(p.Supplier, manualSupplier))
	p.Price = decimal.NewFromFloat(in.Price)
	p.Stock = in.Stock
	if in.MinStock != nil {
		p.MinStock = *in.MinStock
	} else if isNew {
		p.MinStock = s.cfg.DefaultMinStock
	}
	p.Icon = orDefault(in.Icon, orDefault(p.Icon, s.cfg.DefaultIcon))
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}

func indexOf(products []models.Product, id int) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}
