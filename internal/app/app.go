package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/glabrego/storefront-cli/internal/catalog"
)

type CatalogClient interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
}

type Service struct {
	client CatalogClient
	logger *zap.Logger
	nowFn  func() time.Time
}

func NewService(client CatalogClient, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, logger: logger, nowFn: time.Now}
}

// Load fetches the whole catalog once. Failures are logged and returned; the
// caller decides how to surface them.
func (s *Service) Load(ctx context.Context) ([]catalog.Product, error) {
	start := s.nowFn()
	s.logger.Debug("loading catalog")

	products, err := s.client.ListProducts(ctx)
	elapsed := s.nowFn().Sub(start)
	if err != nil {
		s.logger.Error("catalog load failed", zap.Error(err), zap.Duration("elapsed", elapsed))
		return nil, fmt.Errorf("fetch products from catalog: %w", err)
	}

	s.logger.Info("catalog loaded",
		zap.Int("products", len(products)),
		zap.Int("without_images", countWithoutImages(products)),
		zap.Duration("elapsed", elapsed),
	)
	return products, nil
}

func countWithoutImages(products []catalog.Product) int {
	n := 0
	for _, p := range products {
		if _, placeholder := p.DisplayImages(); placeholder {
			n++
		}
	}
	return n
}
