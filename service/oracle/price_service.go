package oracle

import (
	"context"

	"lever/core"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

// maxPriceDepth caps provider-to-provider delegation. the visited set
// already breaks cycles; the depth cap bounds acyclic chains too.
const maxPriceDepth = 8

type priceService struct {
	config      *core.Config
	oracleStore core.IOracleStore
	// active root provider, fixed at bootstrap
	provider string
}

// New new price oracle service. provider is the namespace resolved
// first; falls back to the configured default, then the root namespace.
func New(cfg *core.Config, oracleStore core.IOracleStore, provider string) core.IPriceOracleService {
	if provider == "" {
		provider = cfg.Oracle.DefaultProvider
	}
	if provider == "" {
		provider = core.RootPriceProvider
	}

	return &priceService{
		config:      cfg,
		oracleStore: oracleStore,
		provider:    provider,
	}
}

func (s *priceService) SetPriceSource(ctx context.Context, authority string, source *core.PriceSource) error {
	if !s.config.IsAdmin(authority) {
		return core.ErrOperationForbidden
	}

	if err := source.Validate(); err != nil {
		return err
	}

	return s.oracleStore.Save(ctx, source)
}

func (s *priceService) GetPrice(ctx context.Context, assetID string) (decimal.Decimal, error) {
	visited := make(map[string]bool)
	return s.resolve(ctx, s.provider, assetID, visited, 0)
}

func (s *priceService) resolve(ctx context.Context, provider, assetID string, visited map[string]bool, depth int) (decimal.Decimal, error) {
	log := logger.FromContext(ctx).WithField("service", "oracle")

	if depth >= maxPriceDepth || visited[provider] {
		log.Errorln("price source chain too deep or cyclic, provider:", provider, "asset:", assetID)
		return decimal.Zero, core.ErrPriceNotFound
	}
	visited[provider] = true

	source, err := s.oracleStore.Find(ctx, provider, assetID)
	if err != nil {
		return decimal.Zero, err
	}

	switch source.Type {
	case core.PriceSourceTypeFixed:
		return source.Price, nil
	case core.PriceSourceTypeProvider:
		return s.resolve(ctx, source.Reference, assetID, visited, depth+1)
	default:
		return decimal.Zero, core.ErrInvalidPriceSource
	}
}
