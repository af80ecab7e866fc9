package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/stridewear/storefront/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// TracedCatalogRepository wraps MemoryCatalogRepository with spans for
// context-aware call sites.
type TracedCatalogRepository struct {
	*MemoryCatalogRepository
}

// NewTracedCatalogRepository decorates the given repository with tracing.
func NewTracedCatalogRepository(inner *MemoryCatalogRepository) *TracedCatalogRepository {
	return &TracedCatalogRepository{MemoryCatalogRepository: inner}
}

// ListWithContext records a span around List.
func (r *TracedCatalogRepository) ListWithContext(ctx context.Context) []domain.Product {
	_, span := tracer.Start(ctx, "repository.List")
	defer span.End()

	products := r.List()
	span.SetAttributes(attribute.Int("catalog.size", len(products)))
	return products
}

// FindByIDWithContext records a span around FindByID.
func (r *TracedCatalogRepository) FindByIDWithContext(ctx context.Context, id uint) (*domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	product, err := r.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("product.name", product.Name))
	return product, nil
}
