//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"

	"github.com/stridewear/storefront/internal/catalog/domain"
	catalogHttp "github.com/stridewear/storefront/internal/catalog/delivery/http"
	"github.com/stridewear/storefront/internal/catalog/usecase/query"
)

// Query Handlers Providers
func ProvideListProductsHandler(repo domain.CatalogRepository) *query.ListProductsHandler {
	return query.NewListProductsHandler(repo)
}

func ProvideGetProductHandler(repo domain.CatalogRepository) *query.GetProductHandler {
	return query.NewGetProductHandler(repo)
}

func ProvideGetFacetsHandler(repo domain.CatalogRepository) *query.GetFacetsHandler {
	return query.NewGetFacetsHandler(repo)
}

// Wire sets
var QueryHandlerSet = wire.NewSet(
	ProvideListProductsHandler,
	ProvideGetProductHandler,
	ProvideGetFacetsHandler,
)

// InitializeHandler initializes the catalog handler with all dependencies
func InitializeHandler(repo domain.CatalogRepository) (*catalogHttp.CatalogHandler, error) {
	wire.Build(
		QueryHandlerSet,
		catalogHttp.NewCatalogHandlerWithDI,
	)
	return nil, nil
}
