//go:build wireinject
// +build wireinject

package cart

import (
	"github.com/google/wire"

	cartHttp "github.com/stridewear/storefront/internal/cart/delivery/http"
	"github.com/stridewear/storefront/internal/cart/repository"
	"github.com/stridewear/storefront/internal/cart/usecase/command"
	"github.com/stridewear/storefront/internal/cart/usecase/query"
	catalogDomain "github.com/stridewear/storefront/internal/catalog/domain"
)

// Command Handlers Providers
func ProvideAddItemHandler(sessions repository.SessionRepository, catalog catalogDomain.CatalogRepository) *command.AddItemHandler {
	return command.NewAddItemHandler(sessions, catalog)
}

func ProvideRemoveItemHandler(sessions repository.SessionRepository) *command.RemoveItemHandler {
	return command.NewRemoveItemHandler(sessions)
}

func ProvideUpdateQuantityHandler(sessions repository.SessionRepository) *command.UpdateQuantityHandler {
	return command.NewUpdateQuantityHandler(sessions)
}

func ProvideClearCartHandler(sessions repository.SessionRepository) *command.ClearCartHandler {
	return command.NewClearCartHandler(sessions)
}

func ProvideToggleWishlistHandler(sessions repository.SessionRepository, catalog catalogDomain.CatalogRepository) *command.ToggleWishlistHandler {
	return command.NewToggleWishlistHandler(sessions, catalog)
}

func ProvideAddToWishlistHandler(sessions repository.SessionRepository, catalog catalogDomain.CatalogRepository) *command.AddToWishlistHandler {
	return command.NewAddToWishlistHandler(sessions, catalog)
}

func ProvideRemoveFromWishlistHandler(sessions repository.SessionRepository) *command.RemoveFromWishlistHandler {
	return command.NewRemoveFromWishlistHandler(sessions)
}

// Query Handlers Providers
func ProvideGetCartHandler(sessions repository.SessionRepository) *query.GetCartHandler {
	return query.NewGetCartHandler(sessions)
}

func ProvideGetWishlistHandler(sessions repository.SessionRepository) *query.GetWishlistHandler {
	return query.NewGetWishlistHandler(sessions)
}

func ProvideInWishlistHandler(sessions repository.SessionRepository) *query.InWishlistHandler {
	return query.NewInWishlistHandler(sessions)
}

// Wire sets
var CommandHandlerSet = wire.NewSet(
	ProvideAddItemHandler,
	ProvideRemoveItemHandler,
	ProvideUpdateQuantityHandler,
	ProvideClearCartHandler,
	ProvideToggleWishlistHandler,
	ProvideAddToWishlistHandler,
	ProvideRemoveFromWishlistHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetCartHandler,
	ProvideGetWishlistHandler,
	ProvideInWishlistHandler,
)

// InitializeHandler initializes the cart handler with all dependencies
func InitializeHandler(
	sessions repository.SessionRepository,
	catalog catalogDomain.CatalogRepository,
	sessionCount cartHttp.SessionCounter,
) (*cartHttp.CartHandler, error) {
	wire.Build(
		CommandHandlerSet,
		QueryHandlerSet,
		cartHttp.NewCartHandlerWithDI,
	)
	return nil, nil
}
