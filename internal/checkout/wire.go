//go:build wireinject
// +build wireinject

package checkout

import (
	"github.com/google/wire"

	cartRepo "github.com/stridewear/storefront/internal/cart/repository"
	checkoutHttp "github.com/stridewear/storefront/internal/checkout/delivery/http"
	"github.com/stridewear/storefront/internal/checkout/domain"
	"github.com/stridewear/storefront/internal/checkout/usecase/command"
	"github.com/stridewear/storefront/internal/checkout/usecase/query"
)

// Command Handlers Providers
func ProvideApplyCouponHandler(sessions cartRepo.SessionRepository, rules domain.Rules) *command.ApplyCouponHandler {
	return command.NewApplyCouponHandler(sessions, rules)
}

func ProvideRemoveCouponHandler(sessions cartRepo.SessionRepository) *command.RemoveCouponHandler {
	return command.NewRemoveCouponHandler(sessions)
}

func ProvidePlaceOrderHandler(sessions cartRepo.SessionRepository, orders domain.OrderRepository, pricing domain.PricingConfig) *command.PlaceOrderHandler {
	return command.NewPlaceOrderHandler(sessions, orders, pricing)
}

// Query Handlers Providers
func ProvideGetSummaryHandler(sessions cartRepo.SessionRepository, pricing domain.PricingConfig) *query.GetSummaryHandler {
	return query.NewGetSummaryHandler(sessions, pricing)
}

func ProvideGetOrderHandler(orders domain.OrderRepository) *query.GetOrderHandler {
	return query.NewGetOrderHandler(orders)
}

func ProvideListOrdersHandler(orders domain.OrderRepository) *query.ListOrdersHandler {
	return query.NewListOrdersHandler(orders)
}

// Wire sets
var CommandHandlerSet = wire.NewSet(
	ProvideApplyCouponHandler,
	ProvideRemoveCouponHandler,
	ProvidePlaceOrderHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetSummaryHandler,
	ProvideGetOrderHandler,
	ProvideListOrdersHandler,
)

// InitializeHandler initializes the checkout handler with all dependencies
func InitializeHandler(
	sessions cartRepo.SessionRepository,
	orders domain.OrderRepository,
	rules domain.Rules,
	pricing domain.PricingConfig,
) (*checkoutHttp.CheckoutHandler, error) {
	wire.Build(
		CommandHandlerSet,
		QueryHandlerSet,
		checkoutHttp.NewCheckoutHandlerWithDI,
	)
	return nil, nil
}
