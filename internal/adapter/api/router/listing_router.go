package router

import (
	"github.com/labstack/echo/v4"

	"vendora/internal/adapter/api/handler"
)

// SetupListingRouter wires the public location-ranked listing reads.
func SetupListingRouter(e *echo.Echo, listingHandler *handler.ListingHandler) {
	listings := e.Group("/v1/listings")

	listings.GET("/hotels/nearby", listingHandler.NearbyHotels)
	listings.GET("/restaurants/nearby", listingHandler.NearbyRestaurants)
	listings.GET("/dating/nearby", listingHandler.NearbyDatingProfiles)
}
