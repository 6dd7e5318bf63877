package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"vendora/internal/usecase"
	"vendora/pkg/errors"
	"vendora/pkg/response"
)

type ListingHandler struct {
	listings *usecase.ListingUseCase
}

func NewListingHandler(listings *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listings: listings,
	}
}

func parseNearbyParams(c echo.Context) (lat, lon, radius float64, err error) {
	lat, err = strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return 0, 0, 0, errors.ValidationFailed("lat must be a valid number", err)
	}
	lon, err = strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return 0, 0, 0, errors.ValidationFailed("lon must be a valid number", err)
	}
	if radiusStr := c.QueryParam("radius"); radiusStr != "" {
		radius, err = strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			return 0, 0, 0, errors.ValidationFailed("radius must be a valid number", err)
		}
	}
	return lat, lon, radius, nil
}

func (h *ListingHandler) NearbyHotels(c echo.Context) error {
	lat, lon, radius, err := parseNearbyParams(c)
	if err != nil {
		return response.Error(c, err)
	}

	hotels, err := h.listings.NearbyHotels(c.Request().Context(), lat, lon, radius)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, hotels)
}

func (h *ListingHandler) NearbyRestaurants(c echo.Context) error {
	lat, lon, radius, err := parseNearbyParams(c)
	if err != nil {
		return response.Error(c, err)
	}

	restaurants, err := h.listings.NearbyRestaurants(c.Request().Context(), lat, lon, radius)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, restaurants)
}

func (h *ListingHandler) NearbyDatingProfiles(c echo.Context) error {
	lat, lon, radius, err := parseNearbyParams(c)
	if err != nil {
		return response.Error(c, err)
	}

	profiles, err := h.listings.NearbyDatingProfiles(c.Request().Context(), lat, lon, radius)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profiles)
}
