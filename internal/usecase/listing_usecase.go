package usecase

import (
	"context"
	"sort"

	"vendora/internal/domain/entity"
	"vendora/internal/domain/repository"
	"vendora/pkg/geo"
)

// ListingUseCase serves the location-ranked read paths for the hotel,
// restaurant and dating verticals.
type ListingUseCase struct {
	hotelRepo      repository.HotelRepository
	restaurantRepo repository.RestaurantRepository
	datingRepo     repository.DatingProfileRepository
}

func NewListingUseCase(
	hotelRepo repository.HotelRepository,
	restaurantRepo repository.RestaurantRepository,
	datingRepo repository.DatingProfileRepository,
) *ListingUseCase {
	return &ListingUseCase{
		hotelRepo:      hotelRepo,
		restaurantRepo: restaurantRepo,
		datingRepo:     datingRepo,
	}
}

type NearbyHotel struct {
	*entity.Hotel
	DistanceKm float64 `json:"distance_km"`
}

type NearbyRestaurant struct {
	*entity.Restaurant
	DistanceKm float64 `json:"distance_km"`
}

type NearbyDatingProfile struct {
	*entity.DatingProfile
	DistanceKm float64 `json:"distance_km"`
}

// NearbyHotels returns hotels within radiusKm of the given point, closest
// first. radiusKm <= 0 disables the radius filter.
func (uc *ListingUseCase) NearbyHotels(ctx context.Context, lat, lon, radiusKm float64) ([]*NearbyHotel, error) {
	hotels, err := uc.hotelRepo.List(ctx, -1)
	if err != nil {
		return nil, err
	}

	var results []*NearbyHotel
	for _, hotel := range hotels {
		d := geo.Distance(lat, lon, hotel.Location.Lat, hotel.Location.Lon)
		if radiusKm > 0 && d > radiusKm {
			continue
		}
		results = append(results, &NearbyHotel{Hotel: hotel, DistanceKm: d})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})
	return results, nil
}

func (uc *ListingUseCase) NearbyRestaurants(ctx context.Context, lat, lon, radiusKm float64) ([]*NearbyRestaurant, error) {
	restaurants, err := uc.restaurantRepo.List(ctx, -1)
	if err != nil {
		return nil, err
	}

	var results []*NearbyRestaurant
	for _, restaurant := range restaurants {
		d := geo.Distance(lat, lon, restaurant.Location.Lat, restaurant.Location.Lon)
		if radiusKm > 0 && d > radiusKm {
			continue
		}
		results = append(results, &NearbyRestaurant{Restaurant: restaurant, DistanceKm: d})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})
	return results, nil
}

func (uc *ListingUseCase) NearbyDatingProfiles(ctx context.Context, lat, lon, radiusKm float64) ([]*NearbyDatingProfile, error) {
	profiles, err := uc.datingRepo.List(ctx, -1)
	if err != nil {
		return nil, err
	}

	var results []*NearbyDatingProfile
	for _, profile := range profiles {
		d := geo.Distance(lat, lon, profile.Location.Lat, profile.Location.Lon)
		if radiusKm > 0 && d > radiusKm {
			continue
		}
		results = append(results, &NearbyDatingProfile{DatingProfile: profile, DistanceKm: d})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})
	return results, nil
}
