package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendora/internal/domain/entity"
)

func newListingFixture(t *testing.T) *ListingUseCase {
	t.Helper()

	// Jakarta-centered fixtures: Monas is the query point, Bandung is ~116 km
	// out, Surabaya ~660 km.
	return NewListingUseCase(
		&fakeHotelRepository{hotels: map[string]*entity.Hotel{
			"hotel-jkt": {ID: "hotel-jkt", OwnerID: "owner-1", Name: "Jakarta Hotel",
				Location: entity.GeoPoint{Lat: -6.2, Lon: 106.82}},
			"hotel-bdg": {ID: "hotel-bdg", OwnerID: "owner-2", Name: "Bandung Hotel",
				Location: entity.GeoPoint{Lat: -6.9, Lon: 107.61}},
			"hotel-sby": {ID: "hotel-sby", OwnerID: "owner-3", Name: "Surabaya Hotel",
				Location: entity.GeoPoint{Lat: -7.25, Lon: 112.75}},
		}},
		&fakeRestaurantRepository{restaurants: map[string]*entity.Restaurant{
			"rest-jkt": {ID: "rest-jkt", OwnerID: "owner-1", Name: "Warung Jakarta",
				Location: entity.GeoPoint{Lat: -6.21, Lon: 106.85}},
		}},
		&fakeDatingProfileRepository{profiles: map[string]*entity.DatingProfile{
			"profile-near": {ID: "profile-near", UserID: "user-1", DisplayName: "Near",
				Location: entity.GeoPoint{Lat: -6.19, Lon: 106.83}},
			"profile-far": {ID: "profile-far", UserID: "user-2", DisplayName: "Far",
				Location: entity.GeoPoint{Lat: -8.65, Lon: 115.22}},
		}},
	)
}

func TestNearbyHotelsSortedByDistance(t *testing.T) {
	uc := newListingFixture(t)

	hotels, err := uc.NearbyHotels(context.Background(), -6.175, 106.827, 0)
	require.NoError(t, err)
	require.Len(t, hotels, 3)

	assert.Equal(t, "hotel-jkt", hotels[0].ID)
	assert.Equal(t, "hotel-bdg", hotels[1].ID)
	assert.Equal(t, "hotel-sby", hotels[2].ID)
	for i := 1; i < len(hotels); i++ {
		assert.LessOrEqual(t, hotels[i-1].DistanceKm, hotels[i].DistanceKm)
	}
}

func TestNearbyHotelsRadiusFilter(t *testing.T) {
	uc := newListingFixture(t)

	hotels, err := uc.NearbyHotels(context.Background(), -6.175, 106.827, 50)
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, "hotel-jkt", hotels[0].ID)
	assert.Less(t, hotels[0].DistanceKm, 50.0)
}

func TestNearbyRestaurants(t *testing.T) {
	uc := newListingFixture(t)

	restaurants, err := uc.NearbyRestaurants(context.Background(), -6.175, 106.827, 20)
	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "rest-jkt", restaurants[0].ID)
}

func TestNearbyDatingProfilesRadiusFilter(t *testing.T) {
	uc := newListingFixture(t)

	profiles, err := uc.NearbyDatingProfiles(context.Background(), -6.175, 106.827, 100)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "profile-near", profiles[0].ID)

	all, err := uc.NearbyDatingProfiles(context.Background(), -6.175, 106.827, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
