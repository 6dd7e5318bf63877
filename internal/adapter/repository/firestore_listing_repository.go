package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"vendora/internal/domain/entity"
	"vendora/internal/domain/repository"
	"vendora/pkg/errors"
)

// The listing collections are read-only from this service; their write
// paths live in the vertical-specific backends.

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{client: client}
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.FetchFailed("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}
	return &product, nil
}

func (r *firestoreProductRepository) List(ctx context.Context, limit int) ([]*entity.Product, error) {
	var products []*entity.Product
	err := iterate(ctx, r.client.Collection("products"), limit, func(doc *firestore.DocumentSnapshot) error {
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return err
		}
		products = append(products, &product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

type firestoreHotelRepository struct {
	client *firestore.Client
}

func NewFirestoreHotelRepository(client *firestore.Client) repository.HotelRepository {
	return &firestoreHotelRepository{client: client}
}

func (r *firestoreHotelRepository) GetByID(ctx context.Context, id string) (*entity.Hotel, error) {
	doc, err := r.client.Collection("hotels").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Hotel", err)
		}
		return nil, errors.FetchFailed("Failed to get hotel", err)
	}

	var hotel entity.Hotel
	if err := doc.DataTo(&hotel); err != nil {
		return nil, errors.Internal("Failed to parse hotel data", err)
	}
	return &hotel, nil
}

func (r *firestoreHotelRepository) List(ctx context.Context, limit int) ([]*entity.Hotel, error) {
	var hotels []*entity.Hotel
	err := iterate(ctx, r.client.Collection("hotels"), limit, func(doc *firestore.DocumentSnapshot) error {
		var hotel entity.Hotel
		if err := doc.DataTo(&hotel); err != nil {
			return err
		}
		hotels = append(hotels, &hotel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hotels, nil
}

type firestoreRestaurantRepository struct {
	client *firestore.Client
}

func NewFirestoreRestaurantRepository(client *firestore.Client) repository.RestaurantRepository {
	return &firestoreRestaurantRepository{client: client}
}

func (r *firestoreRestaurantRepository) GetByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	doc, err := r.client.Collection("restaurants").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Restaurant", err)
		}
		return nil, errors.FetchFailed("Failed to get restaurant", err)
	}

	var restaurant entity.Restaurant
	if err := doc.DataTo(&restaurant); err != nil {
		return nil, errors.Internal("Failed to parse restaurant data", err)
	}
	return &restaurant, nil
}

func (r *firestoreRestaurantRepository) List(ctx context.Context, limit int) ([]*entity.Restaurant, error) {
	var restaurants []*entity.Restaurant
	err := iterate(ctx, r.client.Collection("restaurants"), limit, func(doc *firestore.DocumentSnapshot) error {
		var restaurant entity.Restaurant
		if err := doc.DataTo(&restaurant); err != nil {
			return err
		}
		restaurants = append(restaurants, &restaurant)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}

type firestoreDatingProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreDatingProfileRepository(client *firestore.Client) repository.DatingProfileRepository {
	return &firestoreDatingProfileRepository{client: client}
}

func (r *firestoreDatingProfileRepository) GetByID(ctx context.Context, id string) (*entity.DatingProfile, error) {
	doc, err := r.client.Collection("datingProfiles").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Dating profile", err)
		}
		return nil, errors.FetchFailed("Failed to get dating profile", err)
	}

	var profile entity.DatingProfile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse dating profile data", err)
	}
	return &profile, nil
}

func (r *firestoreDatingProfileRepository) List(ctx context.Context, limit int) ([]*entity.DatingProfile, error) {
	var profiles []*entity.DatingProfile
	err := iterate(ctx, r.client.Collection("datingProfiles"), limit, func(doc *firestore.DocumentSnapshot) error {
		var profile entity.DatingProfile
		if err := doc.DataTo(&profile); err != nil {
			return err
		}
		profiles = append(profiles, &profile)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func iterate(ctx context.Context, coll *firestore.CollectionRef, limit int, fn func(doc *firestore.DocumentSnapshot) error) error {
	query := coll.Query
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return errors.FetchFailed("Failed to iterate listing documents", err)
		}
		if err := fn(doc); err != nil {
			return errors.Internal("Failed to parse listing data", err)
		}
	}
}
