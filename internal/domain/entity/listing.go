package entity

import "time"

// GeoPoint is a latitude/longitude pair in decimal degrees.
type GeoPoint struct {
	Lat float64 `json:"lat" firestore:"lat"`
	Lon float64 `json:"lon" firestore:"lon"`
}

type Product struct {
	ID          string    `json:"id" firestore:"id"`
	SellerID    string    `json:"seller_id" firestore:"sellerId"`
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	Price       float64   `json:"price" firestore:"price"`
	Currency    string    `json:"currency" firestore:"currency"`
	ImageURL    string    `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Ref returns the snapshot attached to conversations and messages that
// reference this product.
func (p *Product) Ref() *ProductRef {
	return &ProductRef{
		ProductID:       p.ID,
		ProductName:     p.Name,
		ProductImage:    p.ImageURL,
		ProductPrice:    p.Price,
		ProductCurrency: p.Currency,
	}
}

type Hotel struct {
	ID        string    `json:"id" firestore:"id"`
	OwnerID   string    `json:"owner_id" firestore:"ownerId"`
	Name      string    `json:"name" firestore:"name"`
	City      string    `json:"city,omitempty" firestore:"city,omitempty"`
	Location  GeoPoint  `json:"location" firestore:"location"`
	ImageURL  string    `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type Restaurant struct {
	ID        string    `json:"id" firestore:"id"`
	OwnerID   string    `json:"owner_id" firestore:"ownerId"`
	Name      string    `json:"name" firestore:"name"`
	Cuisine   string    `json:"cuisine,omitempty" firestore:"cuisine,omitempty"`
	Location  GeoPoint  `json:"location" firestore:"location"`
	ImageURL  string    `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type DatingProfile struct {
	ID          string    `json:"id" firestore:"id"`
	UserID      string    `json:"user_id" firestore:"userId"`
	DisplayName string    `json:"display_name" firestore:"displayName"`
	Bio         string    `json:"bio,omitempty" firestore:"bio,omitempty"`
	Photo       string    `json:"photo,omitempty" firestore:"photo,omitempty"`
	Location    GeoPoint  `json:"location" firestore:"location"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
