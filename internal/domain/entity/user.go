package entity

import "time"

type User struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Photo     string    `json:"photo,omitempty" firestore:"photo,omitempty"`
	Role      string    `json:"role" firestore:"role"` // "buyer", "seller", "admin"
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// ParticipantData builds the profile snapshot stored on a conversation at
// creation time.
func (u *User) ParticipantData() ParticipantData {
	return ParticipantData{
		Name:  u.Name,
		Photo: u.Photo,
		Role:  u.Role,
	}
}
