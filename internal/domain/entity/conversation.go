package entity

import (
	"fmt"
	"time"
)

type ConversationStatus string

const (
	ConversationActive   ConversationStatus = "active"
	ConversationArchived ConversationStatus = "archived"
	ConversationClosed   ConversationStatus = "closed"
)

// ContextType tags why a conversation exists.
type ContextType string

const (
	ContextOrder             ContextType = "order"
	ContextProductInquiry    ContextType = "product_inquiry"
	ContextDatingInquiry     ContextType = "dating_inquiry"
	ContextHotelInquiry      ContextType = "hotel_inquiry"
	ContextRestaurantInquiry ContextType = "restaurant_inquiry"
	ContextGeneral           ContextType = "general"
	ContextSupport           ContextType = "support"
)

func (t ContextType) IsValid() bool {
	switch t {
	case ContextOrder, ContextProductInquiry, ContextDatingInquiry,
		ContextHotelInquiry, ContextRestaurantInquiry, ContextGeneral, ContextSupport:
		return true
	}
	return false
}

// ConversationContext is a tagged union: the Type discriminates which single
// reference field may be set. Build values through the per-variant
// constructors below; Validate rejects cross-variant combinations.
type ConversationContext struct {
	Type            ContextType       `json:"type" firestore:"type"`
	OrderID         string            `json:"order_id,omitempty" firestore:"orderId,omitempty"`
	ProductID       string            `json:"product_id,omitempty" firestore:"productId,omitempty"`
	DatingProfileID string            `json:"dating_profile_id,omitempty" firestore:"datingProfileId,omitempty"`
	HotelID         string            `json:"hotel_id,omitempty" firestore:"hotelId,omitempty"`
	RestaurantID    string            `json:"restaurant_id,omitempty" firestore:"restaurantId,omitempty"`
	Meta            map[string]string `json:"meta,omitempty" firestore:"meta,omitempty"`
}

func OrderContext(orderID string, meta map[string]string) *ConversationContext {
	return &ConversationContext{Type: ContextOrder, OrderID: orderID, Meta: meta}
}

func ProductInquiryContext(productID string, meta map[string]string) *ConversationContext {
	return &ConversationContext{Type: ContextProductInquiry, ProductID: productID, Meta: meta}
}

func DatingInquiryContext(profileID string, meta map[string]string) *ConversationContext {
	return &ConversationContext{Type: ContextDatingInquiry, DatingProfileID: profileID, Meta: meta}
}

func HotelInquiryContext(hotelID string, meta map[string]string) *ConversationContext {
	return &ConversationContext{Type: ContextHotelInquiry, HotelID: hotelID, Meta: meta}
}

func RestaurantInquiryContext(restaurantID string, meta map[string]string) *ConversationContext {
	return &ConversationContext{Type: ContextRestaurantInquiry, RestaurantID: restaurantID, Meta: meta}
}

func GeneralContext() *ConversationContext {
	return &ConversationContext{Type: ContextGeneral}
}

func SupportContext() *ConversationContext {
	return &ConversationContext{Type: ContextSupport}
}

// Validate checks that only the reference field belonging to the tagged
// variant is populated.
func (c *ConversationContext) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("unknown context type %q", c.Type)
	}

	allowed := map[ContextType]string{
		ContextOrder:             c.OrderID,
		ContextProductInquiry:    c.ProductID,
		ContextDatingInquiry:     c.DatingProfileID,
		ContextHotelInquiry:      c.HotelID,
		ContextRestaurantInquiry: c.RestaurantID,
	}

	for variant, ref := range allowed {
		if variant != c.Type && ref != "" {
			return fmt.Errorf("context type %q must not carry a %q reference", c.Type, variant)
		}
	}
	return nil
}

// ParticipantData is a snapshot of a participant's profile taken when the
// conversation is created. It is not live-synced to later profile edits.
type ParticipantData struct {
	Name  string `json:"name" firestore:"name"`
	Photo string `json:"photo,omitempty" firestore:"photo,omitempty"`
	Role  string `json:"role" firestore:"role"`
}

// LastMessage is a display-only cache of the most recently appended message.
// It is recomputed on every append and never mutated otherwise.
type LastMessage struct {
	Content   string      `json:"content" firestore:"content"`
	Type      MessageType `json:"type" firestore:"type"`
	SenderID  string      `json:"sender_id" firestore:"senderId"`
	CreatedAt time.Time   `json:"created_at" firestore:"createdAt"`
}

// Conversation is a thread between exactly two users. A conversation is
// uniquely identified by its unordered participant pair: no two
// conversations may exist for the same pair.
type Conversation struct {
	ID               string                     `json:"id" firestore:"id"`
	Participants     []string                   `json:"participants" firestore:"participants"`
	ParticipantsData map[string]ParticipantData `json:"participants_data" firestore:"participantsData"`
	Context          *ConversationContext       `json:"context,omitempty" firestore:"context,omitempty"`
	ProductContext   *ProductRef                `json:"product_context,omitempty" firestore:"productContext,omitempty"`
	UnreadCount      map[string]int             `json:"unread_count" firestore:"unreadCount"`
	LastMessage      *LastMessage               `json:"last_message,omitempty" firestore:"lastMessage,omitempty"`
	Status           ConversationStatus         `json:"status" firestore:"status"`
	CreatedAt        time.Time                  `json:"created_at" firestore:"createdAt"`
	UpdatedAt        time.Time                  `json:"updated_at" firestore:"updatedAt"`
}

func (c *Conversation) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// OtherParticipant returns the counterpart of userID in the pair, or ""
// when userID is not a participant.
func (c *Conversation) OtherParticipant(userID string) string {
	if !c.HasParticipant(userID) {
		return ""
	}
	for _, p := range c.Participants {
		if p != userID {
			return p
		}
	}
	return ""
}
