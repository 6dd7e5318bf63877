package usecase

import (
	"context"
	"fmt"

	"vendora/internal/domain/entity"
	"vendora/internal/domain/repository"
	"vendora/pkg/errors"
)

// ContactAction is a UI gesture that opens (or reuses) a conversation with
// the party behind a listing.
type ContactAction string

const (
	ActionProductInquiry    ContactAction = "product_inquiry"
	ActionQuoteRequest      ContactAction = "quote_request"
	ActionHotelContact      ContactAction = "hotel_contact"
	ActionRestaurantContact ContactAction = "restaurant_contact"
	ActionDatingContact     ContactAction = "dating_contact"
	ActionOrderThread       ContactAction = "order_thread"
)

func (a ContactAction) IsValid() bool {
	switch a {
	case ActionProductInquiry, ActionQuoteRequest, ActionHotelContact,
		ActionRestaurantContact, ActionDatingContact, ActionOrderThread:
		return true
	}
	return false
}

// ContactUseCase translates a contact action into a conversation context, a
// counterpart user and an opening message, then drives the messaging core.
type ContactUseCase struct {
	messaging      *MessagingUseCase
	productRepo    repository.ProductRepository
	hotelRepo      repository.HotelRepository
	restaurantRepo repository.RestaurantRepository
	datingRepo     repository.DatingProfileRepository
}

func NewContactUseCase(
	messaging *MessagingUseCase,
	productRepo repository.ProductRepository,
	hotelRepo repository.HotelRepository,
	restaurantRepo repository.RestaurantRepository,
	datingRepo repository.DatingProfileRepository,
) *ContactUseCase {
	return &ContactUseCase{
		messaging:      messaging,
		productRepo:    productRepo,
		hotelRepo:      hotelRepo,
		restaurantRepo: restaurantRepo,
		datingRepo:     datingRepo,
	}
}

type ContactInput struct {
	Action    ContactAction
	ListingID string
	// OrderID and CounterpartID apply to order threads only, where there is
	// no listing to resolve the counterpart from.
	OrderID       string
	CounterpartID string
	// Message overrides the action's default opening text when non-empty.
	Message string
}

type ContactResult struct {
	Conversation *entity.Conversation `json:"conversation"`
	Message      *entity.Message      `json:"message"`
	Created      bool                 `json:"created"`
}

// binding carries everything resolved from a contact action before any
// conversation write happens.
type binding struct {
	counterpartID  string
	context        *entity.ConversationContext
	productRef     *entity.ProductRef
	defaultMessage string
	messageType    entity.MessageType
}

// StartContact resolves the listing, guards against self-contact and missing
// auth, then gets-or-creates the conversation and sends the opening message.
func (uc *ContactUseCase) StartContact(ctx context.Context, userID string, input ContactInput) (*ContactResult, error) {
	if userID == "" {
		return nil, errors.AuthRequired("Sign in to contact the other party", nil)
	}
	if !input.Action.IsValid() {
		return nil, errors.ValidationFailed("Unknown contact action", nil)
	}

	b, err := uc.resolve(ctx, input)
	if err != nil {
		return nil, err
	}
	if b.counterpartID == userID {
		return nil, errors.SelfContact(nil)
	}

	conversation, created, err := uc.messaging.GetOrCreateConversation(ctx, userID, b.counterpartID, b.context, b.productRef)
	if err != nil {
		return nil, err
	}

	content := input.Message
	if content == "" {
		content = b.defaultMessage
	}

	message, err := uc.messaging.SendMessage(ctx, userID, SendMessageInput{
		ConversationID: conversation.ID,
		Content:        content,
		Type:           b.messageType,
		ProductRef:     b.productRef,
	})
	if err != nil {
		return nil, err
	}

	return &ContactResult{
		Conversation: conversation,
		Message:      message,
		Created:      created,
	}, nil
}

func (uc *ContactUseCase) resolve(ctx context.Context, input ContactInput) (*binding, error) {
	switch input.Action {
	case ActionProductInquiry, ActionQuoteRequest:
		product, err := uc.productRepo.GetByID(ctx, input.ListingID)
		if err != nil {
			return nil, err
		}
		b := &binding{
			counterpartID:  product.SellerID,
			context:        entity.ProductInquiryContext(product.ID, map[string]string{"productName": product.Name}),
			productRef:     product.Ref(),
			defaultMessage: "Hi! I'm interested in this product!",
			messageType:    entity.MessageText,
		}
		if input.Action == ActionQuoteRequest {
			b.defaultMessage = fmt.Sprintf("Hi! Could you send me a quote for %s?", product.Name)
			b.messageType = entity.MessageQuoteRequest
		}
		return b, nil

	case ActionHotelContact:
		hotel, err := uc.hotelRepo.GetByID(ctx, input.ListingID)
		if err != nil {
			return nil, err
		}
		return &binding{
			counterpartID:  hotel.OwnerID,
			context:        entity.HotelInquiryContext(hotel.ID, map[string]string{"hotelName": hotel.Name}),
			defaultMessage: fmt.Sprintf("Hello! I'd like to ask about availability at %s.", hotel.Name),
			messageType:    entity.MessageText,
		}, nil

	case ActionRestaurantContact:
		restaurant, err := uc.restaurantRepo.GetByID(ctx, input.ListingID)
		if err != nil {
			return nil, err
		}
		return &binding{
			counterpartID:  restaurant.OwnerID,
			context:        entity.RestaurantInquiryContext(restaurant.ID, map[string]string{"restaurantName": restaurant.Name}),
			defaultMessage: fmt.Sprintf("Hello! I'd like to make an inquiry about %s.", restaurant.Name),
			messageType:    entity.MessageText,
		}, nil

	case ActionDatingContact:
		profile, err := uc.datingRepo.GetByID(ctx, input.ListingID)
		if err != nil {
			return nil, err
		}
		return &binding{
			counterpartID:  profile.UserID,
			context:        entity.DatingInquiryContext(profile.ID, map[string]string{"displayName": profile.DisplayName}),
			defaultMessage: "Hi! I saw your profile and would like to connect.",
			messageType:    entity.MessageText,
		}, nil

	case ActionOrderThread:
		if input.OrderID == "" || input.CounterpartID == "" {
			return nil, errors.ValidationFailed("Order thread requires an order and a counterpart", nil)
		}
		return &binding{
			counterpartID:  input.CounterpartID,
			context:        entity.OrderContext(input.OrderID, nil),
			defaultMessage: fmt.Sprintf("Hi! I have a question about order %s.", input.OrderID),
			messageType:    entity.MessageText,
		}, nil
	}

	return nil, errors.ValidationFailed("Unknown contact action", nil)
}
