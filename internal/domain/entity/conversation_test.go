package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextTypeIsValid(t *testing.T) {
	valid := []ContextType{
		ContextOrder, ContextProductInquiry, ContextDatingInquiry,
		ContextHotelInquiry, ContextRestaurantInquiry, ContextGeneral, ContextSupport,
	}
	for _, ct := range valid {
		assert.True(t, ct.IsValid(), "%s should be valid", ct)
	}
	assert.False(t, ContextType("").IsValid())
	assert.False(t, ContextType("payment").IsValid())
}

func TestConversationContextValidate(t *testing.T) {
	tests := []struct {
		name    string
		context *ConversationContext
		wantErr bool
	}{
		{
			name:    "order context",
			context: OrderContext("order-1", nil),
		},
		{
			name:    "product inquiry context",
			context: ProductInquiryContext("prod-1", map[string]string{"productName": "Widget"}),
		},
		{
			name:    "dating inquiry context",
			context: DatingInquiryContext("profile-1", nil),
		},
		{
			name:    "hotel inquiry context",
			context: HotelInquiryContext("hotel-1", nil),
		},
		{
			name:    "restaurant inquiry context",
			context: RestaurantInquiryContext("rest-1", nil),
		},
		{
			name:    "general context carries no reference",
			context: GeneralContext(),
		},
		{
			name:    "support context carries no reference",
			context: SupportContext(),
		},
		{
			name:    "unknown type",
			context: &ConversationContext{Type: "payment"},
			wantErr: true,
		},
		{
			name:    "order context with a hotel reference",
			context: &ConversationContext{Type: ContextOrder, OrderID: "order-1", HotelID: "hotel-1"},
			wantErr: true,
		},
		{
			name:    "general context with a product reference",
			context: &ConversationContext{Type: ContextGeneral, ProductID: "prod-1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.context.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConversationParticipants(t *testing.T) {
	conversation := &Conversation{Participants: []string{"user-a", "user-b"}}

	assert.True(t, conversation.HasParticipant("user-a"))
	assert.True(t, conversation.HasParticipant("user-b"))
	assert.False(t, conversation.HasParticipant("user-c"))

	assert.Equal(t, "user-b", conversation.OtherParticipant("user-a"))
	assert.Equal(t, "user-a", conversation.OtherParticipant("user-b"))
	assert.Equal(t, "", conversation.OtherParticipant("user-c"),
		"a non-participant has no counterpart")
}
