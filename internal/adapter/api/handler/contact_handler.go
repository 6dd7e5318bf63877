package handler

import (
	"github.com/labstack/echo/v4"

	"vendora/internal/usecase"
	"vendora/pkg/response"
)

type ContactHandler struct {
	contact *usecase.ContactUseCase
}

func NewContactHandler(contact *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{
		contact: contact,
	}
}

type contactRequest struct {
	Action        string `json:"action" validate:"required,oneof=product_inquiry quote_request hotel_contact restaurant_contact dating_contact order_thread"`
	ListingID     string `json:"listing_id,omitempty"`
	OrderID       string `json:"order_id,omitempty"`
	CounterpartID string `json:"counterpart_id,omitempty"`
	Message       string `json:"message,omitempty"`
}

// StartContact opens (or reuses) a conversation with the party behind a
// listing and sends the opening message.
func (h *ContactHandler) StartContact(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	result, err := h.contact.StartContact(c.Request().Context(), userID, usecase.ContactInput{
		Action:        usecase.ContactAction(req.Action),
		ListingID:     req.ListingID,
		OrderID:       req.OrderID,
		CounterpartID: req.CounterpartID,
		Message:       req.Message,
	})
	if err != nil {
		return response.Error(c, err)
	}

	if result.Created {
		return response.Created(c, result)
	}
	return response.Success(c, result)
}
