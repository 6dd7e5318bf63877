package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"vendora/internal/domain/entity"
	"vendora/internal/usecase"
	"vendora/pkg/errors"
	"vendora/pkg/response"
	"vendora/pkg/utils"
)

type ConversationHandler struct {
	messaging *usecase.MessagingUseCase
}

func NewConversationHandler(messaging *usecase.MessagingUseCase) *ConversationHandler {
	return &ConversationHandler{
		messaging: messaging,
	}
}

type contextRequest struct {
	Type            string            `json:"type" validate:"required,oneof=order product_inquiry dating_inquiry hotel_inquiry restaurant_inquiry general support"`
	OrderID         string            `json:"order_id,omitempty"`
	ProductID       string            `json:"product_id,omitempty"`
	DatingProfileID string            `json:"dating_profile_id,omitempty"`
	HotelID         string            `json:"hotel_id,omitempty"`
	RestaurantID    string            `json:"restaurant_id,omitempty"`
	Meta            map[string]string `json:"meta,omitempty"`
}

func (r *contextRequest) toEntity() (*entity.ConversationContext, error) {
	ctx := &entity.ConversationContext{
		Type:            entity.ContextType(r.Type),
		OrderID:         r.OrderID,
		ProductID:       r.ProductID,
		DatingProfileID: r.DatingProfileID,
		HotelID:         r.HotelID,
		RestaurantID:    r.RestaurantID,
		Meta:            r.Meta,
	}
	if err := ctx.Validate(); err != nil {
		return nil, errors.ValidationFailed("Invalid conversation context", err)
	}
	return ctx, nil
}

type createConversationRequest struct {
	RecipientID    string             `json:"recipient_id" validate:"required"`
	Context        *contextRequest    `json:"context,omitempty"`
	ProductContext *entity.ProductRef `json:"product_context,omitempty"`
	InitialMessage string             `json:"initial_message,omitempty"`
}

// CreateConversation resolves or creates the conversation with the recipient
// and optionally sends an opening message.
func (h *ConversationHandler) CreateConversation(c echo.Context) error {
	var req createConversationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	var convContext *entity.ConversationContext
	if req.Context != nil {
		ctx, err := req.Context.toEntity()
		if err != nil {
			return response.Error(c, err)
		}
		convContext = ctx
	}

	conversation, created, err := h.messaging.GetOrCreateConversation(
		c.Request().Context(), userID, req.RecipientID, convContext, req.ProductContext)
	if err != nil {
		return response.Error(c, err)
	}

	if req.InitialMessage != "" {
		if _, err := h.messaging.SendMessage(c.Request().Context(), userID, usecase.SendMessageInput{
			ConversationID: conversation.ID,
			Content:        req.InitialMessage,
			Type:           entity.MessageText,
		}); err != nil {
			return response.Error(c, err)
		}
	}

	if created {
		return response.Created(c, conversation)
	}
	return response.Success(c, conversation)
}

// GetUserConversations returns the caller's inbox, most recently active
// first.
func (h *ConversationHandler) GetUserConversations(c echo.Context) error {
	userID := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	conversations, total, err := h.messaging.GetUserConversations(
		c.Request().Context(), userID, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, conversations, total, params.Page, params.PageSize)
}

func (h *ConversationHandler) GetConversationByID(c echo.Context) error {
	userID := c.Get("uid").(string)

	conversation, err := h.messaging.GetConversation(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conversation)
}

type sendMessageRequest struct {
	Content      string             `json:"content"`
	Type         string             `json:"type" validate:"omitempty,oneof=text image video file product quote_request"`
	FileURL      string             `json:"file_url,omitempty" validate:"omitempty,url"`
	FileName     string             `json:"file_name,omitempty"`
	FileSize     int64              `json:"file_size,omitempty"`
	ThumbnailURL string             `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
	ProductRef   *entity.ProductRef `json:"product_reference,omitempty"`
}

func (h *ConversationHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	message, err := h.messaging.SendMessage(c.Request().Context(), userID, usecase.SendMessageInput{
		ConversationID: c.Param("id"),
		Content:        req.Content,
		Type:           entity.MessageType(req.Type),
		FileURL:        req.FileURL,
		FileName:       req.FileName,
		FileSize:       req.FileSize,
		ThumbnailURL:   req.ThumbnailURL,
		ProductRef:     req.ProductRef,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

// GetConversationMessages returns the latest page of messages in
// chronological ascending order.
func (h *ConversationHandler) GetConversationMessages(c echo.Context) error {
	userID := c.Get("uid").(string)

	limit := 50
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	messages, err := h.messaging.GetConversationMessages(c.Request().Context(), userID, c.Param("id"), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

func (h *ConversationHandler) MarkAsRead(c echo.Context) error {
	userID := c.Get("uid").(string)

	if err := h.messaging.MarkAsRead(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "read"})
}

func (h *ConversationHandler) GetUnreadCount(c echo.Context) error {
	userID := c.Get("uid").(string)

	total, err := h.messaging.GetUnreadTotal(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int{"unread_count": total})
}
