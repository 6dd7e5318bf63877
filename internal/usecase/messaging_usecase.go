package usecase

import (
	"context"
	"strings"

	"vendora/internal/domain/entity"
	"vendora/internal/domain/repository"
	"vendora/pkg/errors"
	"vendora/pkg/logger"
)

// DefaultMaxAttachmentBytes caps attachment size before any upload attempt.
const DefaultMaxAttachmentBytes = 25 * 1024 * 1024

type MessagingUseCase struct {
	conversationRepo   repository.ConversationRepository
	userRepo           repository.UserRepository
	maxAttachmentBytes int64
}

func NewMessagingUseCase(
	conversationRepo repository.ConversationRepository,
	userRepo repository.UserRepository,
	maxAttachmentBytes int64,
) *MessagingUseCase {
	if maxAttachmentBytes <= 0 {
		maxAttachmentBytes = DefaultMaxAttachmentBytes
	}
	return &MessagingUseCase{
		conversationRepo:   conversationRepo,
		userRepo:           userRepo,
		maxAttachmentBytes: maxAttachmentBytes,
	}
}

// GetOrCreateConversation resolves the single conversation for the unordered
// pair (userID, otherUserID), creating it on first contact. When a context or
// product reference is supplied for an existing conversation it overwrites
// the stored one (last-write-wins). The second return value reports whether a
// new conversation was created.
func (uc *MessagingUseCase) GetOrCreateConversation(
	ctx context.Context,
	userID, otherUserID string,
	convContext *entity.ConversationContext,
	productRef *entity.ProductRef,
) (*entity.Conversation, bool, error) {
	if userID == "" {
		return nil, false, errors.AuthRequired("Sign in to start a conversation", nil)
	}
	if userID == otherUserID {
		return nil, false, errors.SelfContact(nil)
	}
	if convContext != nil {
		if err := convContext.Validate(); err != nil {
			return nil, false, errors.ValidationFailed("Invalid conversation context", err)
		}
	}

	existing, err := uc.findConversationByPair(ctx, userID, otherUserID)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, false, err
	}
	if existing != nil {
		changed := false
		if convContext != nil {
			existing.Context = convContext
			changed = true
		}
		if productRef != nil {
			existing.ProductContext = productRef
			changed = true
		}
		if changed {
			if err := uc.conversationRepo.Update(ctx, existing); err != nil {
				return nil, false, err
			}
		}
		return existing, false, nil
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, false, errors.NotFound("User", err)
	}
	otherUser, err := uc.userRepo.GetByID(ctx, otherUserID)
	if err != nil {
		return nil, false, errors.NotFound("Recipient", err)
	}

	conversation := &entity.Conversation{
		Participants: []string{userID, otherUserID},
		ParticipantsData: map[string]entity.ParticipantData{
			userID:      user.ParticipantData(),
			otherUserID: otherUser.ParticipantData(),
		},
		UnreadCount: map[string]int{userID: 0, otherUserID: 0},
		Status:      entity.ConversationActive,
	}
	// Optional fields stay absent unless a concrete value was supplied; no
	// null placeholders are ever written.
	if convContext != nil {
		conversation.Context = convContext
	}
	if productRef != nil {
		conversation.ProductContext = productRef
	}

	if err := uc.conversationRepo.Create(ctx, conversation); err != nil {
		return nil, false, err
	}

	return conversation, true, nil
}

// findConversationByPair scans the user's conversations for one that also
// contains otherUserID. A membership scan rather than a pair-keyed lookup:
// a single user's conversation count is small, and correctness (no duplicate
// pair) is the property that matters here.
func (uc *MessagingUseCase) findConversationByPair(ctx context.Context, userID, otherUserID string) (*entity.Conversation, error) {
	conversations, _, err := uc.conversationRepo.ListByUserID(ctx, userID, -1, 0)
	if err != nil {
		return nil, err
	}

	for _, conversation := range conversations {
		if len(conversation.Participants) == 2 && conversation.HasParticipant(otherUserID) {
			return conversation, nil
		}
	}

	return nil, errors.NotFound("Conversation", nil)
}

type SendMessageInput struct {
	ConversationID string
	Content        string
	Type           entity.MessageType
	FileURL        string
	FileName       string
	FileSize       int64
	ThumbnailURL   string
	ProductRef     *entity.ProductRef
}

// SendMessage appends a message to the conversation. The repository applies
// the message row and the conversation's lastMessage/unreadCount/updatedAt
// as one atomic step; on failure nothing is persisted and the caller decides
// whether to retry.
func (uc *MessagingUseCase) SendMessage(ctx context.Context, senderID string, input SendMessageInput) (*entity.Message, error) {
	if senderID == "" {
		return nil, errors.AuthRequired("Sign in to send messages", nil)
	}

	messageType := input.Type
	if messageType == "" {
		messageType = entity.MessageText
	}
	if !messageType.IsValid() {
		return nil, errors.ValidationFailed("Unknown message type", nil)
	}
	if messageType == entity.MessageText && strings.TrimSpace(input.Content) == "" {
		return nil, errors.ValidationFailed("Message content must not be empty", nil)
	}
	if input.FileSize > uc.maxAttachmentBytes {
		return nil, errors.ValidationFailed("Attachment exceeds the maximum allowed size", nil)
	}

	conversation, err := uc.conversationRepo.GetByID(ctx, input.ConversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(senderID) {
		return nil, errors.Forbidden("User is not a participant in this conversation", nil)
	}

	message := &entity.Message{
		ConversationID: input.ConversationID,
		SenderID:       senderID,
		ReceiverID:     conversation.OtherParticipant(senderID),
		Content:        input.Content,
		Type:           messageType,
		FileURL:        input.FileURL,
		FileName:       input.FileName,
		FileSize:       input.FileSize,
		ThumbnailURL:   input.ThumbnailURL,
		ProductRef:     input.ProductRef,
		IsRead:         false,
	}

	if err := uc.conversationRepo.AppendMessage(ctx, message); err != nil {
		logger.Error("SendMessage: failed to append message to conversation %s: %v", input.ConversationID, err)
		return nil, err
	}

	return message, nil
}

func (uc *MessagingUseCase) GetConversation(ctx context.Context, userID, conversationID string) (*entity.Conversation, error) {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, errors.Forbidden("User is not a participant in this conversation", nil)
	}
	return conversation, nil
}

// GetUserConversations returns the user's inbox, most recently active first.
func (uc *MessagingUseCase) GetUserConversations(ctx context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error) {
	return uc.conversationRepo.ListByUserID(ctx, userID, limit, offset)
}

// GetConversationMessages returns up to limit messages in chronological
// ascending order. Storage hands back the newest page first; it is reversed
// here so consumers always append new messages at the bottom.
func (uc *MessagingUseCase) GetConversationMessages(ctx context.Context, userID, conversationID string, limit int) ([]*entity.Message, error) {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, errors.Forbidden("User is not a participant in this conversation", nil)
	}

	messages, err := uc.conversationRepo.ListMessages(ctx, conversationID, limit)
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// MarkAsRead flips every unread message addressed to userID in the
// conversation and zeroes the user's unread counter. Idempotent: a second
// call with nothing unread is a no-op.
func (uc *MessagingUseCase) MarkAsRead(ctx context.Context, userID, conversationID string) error {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return err
	}
	if !conversation.HasParticipant(userID) {
		return errors.Forbidden("User is not a participant in this conversation", nil)
	}

	return uc.conversationRepo.MarkConversationRead(ctx, conversationID, userID)
}

// GetUnreadTotal sums the user's unread counters across all conversations,
// feeding the aggregate badge.
func (uc *MessagingUseCase) GetUnreadTotal(ctx context.Context, userID string) (int, error) {
	conversations, _, err := uc.conversationRepo.ListByUserID(ctx, userID, -1, 0)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, conversation := range conversations {
		total += conversation.UnreadCount[userID]
	}
	return total, nil
}
