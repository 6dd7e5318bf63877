package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"vendora/internal/domain/entity"
	"vendora/internal/domain/repository"
	"vendora/pkg/errors"
	"vendora/pkg/logger"
)

type firestoreConversationRepository struct {
	client *firestore.Client
}

func NewFirestoreConversationRepository(client *firestore.Client) repository.ConversationRepository {
	return &firestoreConversationRepository{
		client: client,
	}
}

func (r *firestoreConversationRepository) conversations() *firestore.CollectionRef {
	return r.client.Collection("conversations")
}

func (r *firestoreConversationRepository) messages(conversationID string) *firestore.CollectionRef {
	return r.conversations().Doc(conversationID).Collection("messages")
}

func (r *firestoreConversationRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	if conversation.ID == "" {
		conversation.ID = uuid.New().String()
	}

	now := time.Now()
	conversation.CreatedAt = now
	conversation.UpdatedAt = now

	if conversation.UnreadCount == nil {
		conversation.UnreadCount = make(map[string]int)
	}
	for _, p := range conversation.Participants {
		if _, ok := conversation.UnreadCount[p]; !ok {
			conversation.UnreadCount[p] = 0
		}
	}
	if conversation.Status == "" {
		conversation.Status = entity.ConversationActive
	}

	_, err := r.conversations().Doc(conversation.ID).Set(ctx, conversation)
	if err != nil {
		return errors.Internal("Failed to create conversation", err)
	}

	return nil
}

func (r *firestoreConversationRepository) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	doc, err := r.conversations().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Conversation", err)
		}
		return nil, errors.FetchFailed("Failed to get conversation", err)
	}

	var conversation entity.Conversation
	if err := doc.DataTo(&conversation); err != nil {
		return nil, errors.Internal("Failed to parse conversation data", err)
	}

	return &conversation, nil
}

func (r *firestoreConversationRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error) {
	query := r.conversations().
		Where("participants", "array-contains", userID).
		OrderBy("updatedAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Firestore error while fetching conversations for user %s: %v", userID, err)
		return nil, 0, errors.FetchFailed("Failed to fetch conversations", err)
	}

	total := int64(len(allDocs))

	// Pagination applied in-memory; a single user's conversation count is
	// small enough that the extra reads do not matter.
	start := offset
	end := len(allDocs)
	if limit > 0 {
		end = start + limit
		if end > len(allDocs) {
			end = len(allDocs)
		}
	}
	if start > len(allDocs) {
		start = len(allDocs)
	}

	var conversations []*entity.Conversation
	for i := start; i < end; i++ {
		var conversation entity.Conversation
		if err := allDocs[i].DataTo(&conversation); err != nil {
			logger.Warn("Skipping malformed conversation doc for user %s: %v", userID, err)
			continue
		}
		conversations = append(conversations, &conversation)
	}

	return conversations, total, nil
}

func (r *firestoreConversationRepository) Update(ctx context.Context, conversation *entity.Conversation) error {
	conversation.UpdatedAt = time.Now()

	_, err := r.conversations().Doc(conversation.ID).Set(ctx, conversation)
	if err != nil {
		return errors.Internal("Failed to update conversation", err)
	}

	return nil
}

// AppendMessage writes the message row and the parent conversation's
// lastMessage/unreadCount/updatedAt in one Firestore transaction, so a
// reader can never observe the counter and the preview out of step.
func (r *firestoreConversationRepository) AppendMessage(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	now := time.Now()
	message.CreatedAt = now
	message.UpdatedAt = now

	convRef := r.conversations().Doc(message.ConversationID)
	msgRef := r.messages(message.ConversationID).Doc(message.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(convRef)
		if err != nil {
			return err
		}

		var conversation entity.Conversation
		if err := doc.DataTo(&conversation); err != nil {
			return err
		}

		if conversation.UnreadCount == nil {
			conversation.UnreadCount = make(map[string]int)
		}
		conversation.UnreadCount[message.ReceiverID]++
		conversation.LastMessage = &entity.LastMessage{
			Content:   message.PreviewContent(),
			Type:      message.Type,
			SenderID:  message.SenderID,
			CreatedAt: message.CreatedAt,
		}
		conversation.UpdatedAt = now

		if err := tx.Set(msgRef, message); err != nil {
			return err
		}
		return tx.Set(convRef, &conversation)
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Conversation", err)
		}
		return errors.SendFailed("Failed to append message", err)
	}

	return nil
}

func (r *firestoreConversationRepository) ListMessages(ctx context.Context, conversationID string, limit int) ([]*entity.Message, error) {
	query := r.messages(conversationID).OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	var messages []*entity.Message

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.Error("Firestore error while iterating messages for conversation %s: %v", conversationID, err)
			return nil, errors.FetchFailed("Failed to fetch messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Internal("Failed to parse message data", err)
		}

		messages = append(messages, &message)
	}

	return messages, nil
}

// MarkConversationRead flips every unread message addressed to userID and
// zeroes the user's counter in a single write batch.
func (r *firestoreConversationRepository) MarkConversationRead(ctx context.Context, conversationID, userID string) error {
	docs, err := r.messages(conversationID).
		Where("receiverId", "==", userID).
		Where("isRead", "==", false).
		Documents(ctx).GetAll()
	if err != nil {
		return errors.FetchFailed("Failed to query unread messages", err)
	}

	now := time.Now()
	batch := r.client.Batch()
	for _, doc := range docs {
		batch.Update(doc.Ref, []firestore.Update{
			{Path: "isRead", Value: true},
			{Path: "updatedAt", Value: now},
		})
	}
	batch.Update(r.conversations().Doc(conversationID), []firestore.Update{
		{FieldPath: firestore.FieldPath{"unreadCount", userID}, Value: 0},
	})

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Internal("Failed to mark conversation as read", err)
	}

	return nil
}
