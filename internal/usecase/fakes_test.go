package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"vendora/internal/domain/entity"
	"vendora/pkg/errors"
)

// fakeConversationRepository is an in-memory stand-in that keeps the same
// observable contract as the Firestore adapter: inbox ordered by updatedAt
// descending, message pages newest first, atomic-looking append updates.
type fakeConversationRepository struct {
	mu            sync.Mutex
	conversations map[string]*entity.Conversation
	messages      map[string][]*entity.Message
	seq           int
	base          time.Time
}

func newFakeConversationRepository() *fakeConversationRepository {
	return &fakeConversationRepository{
		conversations: make(map[string]*entity.Conversation),
		messages:      make(map[string][]*entity.Message),
		base:          time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// nextTime hands out strictly increasing timestamps so ordering assertions
// are deterministic.
func (r *fakeConversationRepository) nextTime() time.Time {
	r.seq++
	return r.base.Add(time.Duration(r.seq) * time.Second)
}

func (r *fakeConversationRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if conversation.ID == "" {
		conversation.ID = fmt.Sprintf("conv-%d", len(r.conversations)+1)
	}
	now := r.nextTime()
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

	r.conversations[conversation.ID] = conversation
	return nil
}

func (r *fakeConversationRepository) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conversation, ok := r.conversations[id]
	if !ok {
		return nil, errors.NotFound("Conversation", nil)
	}
	return conversation, nil
}

func (r *fakeConversationRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*entity.Conversation
	for _, conversation := range r.conversations {
		if conversation.HasParticipant(userID) {
			result = append(result, conversation)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})

	total := int64(len(result))
	if offset > len(result) {
		offset = len(result)
	}
	result = result[offset:]
	if limit > 0 && limit < len(result) {
		result = result[:limit]
	}
	return result, total, nil
}

func (r *fakeConversationRepository) Update(ctx context.Context, conversation *entity.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conversations[conversation.ID]; !ok {
		return errors.NotFound("Conversation", nil)
	}
	conversation.UpdatedAt = r.nextTime()
	r.conversations[conversation.ID] = conversation
	return nil
}

func (r *fakeConversationRepository) AppendMessage(ctx context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	conversation, ok := r.conversations[message.ConversationID]
	if !ok {
		return errors.NotFound("Conversation", nil)
	}

	now := r.nextTime()
	message.ID = fmt.Sprintf("msg-%d", r.seq)
	message.CreatedAt = now
	message.UpdatedAt = now

	r.messages[message.ConversationID] = append(r.messages[message.ConversationID], message)

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
	return nil
}

func (r *fakeConversationRepository) ListMessages(ctx context.Context, conversationID string, limit int) ([]*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.messages[conversationID]

	// Newest first, like the Firestore query the real adapter issues.
	page := make([]*entity.Message, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		page = append(page, stored[i])
		if limit > 0 && len(page) == limit {
			break
		}
	}
	return page, nil
}

func (r *fakeConversationRepository) MarkConversationRead(ctx context.Context, conversationID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	conversation, ok := r.conversations[conversationID]
	if !ok {
		return errors.NotFound("Conversation", nil)
	}

	for _, message := range r.messages[conversationID] {
		if message.ReceiverID == userID && !message.IsRead {
			message.IsRead = true
			message.UpdatedAt = r.nextTime()
		}
	}
	conversation.UnreadCount[userID] = 0
	return nil
}

type fakeUserRepository struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepository(users ...*entity.User) *fakeUserRepository {
	r := &fakeUserRepository{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepository) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

type fakeProductRepository struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

func (r *fakeProductRepository) List(ctx context.Context, limit int) ([]*entity.Product, error) {
	var result []*entity.Product
	for _, p := range r.products {
		result = append(result, p)
	}
	return result, nil
}

type fakeHotelRepository struct {
	hotels map[string]*entity.Hotel
}

func (r *fakeHotelRepository) GetByID(ctx context.Context, id string) (*entity.Hotel, error) {
	hotel, ok := r.hotels[id]
	if !ok {
		return nil, errors.NotFound("Hotel", nil)
	}
	return hotel, nil
}

func (r *fakeHotelRepository) List(ctx context.Context, limit int) ([]*entity.Hotel, error) {
	var result []*entity.Hotel
	for _, h := range r.hotels {
		result = append(result, h)
	}
	return result, nil
}

type fakeRestaurantRepository struct {
	restaurants map[string]*entity.Restaurant
}

func (r *fakeRestaurantRepository) GetByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	restaurant, ok := r.restaurants[id]
	if !ok {
		return nil, errors.NotFound("Restaurant", nil)
	}
	return restaurant, nil
}

func (r *fakeRestaurantRepository) List(ctx context.Context, limit int) ([]*entity.Restaurant, error) {
	var result []*entity.Restaurant
	for _, rest := range r.restaurants {
		result = append(result, rest)
	}
	return result, nil
}

type fakeDatingProfileRepository struct {
	profiles map[string]*entity.DatingProfile
}

func (r *fakeDatingProfileRepository) GetByID(ctx context.Context, id string) (*entity.DatingProfile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, errors.NotFound("Dating profile", nil)
	}
	return profile, nil
}

func (r *fakeDatingProfileRepository) List(ctx context.Context, limit int) ([]*entity.DatingProfile, error) {
	var result []*entity.DatingProfile
	for _, p := range r.profiles {
		result = append(result, p)
	}
	return result, nil
}
