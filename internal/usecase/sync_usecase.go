package usecase

import (
	"context"
	"time"

	"vendora/internal/domain/entity"
	"vendora/internal/infrastructure/poller"
)

// SyncListener receives the results of polling ticks. Implemented by the
// client-side state store feeding the UI.
type SyncListener interface {
	ConversationsUpdated(conversations []*entity.Conversation)
	MessagesUpdated(conversationID string, messages []*entity.Message)
	UnreadCountUpdated(total int)
}

// SyncService keeps the inbox, the open conversation and the aggregate
// unread badge approximately live over plain request/response, one polling
// loop per screen concern. The three loops are independent: the badge may
// lag or lead the open thread's read state by up to one interval, which is
// the accepted staleness window of a poll-based design.
type SyncService struct {
	messaging *MessagingUseCase
	poller    *poller.Poller
	listener  SyncListener

	inboxInterval  time.Duration
	threadInterval time.Duration
	unreadInterval time.Duration

	messagePageSize int
}

func NewSyncService(
	messaging *MessagingUseCase,
	listener SyncListener,
	inboxInterval, threadInterval, unreadInterval time.Duration,
) *SyncService {
	return &SyncService{
		messaging:       messaging,
		poller:          poller.New(),
		listener:        listener,
		inboxInterval:   inboxInterval,
		threadInterval:  threadInterval,
		unreadInterval:  unreadInterval,
		messagePageSize: 50,
	}
}

func inboxKey(userID string) string          { return "inbox:" + userID }
func threadKey(conversationID string) string { return "thread:" + conversationID }
func unreadKey(userID string) string         { return "unread:" + userID }

// StartInboxSync polls the user's conversation list. Call StopInboxSync on
// screen teardown; a dangling loop would keep overwriting fresher state.
func (s *SyncService) StartInboxSync(userID string) {
	s.poller.Start(inboxKey(userID), s.inboxInterval, func(ctx context.Context) error {
		conversations, _, err := s.messaging.GetUserConversations(ctx, userID, -1, 0)
		if err != nil {
			return err
		}
		s.listener.ConversationsUpdated(conversations)
		return nil
	})
}

func (s *SyncService) StopInboxSync(userID string) {
	s.poller.Stop(inboxKey(userID))
}

// StartThreadSync polls the open conversation's messages.
func (s *SyncService) StartThreadSync(userID, conversationID string) {
	s.poller.Start(threadKey(conversationID), s.threadInterval, func(ctx context.Context) error {
		messages, err := s.messaging.GetConversationMessages(ctx, userID, conversationID, s.messagePageSize)
		if err != nil {
			return err
		}
		s.listener.MessagesUpdated(conversationID, messages)
		return nil
	})
}

func (s *SyncService) StopThreadSync(conversationID string) {
	s.poller.Stop(threadKey(conversationID))
}

// StartUnreadSync polls the aggregate unread badge.
func (s *SyncService) StartUnreadSync(userID string) {
	s.poller.Start(unreadKey(userID), s.unreadInterval, func(ctx context.Context) error {
		total, err := s.messaging.GetUnreadTotal(ctx, userID)
		if err != nil {
			return err
		}
		s.listener.UnreadCountUpdated(total)
		return nil
	})
}

func (s *SyncService) StopUnreadSync(userID string) {
	s.poller.Stop(unreadKey(userID))
}

// StopAll halts every loop this service started.
func (s *SyncService) StopAll() {
	s.poller.StopAll()
}
