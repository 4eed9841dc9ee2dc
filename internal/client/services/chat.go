package services

import (
	"context"

	"github.com/mkornilov/tastebook/internal/client/api"
	"github.com/mkornilov/tastebook/internal/client/credentials"
	"github.com/mkornilov/tastebook/internal/client/models"
	"github.com/mkornilov/tastebook/internal/common"
	"github.com/mkornilov/tastebook/internal/logging"
)

// chatAPI is the slice of the chat client the chat screens need.
type chatAPI interface {
	Rooms(ctx context.Context, memberID int64) ([]models.ChatRoom, error)
	CreateRoom(ctx context.Context, creatorID, participantID int64) (models.ChatRoom, error)
	History(ctx context.Context, roomID string, page, size int) (models.Page[models.ChatMessage], error)
	Stream(ctx context.Context, roomID string) (*api.RoomStream, error)
}

// ChatService is the chat screen's service: it resolves the logged-in
// member id from the credential store so callers never pass it.
type ChatService struct {
	chat  chatAPI
	store credentials.Store
	log   logging.Logger
}

func NewChatService(chat chatAPI, store credentials.Store, log logging.Logger) *ChatService {
	return &ChatService{chat: chat, store: store, log: log}
}

func (s *ChatService) memberID(ctx context.Context) (int64, error) {
	id, err := credentials.MemberID(ctx, s.store)
	if err != nil || id == 0 {
		return 0, common.ErrMissingCredentials
	}
	return id, nil
}

// Rooms lists the member's chat rooms.
func (s *ChatService) Rooms(ctx context.Context) ([]models.ChatRoom, error) {
	id, err := s.memberID(ctx)
	if err != nil {
		return nil, err
	}
	return s.chat.Rooms(ctx, id)
}

// OpenRoom opens (or returns the existing) direct-message room with the
// other member.
func (s *ChatService) OpenRoom(ctx context.Context, participantID int64) (models.ChatRoom, error) {
	id, err := s.memberID(ctx)
	if err != nil {
		return models.ChatRoom{}, err
	}
	return s.chat.CreateRoom(ctx, id, participantID)
}

// History returns one page of a room's message backlog.
func (s *ChatService) History(ctx context.Context, roomID string, page, size int) (models.Page[models.ChatMessage], error) {
	return s.chat.History(ctx, roomID, page, size)
}

// Watch opens the live message stream for a room.
func (s *ChatService) Watch(ctx context.Context, roomID string) (*api.RoomStream, error) {
	if _, err := s.memberID(ctx); err != nil {
		return nil, err
	}
	return s.chat.Stream(ctx, roomID)
}

// Send writes one message into an open room stream, stamped with the
// logged-in member id.
func (s *ChatService) Send(ctx context.Context, stream *api.RoomStream, roomID, content string) error {
	id, err := s.memberID(ctx)
	if err != nil {
		return err
	}
	return stream.Send(models.ChatMessage{RoomID: roomID, SenderID: id, Content: content})
}
