package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/mkornilov/tastebook/internal/client/credentials"
	"github.com/mkornilov/tastebook/internal/client/models"
	"github.com/mkornilov/tastebook/internal/common"
	"github.com/mkornilov/tastebook/internal/logging"
)

// ChatService talks to the chat server: room listing/creation, message
// history, and a live per-room message stream over a websocket.
type ChatService struct {
	base   string
	hc     Doer
	store  credentials.Store
	dialer *websocket.Dialer
	log    logging.Logger
}

func NewChatService(base string, hc Doer, store credentials.Store, log logging.Logger) *ChatService {
	return &ChatService{
		base:   strings.TrimRight(base, "/"),
		hc:     hc,
		store:  store,
		dialer: websocket.DefaultDialer,
		log:    log,
	}
}

// Rooms lists every chat room the member participates in.
func (s *ChatService) Rooms(ctx context.Context, memberID int64) ([]models.ChatRoom, error) {
	q := url.Values{}
	q.Set("memberId", strconv.FormatInt(memberID, 10))
	return getSingle[[]models.ChatRoom](ctx, s.hc, s.base+"/userChatRooms", q)
}

// CreateRoom opens (or returns the existing) direct-message room between the
// two members.
func (s *ChatService) CreateRoom(ctx context.Context, creatorID, participantID int64) (models.ChatRoom, error) {
	q := url.Values{}
	q.Set("creatorId", strconv.FormatInt(creatorID, 10))
	q.Set("participantId", strconv.FormatInt(participantID, 10))
	return postSingle[models.ChatRoom](ctx, s.hc, http.MethodPost, s.base+"/chatRoom", q, nil)
}

// History returns one page of a room's message backlog.
func (s *ChatService) History(ctx context.Context, roomID string, page, size int) (models.Page[models.ChatMessage], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return getPage[models.ChatMessage](ctx, s.hc, s.base+"/chatRooms/"+url.PathEscape(roomID)+"/messages", q)
}

// Stream opens the live message feed for a room. The websocket dial bypasses
// the HTTP transport chain, so the bearer header is attached here directly.
func (s *ChatService) Stream(ctx context.Context, roomID string) (*RoomStream, error) {
	wsURL, err := toWebSocketURL(s.base + "/ws/chatRooms/" + url.PathEscape(roomID))
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	if token, err := s.store.Load(ctx, credentials.KindAccessToken); err == nil && strings.TrimSpace(token) != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := s.dialer.DialContext(ctx, wsURL, header)
	if err != nil {
		if resp != nil && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			return nil, fmt.Errorf("chat stream rejected: %w", common.ErrUnauthorized)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	stream := &RoomStream{
		conn:     conn,
		messages: make(chan models.ChatMessage, 16),
		log:      s.log,
	}
	go stream.readLoop(ctx)
	return stream, nil
}

func toWebSocketURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid chat URL: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("invalid chat URL scheme %q", u.Scheme)
	}
	return u.String(), nil
}

// RoomStream is one open websocket to a chat room. Messages() closes when
// the peer hangs up, the context is cancelled, or Close is called.
type RoomStream struct {
	conn     *websocket.Conn
	messages chan models.ChatMessage
	log      logging.Logger
}

// Messages is the stream of incoming room messages.
func (r *RoomStream) Messages() <-chan models.ChatMessage {
	return r.messages
}

// Send writes one message into the room.
func (r *RoomStream) Send(msg models.ChatMessage) error {
	if err := r.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("failed to send chat message: %w", err)
	}
	return nil
}

// Close tears down the websocket; the read loop ends and Messages() closes.
func (r *RoomStream) Close() error {
	return r.conn.Close()
}

func (r *RoomStream) readLoop(ctx context.Context) {
	defer close(r.messages)
	// Closing the connection when the context ends unblocks ReadJSON.
	stop := context.AfterFunc(ctx, func() { _ = r.conn.Close() })
	defer stop()

	for {
		var msg models.ChatMessage
		if err := r.conn.ReadJSON(&msg); err != nil {
			if r.log != nil && ctx.Err() == nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				r.log.Debug(ctx, "chat stream closed", "error", err)
			}
			return
		}
		select {
		case r.messages <- msg:
		case <-ctx.Done():
			return
		}
	}
}
