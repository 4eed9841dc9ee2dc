package models

// ChatRoom is one direct-message room between two members.
type ChatRoom struct {
	ID            string `json:"roomId"`
	CreatorID     int64  `json:"creatorId"`
	ParticipantID int64  `json:"participantId"`
	LastMessage   string `json:"lastMessage"`
	UpdatedAt     string `json:"updatedAt"`
}

// ChatMessage is one message inside a room, both in the paged history and
// on the live stream.
type ChatMessage struct {
	RoomID   string `json:"roomId"`
	SenderID int64  `json:"senderId"`
	Content  string `json:"content"`
	SentAt   string `json:"sentAt"`
}

// SearchHit is one suggestion from the free-text ingredient/hashtag search.
type SearchHit struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}
