package services

import (
	"context"
	"fmt"

	"github.com/mkornilov/tastebook/internal/client/models"
	"github.com/mkornilov/tastebook/internal/client/pager"
	"github.com/mkornilov/tastebook/internal/logging"
)

// followAPI is the slice of the member service the social screens need.
type followAPI interface {
	FollowList(ctx context.Context, targetMemberID int64, listType string, page, size int) (models.Page[models.FollowEntry], error)
	ToggleFollow(ctx context.Context, targetMemberID, followID int64) (int64, error)
	MyPage(ctx context.Context) (models.MyPageInfo, error)
}

// FollowListFollower and FollowListFollowing select which side of the
// relationship the follow list shows.
const (
	FollowListFollower  = "follower"
	FollowListFollowing = "following"
)

// FollowService holds one paged follower/following list and the follow
// toggle on its rows.
type FollowService struct {
	members        followAPI
	targetMemberID int64
	listType       string
	pager          *pager.Pager[models.FollowEntry]
	log            logging.Logger
}

// NewFollowService builds the follow list of the target member, showing the
// given side ("follower" or "following").
func NewFollowService(members followAPI, targetMemberID int64, listType string, pageSize int, log logging.Logger) *FollowService {
	s := &FollowService{members: members, targetMemberID: targetMemberID, listType: listType, log: log}
	s.pager = pager.New(s.fetchPage, pageSize, "")
	return s
}

func (s *FollowService) fetchPage(ctx context.Context, page, size int, _ string) (models.Page[models.FollowEntry], error) {
	return s.members.FollowList(ctx, s.targetMemberID, s.listType, page, size)
}

// LoadMore fetches the next page of the list.
func (s *FollowService) LoadMore(ctx context.Context) error {
	return s.pager.LoadMore(ctx)
}

// Entries returns the accumulated list rows.
func (s *FollowService) Entries() []models.FollowEntry { return s.pager.Items() }

// IsLastPage reports whether the list is fully loaded.
func (s *FollowService) IsLastPage() bool { return s.pager.IsLastPage() }

// LoadFailed reports the one-shot pagination failure flag.
func (s *FollowService) LoadFailed() bool { return s.pager.LoadFailed() }

// AckFailure clears the pagination failure flag.
func (s *FollowService) AckFailure() { s.pager.AckFailure() }

// Reset clears the accumulated list.
func (s *FollowService) Reset() { s.pager.Reset() }

// MyPage fetches the logged-in member's profile block.
func (s *FollowService) MyPage(ctx context.Context) (models.MyPageInfo, error) {
	return s.members.MyPage(ctx)
}

// Toggle sends the row's current follow id and lets the server decide the
// direction, then patches the loaded row with the outcome. Reports whether
// the caller now follows the member.
func (s *FollowService) Toggle(ctx context.Context, memberID int64) (bool, error) {
	var current int64
	found := false
	s.pager.Apply(func(items []models.FollowEntry) {
		for i := range items {
			if items[i].MemberID == memberID {
				current = items[i].FollowID
				found = true
				return
			}
		}
	})
	if !found {
		return false, fmt.Errorf("member %d is not loaded", memberID)
	}

	newID, err := s.members.ToggleFollow(ctx, memberID, current)
	if err != nil {
		return false, err
	}

	s.pager.Apply(func(items []models.FollowEntry) {
		for i := range items {
			if items[i].MemberID == memberID {
				items[i].FollowID = newID
			}
		}
	})
	return newID != 0, nil
}

// askAPI is the slice of the member service the support screen needs.
type askAPI interface {
	Asks(ctx context.Context, page, size int) (models.Page[models.Ask], error)
	CreateAsk(ctx context.Context, title, content string) error
}

// AskService holds the paged support-ticket list of the logged-in member.
type AskService struct {
	members askAPI
	pager   *pager.Pager[models.Ask]
	log     logging.Logger
}

func NewAskService(members askAPI, pageSize int, log logging.Logger) *AskService {
	s := &AskService{members: members, log: log}
	s.pager = pager.New(s.fetchPage, pageSize, "")
	return s
}

func (s *AskService) fetchPage(ctx context.Context, page, size int, _ string) (models.Page[models.Ask], error) {
	return s.members.Asks(ctx, page, size)
}

// LoadMore fetches the next page of tickets.
func (s *AskService) LoadMore(ctx context.Context) error {
	return s.pager.LoadMore(ctx)
}

// Asks returns the accumulated ticket list.
func (s *AskService) Asks() []models.Ask { return s.pager.Items() }

// IsLastPage reports whether the list is fully loaded.
func (s *AskService) IsLastPage() bool { return s.pager.IsLastPage() }

// Reset clears the accumulated list.
func (s *AskService) Reset() { s.pager.Reset() }

// Create files a new ticket and resets the list.
func (s *AskService) Create(ctx context.Context, title, content string) error {
	if err := s.members.CreateAsk(ctx, title, content); err != nil {
		return err
	}
	s.pager.Reset()
	return nil
}
