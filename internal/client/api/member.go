package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mkornilov/tastebook/internal/client/models"
	"github.com/mkornilov/tastebook/internal/logging"
)

// MemberService talks to the member server: authentication, account
// management, follow relationships and support tickets.
type MemberService struct {
	base string
	hc   Doer
	log  logging.Logger
}

func NewMemberService(base string, hc Doer, log logging.Logger) *MemberService {
	return &MemberService{base: strings.TrimRight(base, "/"), hc: hc, log: log}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges email + password for the credential triple. Persisting the
// triple is the auth service's job, not this client's.
func (s *MemberService) Login(ctx context.Context, email, password string) (models.Credentials, error) {
	return postSingle[models.Credentials](ctx, s.hc, http.MethodPost, s.base+"/auth/login", nil,
		loginRequest{Email: email, Password: password})
}

// Logout invalidates the server-side session for the current token.
func (s *MemberService) Logout(ctx context.Context) error {
	return doVoid(ctx, s.hc, http.MethodPost, s.base+"/member/logout", nil, nil)
}

// Deactivate permanently closes the logged-in account.
func (s *MemberService) Deactivate(ctx context.Context) error {
	return doVoid(ctx, s.hc, http.MethodPost, s.base+"/member/deactivate", nil, nil)
}

// SignupForm carries the signup fields plus an optional profile image.
type SignupForm struct {
	Email        string
	Password     string
	Nickname     string
	Introduction string
	ProfileImage *FilePart
}

// Signup registers a new member. The endpoint takes multipart/form-data so
// the profile image can travel alongside the scalar fields.
func (s *MemberService) Signup(ctx context.Context, form SignupForm) error {
	f := &Form{}
	f.AddField("email", form.Email)
	f.AddField("password", form.Password)
	f.AddField("nickname", form.Nickname)
	f.AddField("introduction", form.Introduction)
	if form.ProfileImage != nil {
		f.AddFile("profileImage", form.ProfileImage.Name, form.ProfileImage.Data)
	}
	_, err := postMultipart[struct{}](ctx, s.hc, http.MethodPost, s.base+"/member/signUp", f)
	return err
}

// MyPage fetches the profile block of the account screen.
func (s *MemberService) MyPage(ctx context.Context) (models.MyPageInfo, error) {
	return getSingle[models.MyPageInfo](ctx, s.hc, s.base+"/member/myPage", nil)
}

// FollowList returns one page of followers ("follower") or followings
// ("following") of the target member.
func (s *MemberService) FollowList(ctx context.Context, targetMemberID int64, listType string, page, size int) (models.Page[models.FollowEntry], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	q.Set("targetMemberId", strconv.FormatInt(targetMemberID, 10))
	q.Set("type", listType)
	return getPage[models.FollowEntry](ctx, s.hc, s.base+"/member/myPage/followList", q)
}

type followToggleRequest struct {
	TargetMemberID int64 `json:"targetMemberId"`
	FollowID       int64 `json:"followId"`
}

type toggleResult struct {
	ID int64 `json:"id"`
}

// ToggleFollow sends the current follow relationship id (0 when none) and
// lets the server decide add-vs-remove. A non-zero returned id means the
// relationship now exists; zero means it was removed. The client never
// computes the direction itself.
func (s *MemberService) ToggleFollow(ctx context.Context, targetMemberID, followID int64) (int64, error) {
	res, err := postSingle[toggleResult](ctx, s.hc, http.MethodPost, s.base+"/member/follow/totalFollow", nil,
		followToggleRequest{TargetMemberID: targetMemberID, FollowID: followID})
	if err != nil {
		return 0, err
	}
	return res.ID, nil
}

// Asks returns one page of the member's support tickets.
func (s *MemberService) Asks(ctx context.Context, page, size int) (models.Page[models.Ask], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return getPage[models.Ask](ctx, s.hc, s.base+"/member/ask/list", q)
}

type askRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateAsk files a new support ticket.
func (s *MemberService) CreateAsk(ctx context.Context, title, content string) error {
	return doVoid(ctx, s.hc, http.MethodPost, s.base+"/member/ask", nil,
		askRequest{Title: title, Content: content})
}
