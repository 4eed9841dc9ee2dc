package models

// MyPageInfo is the profile block of the account screen.
type MyPageInfo struct {
	MemberID       int64  `json:"memberId"`
	Email          string `json:"email"`
	Nickname       string `json:"nickname"`
	Introduction   string `json:"introduction"`
	ProfileURL     string `json:"profileImageUrl"`
	FollowerCount  int64  `json:"followerCount"`
	FollowingCount int64  `json:"followingCount"`
	RecipeCount    int64  `json:"recipeCount"`
}

// FollowEntry is one row of the follower/following list. FollowID is the id
// of the caller's follow relationship with the listed member, 0 when absent.
type FollowEntry struct {
	MemberID   int64  `json:"memberId"`
	Nickname   string `json:"nickname"`
	ProfileURL string `json:"profileImageUrl"`
	FollowID   int64  `json:"followId"`
}

// Ask is one support ticket of the logged-in member.
type Ask struct {
	ID        int64  `json:"askId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Answered  bool   `json:"answerYn"`
	Answer    string `json:"answer"`
	CreatedAt string `json:"createDate"`
}
