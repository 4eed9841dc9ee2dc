package cli

import (
	"context"
	"os"

	"github.com/mkornilov/tastebook/internal/client/services"
)

// MyPage prints the logged-in member's profile block.
func (a *App) MyPage(ctx context.Context) error {
	info, err := a.members.MyPage(ctx)
	if err != nil {
		printlnFn("Could not load profile:", err)
		return err
	}
	printlnFn(info.Nickname, "<"+info.Email+">")
	if info.Introduction != "" {
		printlnFn(info.Introduction)
	}
	printlnFn("Recipes:", info.RecipeCount,
		"Followers:", info.FollowerCount,
		"Following:", info.FollowingCount)
	return nil
}

// Follows opens (or pages through) a follower/following list. The list type
// and target member are asked once; repeated calls keep paging.
func (a *App) Follows(ctx context.Context) error {
	if a.follows == nil || a.follows.IsLastPage() && len(a.follows.Entries()) == 0 {
		target, err := GetID(a.reader, "Enter member id (0 for yourself)", os.Stdout)
		if err != nil {
			return err
		}
		if target == 0 {
			target = a.auth.MemberID(ctx)
		}
		listType, err := GetSimpleText(a.reader, "List 'follower' or 'following'?", os.Stdout)
		if err != nil {
			return err
		}
		if listType != services.FollowListFollower {
			listType = services.FollowListFollowing
		}
		a.follows = services.NewFollowService(a.members, target, listType, a.config.FollowPageSize, a.log)
	}

	if a.follows.IsLastPage() && len(a.follows.Entries()) > 0 {
		printlnFn("End of list")
	} else if err := a.follows.LoadMore(ctx); err != nil {
		a.follows.AckFailure()
		printlnFn("Could not load list:", err)
		return err
	}

	for _, e := range a.follows.Entries() {
		printlnFn(formatFollow(e))
	}
	return nil
}

// Follow toggles the follow relationship with a member on the open list.
func (a *App) Follow(ctx context.Context) error {
	if a.follows == nil {
		printlnFn("Open a follow list first ('follows')")
		return nil
	}
	id, err := GetID(a.reader, "Enter member id", os.Stdout)
	if err != nil {
		return err
	}
	active, err := a.follows.Toggle(ctx, id)
	if err != nil {
		printlnFn("Could not toggle follow:", err)
		return err
	}
	if active {
		printlnFn("Following")
	} else {
		printlnFn("Unfollowed")
	}
	return nil
}

// Asks loads the next page of the member's support tickets.
func (a *App) Asks(ctx context.Context) error {
	if a.asks.IsLastPage() && len(a.asks.Asks()) > 0 {
		printlnFn("End of list")
	} else if err := a.asks.LoadMore(ctx); err != nil {
		printlnFn("Could not load tickets:", err)
		return err
	}

	for _, t := range a.asks.Asks() {
		status := "open"
		if t.Answered {
			status = "answered"
		}
		printlnFn("#", t.ID, t.Title, "["+status+"]")
		if t.Answered && t.Answer != "" {
			printlnFn("  ", t.Answer)
		}
	}
	return nil
}

// Ask files a new support ticket.
func (a *App) Ask(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Enter message", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.asks.Create(ctx, title, content); err != nil {
		printlnFn("Could not file the ticket:", err)
		return err
	}
	printlnFn("Filed")
	return nil
}
