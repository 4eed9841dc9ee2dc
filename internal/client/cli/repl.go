package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	Deactivate(ctx context.Context) error
	Feed(ctx context.Context) error
	Filter(ctx context.Context) error
	Show(ctx context.Context) error
	AddRecipe(ctx context.Context) error
	DeleteRecipe(ctx context.Context) error
	MyRecipes(ctx context.Context) error
	Bookmarks(ctx context.Context) error
	Likes(ctx context.Context) error
	Like(ctx context.Context) error
	Bookmark(ctx context.Context) error
	Comments(ctx context.Context) error
	AddComment(ctx context.Context) error
	DeleteComment(ctx context.Context) error
	MyPage(ctx context.Context) error
	Follows(ctx context.Context) error
	Follow(ctx context.Context) error
	Asks(ctx context.Context) error
	Ask(ctx context.Context) error
	Rooms(ctx context.Context) error
	Chat(ctx context.Context) error
	Search(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers log
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tb> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Feed:    (f)eed, filter, show, search")
				printlnFn("Recipes: addrecipe, delrecipe, myrecipes, bookmarks, likes")
				printlnFn("Actions: like, bookmark, comments, addcomment, delcomment")
				printlnFn("Social:  mypage, follows, follow, asks, ask")
				printlnFn("Chat:    rooms, chat")
				printlnFn("Account: logout, deactivate, exit")
			} else {
				printlnFn("Available commands: login, signup, feed, show, search, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "deactivate":
			_ = a.Deactivate(ctx)

		case "f", "feed":
			_ = a.Feed(ctx)

		case "filter":
			_ = a.Filter(ctx)

		case "show":
			_ = a.Show(ctx)

		case "addrecipe":
			_ = a.AddRecipe(ctx)

		case "delrecipe":
			_ = a.DeleteRecipe(ctx)

		case "myrecipes":
			_ = a.MyRecipes(ctx)

		case "bookmarks":
			_ = a.Bookmarks(ctx)

		case "likes":
			_ = a.Likes(ctx)

		case "like":
			_ = a.Like(ctx)

		case "bookmark":
			_ = a.Bookmark(ctx)

		case "comments":
			_ = a.Comments(ctx)

		case "addcomment":
			_ = a.AddComment(ctx)

		case "delcomment":
			_ = a.DeleteComment(ctx)

		case "mypage":
			_ = a.MyPage(ctx)

		case "follows":
			_ = a.Follows(ctx)

		case "follow":
			_ = a.Follow(ctx)

		case "asks":
			_ = a.Asks(ctx)

		case "ask":
			_ = a.Ask(ctx)

		case "rooms":
			_ = a.Rooms(ctx)

		case "chat":
			_ = a.Chat(ctx)

		case "search":
			_ = a.Search(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
