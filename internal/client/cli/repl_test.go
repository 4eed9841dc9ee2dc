package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Signup(ctx context.Context) error { return f.record("signup") }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Deactivate(ctx context.Context) error    { return f.record("deactivate") }
func (f *fakeExec) Feed(ctx context.Context) error          { return f.record("feed") }
func (f *fakeExec) Filter(ctx context.Context) error        { return f.record("filter") }
func (f *fakeExec) Show(ctx context.Context) error          { return f.record("show") }
func (f *fakeExec) AddRecipe(ctx context.Context) error     { return f.record("addrecipe") }
func (f *fakeExec) DeleteRecipe(ctx context.Context) error  { return f.record("delrecipe") }
func (f *fakeExec) MyRecipes(ctx context.Context) error     { return f.record("myrecipes") }
func (f *fakeExec) Bookmarks(ctx context.Context) error     { return f.record("bookmarks") }
func (f *fakeExec) Likes(ctx context.Context) error         { return f.record("likes") }
func (f *fakeExec) Like(ctx context.Context) error          { return f.record("like") }
func (f *fakeExec) Bookmark(ctx context.Context) error      { return f.record("bookmark") }
func (f *fakeExec) Comments(ctx context.Context) error      { return f.record("comments") }
func (f *fakeExec) AddComment(ctx context.Context) error    { return f.record("addcomment") }
func (f *fakeExec) DeleteComment(ctx context.Context) error { return f.record("delcomment") }
func (f *fakeExec) MyPage(ctx context.Context) error        { return f.record("mypage") }
func (f *fakeExec) Follows(ctx context.Context) error       { return f.record("follows") }
func (f *fakeExec) Follow(ctx context.Context) error        { return f.record("follow") }
func (f *fakeExec) Asks(ctx context.Context) error          { return f.record("asks") }
func (f *fakeExec) Ask(ctx context.Context) error           { return f.record("ask") }
func (f *fakeExec) Rooms(ctx context.Context) error         { return f.record("rooms") }
func (f *fakeExec) Chat(ctx context.Context) error          { return f.record("chat") }
func (f *fakeExec) Search(ctx context.Context) error        { return f.record("search") }

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"feed",
		"show",
		"like",
		"comments",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "feed", "show", "like", "comments"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_ShortcutAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("f\n\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "feed" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EOFExits(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader(""))
	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
