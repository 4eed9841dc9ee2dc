package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkornilov/tastebook/internal/client/api"
	"github.com/mkornilov/tastebook/internal/client/models"
)

// readFilePart loads a local file into an upload part named after its base name.
func readFilePart(field, path string) (*api.FilePart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return &api.FilePart{Field: field, Name: filepath.Base(path), Data: data}, nil
}

func formatRecipe(r models.RecipeSummary) string {
	marks := ""
	if r.LikeID != 0 {
		marks += " ♥"
	}
	if r.BookmarkID != 0 {
		marks += " ⚑"
	}
	return fmt.Sprintf("#%d %s by %s (%d likes)%s", r.ID, r.Name, r.Nickname, r.LikeCount, marks)
}

func formatComment(c models.Comment) string {
	return fmt.Sprintf("#%d %s: %s", c.ID, c.Nickname, c.Value)
}

func formatFollow(e models.FollowEntry) string {
	mark := ""
	if e.FollowID != 0 {
		mark = " [following]"
	}
	return fmt.Sprintf("#%d %s%s", e.MemberID, e.Nickname, mark)
}

func formatHit(h models.SearchHit) string {
	return fmt.Sprintf("%s (%d)", h.Value, h.Count)
}

func formatRoom(r models.ChatRoom) string {
	last := r.LastMessage
	if last == "" {
		last = "(no messages)"
	}
	return fmt.Sprintf("%s: %s", r.ID, last)
}

func joinNonEmpty(parts []string, sep string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
