package cli

import (
	"context"
	"os"

	"github.com/mkornilov/tastebook/internal/client/services"
)

// openComments switches the comment commands to the given recipe.
func (a *App) openComments(recipeID int64) {
	a.comments = services.NewCommentService(a.recipes, recipeID, a.config.CommentPageSize, a.log)
}

func (a *App) currentComments(ctx context.Context) (*services.CommentService, error) {
	if a.comments != nil {
		return a.comments, nil
	}
	id, err := GetID(a.reader, "Enter recipe id", os.Stdout)
	if err != nil {
		return nil, err
	}
	a.openComments(id)
	return a.comments, nil
}

// Comments loads the next page of comments for the current recipe and
// prints the accumulated list.
func (a *App) Comments(ctx context.Context) error {
	c, err := a.currentComments(ctx)
	if err != nil {
		return err
	}

	if c.IsLastPage() && len(c.Comments()) > 0 {
		printlnFn("End of comments")
	} else if err := c.LoadMore(ctx); err != nil {
		c.AckFailure()
		printlnFn("Could not load comments:", err)
		return err
	}

	for _, cm := range c.Comments() {
		printlnFn(formatComment(cm))
	}
	return nil
}

// AddComment posts a new comment on the current recipe.
func (a *App) AddComment(ctx context.Context) error {
	c, err := a.currentComments(ctx)
	if err != nil {
		return err
	}
	text, err := GetSimpleText(a.reader, "Enter comment", os.Stdout)
	if err != nil {
		return err
	}
	if err := c.Add(ctx, text); err != nil {
		printlnFn("Could not post comment:", err)
		return err
	}
	printlnFn("Posted")
	return nil
}

// DeleteComment removes one of the member's own comments.
func (a *App) DeleteComment(ctx context.Context) error {
	c, err := a.currentComments(ctx)
	if err != nil {
		return err
	}
	id, err := GetID(a.reader, "Enter comment id to delete", os.Stdout)
	if err != nil {
		return err
	}
	if err := c.Delete(ctx, id); err != nil {
		printlnFn("Could not delete comment:", err)
		return err
	}
	printlnFn("Deleted")
	return nil
}
