package services

import (
	"context"

	"github.com/mkornilov/tastebook/internal/client/models"
	"github.com/mkornilov/tastebook/internal/client/pager"
	"github.com/mkornilov/tastebook/internal/logging"
)

// commentAPI is the slice of the recipe service the comment screen needs.
type commentAPI interface {
	Comments(ctx context.Context, recipeID int64, page, size int, sortType string) (models.Page[models.Comment], error)
	CreateComment(ctx context.Context, recipeID int64, value string) error
	UpdateComment(ctx context.Context, commentID int64, value string) error
	DeleteComment(ctx context.Context, commentID int64) error
}

// CommentService holds the paged comment list of one recipe and the
// create/update/delete mutations on it.
type CommentService struct {
	recipeID int64
	recipes  commentAPI
	pager    *pager.Pager[models.Comment]
	log      logging.Logger
}

// NewCommentService builds the comment state holder for one recipe.
func NewCommentService(recipes commentAPI, recipeID int64, pageSize int, log logging.Logger) *CommentService {
	c := &CommentService{recipeID: recipeID, recipes: recipes, log: log}
	c.pager = pager.New(c.fetchPage, pageSize, "new")
	return c
}

func (c *CommentService) fetchPage(ctx context.Context, page, size int, sortKey string) (models.Page[models.Comment], error) {
	return c.recipes.Comments(ctx, c.recipeID, page, size, sortKey)
}

// LoadMore fetches the next page of comments.
func (c *CommentService) LoadMore(ctx context.Context) error {
	return c.pager.LoadMore(ctx)
}

// Comments returns the accumulated comment list.
func (c *CommentService) Comments() []models.Comment { return c.pager.Items() }

// IsLastPage reports whether the backlog is fully loaded.
func (c *CommentService) IsLastPage() bool { return c.pager.IsLastPage() }

// LoadFailed reports the one-shot pagination failure flag.
func (c *CommentService) LoadFailed() bool { return c.pager.LoadFailed() }

// AckFailure clears the pagination failure flag.
func (c *CommentService) AckFailure() { c.pager.AckFailure() }

// Reset clears the accumulated list.
func (c *CommentService) Reset() { c.pager.Reset() }

// Add posts a new comment, then resets the list so the next load shows it
// in server order.
func (c *CommentService) Add(ctx context.Context, value string) error {
	if err := c.recipes.CreateComment(ctx, c.recipeID, value); err != nil {
		return err
	}
	c.pager.Reset()
	return nil
}

// Update replaces the text of a comment and patches the loaded copy.
func (c *CommentService) Update(ctx context.Context, commentID int64, value string) error {
	if err := c.recipes.UpdateComment(ctx, commentID, value); err != nil {
		return err
	}
	c.pager.Apply(func(items []models.Comment) {
		for i := range items {
			if items[i].ID == commentID {
				items[i].Value = value
			}
		}
	})
	return nil
}

// Delete removes a comment and resets the list.
func (c *CommentService) Delete(ctx context.Context, commentID int64) error {
	if err := c.recipes.DeleteComment(ctx, commentID); err != nil {
		return err
	}
	c.pager.Reset()
	return nil
}
