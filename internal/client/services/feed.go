package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/mkornilov/tastebook/internal/client/api"
	"github.com/mkornilov/tastebook/internal/client/models"
	"github.com/mkornilov/tastebook/internal/client/pager"
	"github.com/mkornilov/tastebook/internal/logging"
)

// recipeAPI is the slice of the recipe service the feed needs.
type recipeAPI interface {
	List(ctx context.Context, q api.ListQuery) (models.Page[models.RecipeSummary], error)
	Detail(ctx context.Context, recipeID int64) (models.RecipeDetail, error)
	Create(ctx context.Context, f api.RecipeForm) (int64, error)
	Update(ctx context.Context, f api.RecipeForm) error
	Delete(ctx context.Context, recipeID int64) error
	ToggleLike(ctx context.Context, recipeID, likeID int64) (int64, error)
	AddBookmark(ctx context.Context, recipeID int64) (int64, error)
	RemoveBookmark(ctx context.Context, bookmarkID int64) error
}

// FeedService is the state holder behind the recipe feed screen: a pager
// over recipe summaries plus the like/bookmark toggles, which patch the
// loaded items in place after the server answers.
type FeedService struct {
	recipes recipeAPI
	pager   *pager.Pager[models.RecipeSummary]
	log     logging.Logger

	mu            sync.Mutex
	subCategories []string
	searchWord    string
}

// NewFeedService builds a feed sorted by the given key ("new", "popular").
func NewFeedService(recipes recipeAPI, pageSize int, sortKey string, log logging.Logger) *FeedService {
	f := &FeedService{recipes: recipes, log: log}
	f.pager = pager.New(f.fetchPage, pageSize, sortKey)
	return f
}

func (f *FeedService) fetchPage(ctx context.Context, page, size int, sortKey string) (models.Page[models.RecipeSummary], error) {
	f.mu.Lock()
	q := api.ListQuery{
		Page:          page,
		Size:          size,
		SortType:      sortKey,
		SubCategories: f.subCategories,
		SearchWord:    f.searchWord,
	}
	f.mu.Unlock()
	return f.recipes.List(ctx, q)
}

// SetFilter replaces the feed filters and resets the accumulated list.
func (f *FeedService) SetFilter(subCategories []string, searchWord string) {
	f.mu.Lock()
	f.subCategories = subCategories
	f.searchWord = searchWord
	f.mu.Unlock()
	f.pager.Reset()
}

// LoadMore fetches the next feed page.
func (f *FeedService) LoadMore(ctx context.Context) error {
	return f.pager.LoadMore(ctx)
}

// Reset clears the accumulated feed.
func (f *FeedService) Reset() { f.pager.Reset() }

// Recipes returns the accumulated feed items.
func (f *FeedService) Recipes() []models.RecipeSummary { return f.pager.Items() }

// IsLastPage reports whether the feed is fully loaded.
func (f *FeedService) IsLastPage() bool { return f.pager.IsLastPage() }

// LoadFailed reports the one-shot pagination failure flag.
func (f *FeedService) LoadFailed() bool { return f.pager.LoadFailed() }

// AckFailure clears the pagination failure flag.
func (f *FeedService) AckFailure() { f.pager.AckFailure() }

// Detail fetches the full record of one recipe.
func (f *FeedService) Detail(ctx context.Context, recipeID int64) (models.RecipeDetail, error) {
	return f.recipes.Detail(ctx, recipeID)
}

// Create uploads a new recipe and resets the feed so it can show up.
func (f *FeedService) Create(ctx context.Context, form api.RecipeForm) (int64, error) {
	id, err := f.recipes.Create(ctx, form)
	if err != nil {
		return 0, err
	}
	f.pager.Reset()
	return id, nil
}

// Update replaces one of the member's recipes.
func (f *FeedService) Update(ctx context.Context, form api.RecipeForm) error {
	return f.recipes.Update(ctx, form)
}

// Delete removes one of the member's recipes and drops it from the feed.
func (f *FeedService) Delete(ctx context.Context, recipeID int64) error {
	if err := f.recipes.Delete(ctx, recipeID); err != nil {
		return err
	}
	f.pager.Reset()
	return nil
}

func (f *FeedService) currentItem(recipeID int64) (models.RecipeSummary, bool) {
	var item models.RecipeSummary
	found := false
	f.pager.Apply(func(items []models.RecipeSummary) {
		for i := range items {
			if items[i].ID == recipeID {
				item = items[i]
				found = true
				return
			}
		}
	})
	return item, found
}

// ToggleLike sends the item's current like id and lets the server decide
// the direction. The loaded item is patched with the outcome: a non-zero
// returned id marks it liked, zero clears it. Reports whether the like is
// now active.
func (f *FeedService) ToggleLike(ctx context.Context, recipeID int64) (bool, error) {
	item, ok := f.currentItem(recipeID)
	if !ok {
		return false, fmt.Errorf("recipe %d is not loaded", recipeID)
	}

	newID, err := f.recipes.ToggleLike(ctx, recipeID, item.LikeID)
	if err != nil {
		return false, err
	}

	f.pager.Apply(func(items []models.RecipeSummary) {
		for i := range items {
			if items[i].ID != recipeID {
				continue
			}
			switch {
			case newID != 0 && items[i].LikeID == 0:
				items[i].LikeCount++
			case newID == 0 && items[i].LikeID != 0:
				items[i].LikeCount--
			}
			items[i].LikeID = newID
		}
	})
	return newID != 0, nil
}

// ToggleBookmark adds or removes the bookmark depending on whether the
// loaded item currently carries a bookmark id. Reports whether the
// bookmark is now active.
func (f *FeedService) ToggleBookmark(ctx context.Context, recipeID int64) (bool, error) {
	item, ok := f.currentItem(recipeID)
	if !ok {
		return false, fmt.Errorf("recipe %d is not loaded", recipeID)
	}

	if item.BookmarkID == 0 {
		newID, err := f.recipes.AddBookmark(ctx, recipeID)
		if err != nil {
			return false, err
		}
		f.patchBookmark(recipeID, newID)
		return true, nil
	}

	if err := f.recipes.RemoveBookmark(ctx, item.BookmarkID); err != nil {
		return false, err
	}
	f.patchBookmark(recipeID, 0)
	return false, nil
}

func (f *FeedService) patchBookmark(recipeID, bookmarkID int64) {
	f.pager.Apply(func(items []models.RecipeSummary) {
		for i := range items {
			if items[i].ID == recipeID {
				items[i].BookmarkID = bookmarkID
			}
		}
	})
}
