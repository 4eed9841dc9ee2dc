package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mkornilov/tastebook/internal/client/models"
	"github.com/mkornilov/tastebook/internal/logging"
)

// RecipeService talks to the recipe server: the recipe feed, details,
// create/update uploads, comments and the like/bookmark toggles.
type RecipeService struct {
	base string
	hc   Doer
	log  logging.Logger
}

func NewRecipeService(base string, hc Doer, log logging.Logger) *RecipeService {
	return &RecipeService{base: strings.TrimRight(base, "/"), hc: hc, log: log}
}

// ListQuery narrows the recipe feed. Zero values mean "no filter".
type ListQuery struct {
	Page          int
	Size          int
	SortType      string
	SubCategories []string
	SearchWord    string
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("size", strconv.Itoa(q.Size))
	v.Set("sortType", q.SortType)
	if len(q.SubCategories) > 0 {
		v.Set("subCategoryList", strings.Join(q.SubCategories, ","))
	}
	if q.SearchWord != "" {
		v.Set("searchWord", q.SearchWord)
	}
	return v
}

// List returns one page of the recipe feed.
func (s *RecipeService) List(ctx context.Context, q ListQuery) (models.Page[models.RecipeSummary], error) {
	return getPage[models.RecipeSummary](ctx, s.hc, s.base+"/recipe/getAllRecipeList", q.values())
}

// MyRecipes returns one page of recipes authored by the logged-in member.
func (s *RecipeService) MyRecipes(ctx context.Context, page, size int) (models.Page[models.RecipeSummary], error) {
	return s.memberScopedList(ctx, "/recipe/getAllMyRecipeList", page, size)
}

// BookmarkedRecipes returns one page of the member's bookmarks.
func (s *RecipeService) BookmarkedRecipes(ctx context.Context, page, size int) (models.Page[models.RecipeSummary], error) {
	return s.memberScopedList(ctx, "/recipe/getAllMyBookmarkList", page, size)
}

// LikedRecipes returns one page of the recipes the member has liked.
func (s *RecipeService) LikedRecipes(ctx context.Context, page, size int) (models.Page[models.RecipeSummary], error) {
	return s.memberScopedList(ctx, "/recipe/getAllMyLikeList", page, size)
}

func (s *RecipeService) memberScopedList(ctx context.Context, path string, page, size int) (models.Page[models.RecipeSummary], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return getPage[models.RecipeSummary](ctx, s.hc, s.base+path, q)
}

// Detail fetches the full record of one recipe.
func (s *RecipeService) Detail(ctx context.Context, recipeID int64) (models.RecipeDetail, error) {
	q := url.Values{}
	q.Set("recipeId", strconv.FormatInt(recipeID, 10))
	return getSingle[models.RecipeDetail](ctx, s.hc, s.base+"/recipe/getRecipeDetail", q)
}

// RecipeForm carries the recipe fields plus image uploads. ID is only set
// for updates.
type RecipeForm struct {
	ID            int64
	Name          string
	Description   string
	TimeTaken     int
	Ingredients   string
	Hashtags      string
	SubCategories []string
	Nutrition     *models.NutritionInfo
	Images        []FilePart
}

func (f RecipeForm) form() *Form {
	form := &Form{}
	if f.ID != 0 {
		form.AddField("recipeId", strconv.FormatInt(f.ID, 10))
	}
	form.AddField("recipeName", f.Name)
	form.AddField("recipeDesc", f.Description)
	form.AddField("timeTaken", strconv.Itoa(f.TimeTaken))
	form.AddField("ingredient", f.Ingredients)
	form.AddField("hashtag", f.Hashtags)
	form.AddField("subCategoryList", strings.Join(f.SubCategories, ","))
	if f.Nutrition != nil {
		form.AddField("calorie", strconv.Itoa(f.Nutrition.Calories))
		form.AddField("carbohydrate", strconv.Itoa(f.Nutrition.Carbohydrate))
		form.AddField("protein", strconv.Itoa(f.Nutrition.Protein))
		form.AddField("fat", strconv.Itoa(f.Nutrition.Fat))
		form.AddField("sodium", strconv.Itoa(f.Nutrition.Sodium))
	}
	for _, img := range f.Images {
		form.AddFile("recipeFileList", img.Name, img.Data)
	}
	return form
}

type recipeIDResult struct {
	RecipeID int64 `json:"recipeId"`
}

// Create uploads a new recipe and returns its id.
func (s *RecipeService) Create(ctx context.Context, f RecipeForm) (int64, error) {
	res, err := postMultipart[recipeIDResult](ctx, s.hc, http.MethodPost, s.base+"/recipe/createRecipe", f.form())
	if err != nil {
		return 0, err
	}
	return res.RecipeID, nil
}

// Update replaces an existing recipe. f.ID must be set.
func (s *RecipeService) Update(ctx context.Context, f RecipeForm) error {
	if f.ID == 0 {
		return fmt.Errorf("recipe update requires an id")
	}
	_, err := postMultipart[struct{}](ctx, s.hc, http.MethodPut, s.base+"/recipe/updateRecipe", f.form())
	return err
}

// Delete removes one of the member's own recipes.
func (s *RecipeService) Delete(ctx context.Context, recipeID int64) error {
	q := url.Values{}
	q.Set("recipeId", strconv.FormatInt(recipeID, 10))
	return doVoid(ctx, s.hc, http.MethodPost, s.base+"/recipe/deleteRecipe", q, nil)
}

// Comments returns one page of comments on a recipe.
func (s *RecipeService) Comments(ctx context.Context, recipeID int64, page, size int, sortType string) (models.Page[models.Comment], error) {
	q := url.Values{}
	q.Set("recipeId", strconv.FormatInt(recipeID, 10))
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	q.Set("sortType", sortType)
	return getPage[models.Comment](ctx, s.hc, s.base+"/recipe/getAllCommentList", q)
}

type commentRequest struct {
	CommentID int64  `json:"commentId,omitempty"`
	RecipeID  int64  `json:"recipeId,omitempty"`
	Value     string `json:"commentValue,omitempty"`
}

// CreateComment posts a new comment on the recipe.
func (s *RecipeService) CreateComment(ctx context.Context, recipeID int64, value string) error {
	return doVoid(ctx, s.hc, http.MethodPost, s.base+"/recipe/regist/comment", nil,
		commentRequest{RecipeID: recipeID, Value: value})
}

// UpdateComment replaces the text of an existing comment.
func (s *RecipeService) UpdateComment(ctx context.Context, commentID int64, value string) error {
	return doVoid(ctx, s.hc, http.MethodPost, s.base+"/recipe/update/comment", nil,
		commentRequest{CommentID: commentID, Value: value})
}

// DeleteComment removes one of the member's own comments.
func (s *RecipeService) DeleteComment(ctx context.Context, commentID int64) error {
	return doVoid(ctx, s.hc, http.MethodPost, s.base+"/recipe/delete/comment", nil,
		commentRequest{CommentID: commentID})
}

type likeRequest struct {
	RecipeID int64 `json:"recipeId"`
	LikeID   int64 `json:"likeId"`
}

// ToggleLike sends the current like id (0 when none); the server decides
// add-vs-remove and answers with the new id, or 0 once removed.
func (s *RecipeService) ToggleLike(ctx context.Context, recipeID, likeID int64) (int64, error) {
	res, err := postSingle[toggleResult](ctx, s.hc, http.MethodPost, s.base+"/recipe/like", nil,
		likeRequest{RecipeID: recipeID, LikeID: likeID})
	if err != nil {
		return 0, err
	}
	return res.ID, nil
}

type bookmarkRequest struct {
	RecipeID   int64 `json:"recipeId,omitempty"`
	BookmarkID int64 `json:"bookmarkId,omitempty"`
}

// AddBookmark creates a bookmark and returns its id.
func (s *RecipeService) AddBookmark(ctx context.Context, recipeID int64) (int64, error) {
	res, err := postSingle[toggleResult](ctx, s.hc, http.MethodPost, s.base+"/recipe/addBookmark", nil,
		bookmarkRequest{RecipeID: recipeID})
	if err != nil {
		return 0, err
	}
	return res.ID, nil
}

// RemoveBookmark deletes an existing bookmark by its id.
func (s *RecipeService) RemoveBookmark(ctx context.Context, bookmarkID int64) error {
	return doVoid(ctx, s.hc, http.MethodPost, s.base+"/recipe/removeBookmark", nil,
		bookmarkRequest{BookmarkID: bookmarkID})
}
