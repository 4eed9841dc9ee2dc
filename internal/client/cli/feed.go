package cli

import (
	"context"
	"os"
	"strconv"

	"github.com/mkornilov/tastebook/internal/client/api"
	"github.com/mkornilov/tastebook/internal/client/models"
)

// Feed loads the next page of the recipe feed and prints the accumulated
// list. A repeated call keeps appending until the last page.
func (a *App) Feed(ctx context.Context) error {
	if a.feed.IsLastPage() && len(a.feed.Recipes()) > 0 {
		printlnFn("End of feed")
	} else if err := a.feed.LoadMore(ctx); err != nil {
		a.feed.AckFailure()
		printlnFn("Could not load feed:", err)
		return err
	}

	for _, r := range a.feed.Recipes() {
		printlnFn(formatRecipe(r))
	}
	return nil
}

// Filter narrows the feed by sub-categories and a search word, then reloads
// the first page.
func (a *App) Filter(ctx context.Context) error {
	cats, err := GetList(a.reader, "Enter sub-categories, comma separated (empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	word, err := GetSimpleText(a.reader, "Enter search word (empty for none)", os.Stdout)
	if err != nil {
		return err
	}
	a.feed.SetFilter(cats, word)
	return a.Feed(ctx)
}

// Show prints the full detail of one recipe and remembers it as the current
// recipe for the comment commands.
func (a *App) Show(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter recipe id", os.Stdout)
	if err != nil {
		return err
	}

	d, err := a.feed.Detail(ctx, id)
	if err != nil {
		printlnFn("Could not load recipe:", err)
		return err
	}

	printlnFn(d.Name, "by", d.Nickname)
	printlnFn(d.Description)
	printlnFn("Takes", d.TimeTaken, "min")
	printlnFn("Ingredients:", d.Ingredients)
	if len(d.SubCategories) > 0 {
		printlnFn("Categories:", joinNonEmpty(d.SubCategories, ", "))
	}
	if d.Nutrition != nil {
		printlnFn("Calories:", d.Nutrition.Calories, "kcal")
	}
	for _, u := range d.ImageURLs {
		printlnFn("Image:", u)
	}
	printlnFn("Likes:", d.LikeCount)

	a.openComments(d.ID)
	return nil
}

// Like toggles the like on a loaded feed recipe.
func (a *App) Like(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter recipe id", os.Stdout)
	if err != nil {
		return err
	}
	active, err := a.feed.ToggleLike(ctx, id)
	if err != nil {
		printlnFn("Could not toggle like:", err)
		return err
	}
	if active {
		printlnFn("Liked")
	} else {
		printlnFn("Like removed")
	}
	return nil
}

// Bookmark toggles the bookmark on a loaded feed recipe.
func (a *App) Bookmark(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter recipe id", os.Stdout)
	if err != nil {
		return err
	}
	active, err := a.feed.ToggleBookmark(ctx, id)
	if err != nil {
		printlnFn("Could not toggle bookmark:", err)
		return err
	}
	if active {
		printlnFn("Bookmarked")
	} else {
		printlnFn("Bookmark removed")
	}
	return nil
}

// MyRecipes lists the first page of the member's own recipes.
func (a *App) MyRecipes(ctx context.Context) error {
	return a.printMemberScoped(ctx, a.recipes.MyRecipes)
}

// Bookmarks lists the first page of the member's bookmarked recipes.
func (a *App) Bookmarks(ctx context.Context) error {
	return a.printMemberScoped(ctx, a.recipes.BookmarkedRecipes)
}

// Likes lists the first page of the recipes the member liked.
func (a *App) Likes(ctx context.Context) error {
	return a.printMemberScoped(ctx, a.recipes.LikedRecipes)
}

func (a *App) printMemberScoped(ctx context.Context, fetch func(context.Context, int, int) (models.Page[models.RecipeSummary], error)) error {
	page, err := fetch(ctx, 0, a.config.FeedPageSize)
	if err != nil {
		printlnFn("Could not load list:", err)
		return err
	}
	for _, r := range page.Content {
		printlnFn(formatRecipe(r))
	}
	printlnFn(len(page.Content), "of", page.TotalCount)
	return nil
}

// AddRecipe collects the recipe form, including image uploads read from
// local paths, and publishes it.
func (a *App) AddRecipe(ctx context.Context) error {
	form, err := a.inputRecipeForm(ctx)
	if err != nil {
		return err
	}

	id, err := a.feed.Create(ctx, form)
	if err != nil {
		printlnFn("Could not create recipe:", err)
		return err
	}
	printlnFn("Created recipe", id)
	return nil
}

// DeleteRecipe removes one of the member's own recipes.
func (a *App) DeleteRecipe(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter recipe id to delete", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.feed.Delete(ctx, id); err != nil {
		printlnFn("Could not delete recipe:", err)
		return err
	}
	printlnFn("Deleted")
	return nil
}

func (a *App) inputRecipeForm(ctx context.Context) (api.RecipeForm, error) {
	var zero api.RecipeForm

	name, err := GetSimpleText(a.reader, "Enter recipe name", os.Stdout)
	if err != nil {
		return zero, err
	}
	desc, err := GetMultiline(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return zero, err
	}
	taken, err := GetID(a.reader, "Enter cooking time, minutes", os.Stdout)
	if err != nil {
		return zero, err
	}
	ingredients, err := GetSimpleText(a.reader, "Enter ingredients", os.Stdout)
	if err != nil {
		return zero, err
	}
	hashtags, err := GetSimpleText(a.reader, "Enter hashtags", os.Stdout)
	if err != nil {
		return zero, err
	}
	cats, err := GetList(a.reader, "Enter sub-categories, comma separated", os.Stdout)
	if err != nil {
		return zero, err
	}

	form := api.RecipeForm{
		Name:          name,
		Description:   desc,
		TimeTaken:     int(taken),
		Ingredients:   ingredients,
		Hashtags:      hashtags,
		SubCategories: cats,
	}

	if calories, err := GetSimpleText(a.reader, "Enter calories (empty to skip nutrition)", os.Stdout); err == nil && calories != "" {
		if kcal, convErr := strconv.Atoi(calories); convErr == nil {
			form.Nutrition = &models.NutritionInfo{Calories: kcal}
		}
	}

	paths, err := GetList(a.reader, "Enter image paths, comma separated", os.Stdout)
	if err != nil {
		return zero, err
	}
	for _, p := range paths {
		part, err := readFilePart("recipeFileList", p)
		if err != nil {
			printlnFn("Cannot read image:", err)
			return zero, err
		}
		form.Images = append(form.Images, *part)
	}
	return form, nil
}
