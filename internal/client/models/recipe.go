package models

// RecipeSummary is one row of the recipe feed. LikeID and BookmarkID carry
// the id of the caller's existing relationship with the recipe, or 0 when
// none exists; toggle mutations send these ids back unchanged.
type RecipeSummary struct {
	ID            int64    `json:"recipeId"`
	Name          string   `json:"recipeName"`
	Nickname      string   `json:"nickname"`
	ThumbnailURL  string   `json:"thumbnailUrl"`
	SubCategories []string `json:"subCategoryList"`
	LikeCount     int64    `json:"likeCount"`
	LikeID        int64    `json:"likeId"`
	BookmarkID    int64    `json:"bookmarkId"`
	CreatedAt     string   `json:"createDate"`
}

// NutritionInfo is the optional nutrition block of a recipe detail.
type NutritionInfo struct {
	Calories     int `json:"calorie"`
	Carbohydrate int `json:"carbohydrate"`
	Protein      int `json:"protein"`
	Fat          int `json:"fat"`
	Sodium       int `json:"sodium"`
}

// RecipeDetail is the full recipe record shown on the detail screen.
type RecipeDetail struct {
	ID            int64          `json:"recipeId"`
	Name          string         `json:"recipeName"`
	Description   string         `json:"recipeDesc"`
	MemberID      int64          `json:"memberId"`
	Nickname      string         `json:"nickname"`
	TimeTaken     int            `json:"timeTaken"`
	Ingredients   string         `json:"ingredient"`
	Hashtags      string         `json:"hashtag"`
	SubCategories []string       `json:"subCategoryList"`
	Nutrition     *NutritionInfo `json:"nutritionInfo"`
	ImageURLs     []string       `json:"recipeFileUrlList"`
	LikeCount     int64          `json:"likeCount"`
	LikeID        int64          `json:"likeId"`
	BookmarkID    int64          `json:"bookmarkId"`
	CreatedAt     string         `json:"createDate"`
}

// Comment is one comment on a recipe. RecipeID is the only link back to the
// parent; it is passed on every mutation call.
type Comment struct {
	ID        int64  `json:"commentId"`
	RecipeID  int64  `json:"recipeId"`
	MemberID  int64  `json:"memberId"`
	Nickname  string `json:"nickname"`
	Value     string `json:"commentValue"`
	CreatedAt string `json:"createDate"`
}
