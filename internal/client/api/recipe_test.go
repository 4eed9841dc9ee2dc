package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkornilov/tastebook/internal/client/models"
)

func TestRecipeService_ListQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/recipe/getAllRecipeList", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "0", q.Get("page"))
		require.Equal(t, "10", q.Get("size"))
		require.Equal(t, "new", q.Get("sortType"))
		require.Equal(t, "3,5", q.Get("subCategoryList"))
		require.Equal(t, "stew", q.Get("searchWord"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[],"totalCount":0}`))
	}))
	t.Cleanup(srv.Close)

	svc := NewRecipeService(srv.URL, &http.Client{}, nil)
	_, err := svc.List(context.Background(), ListQuery{
		Page: 0, Size: 10, SortType: "new",
		SubCategories: []string{"3", "5"},
		SearchWord:    "stew",
	})
	require.NoError(t, err)
}

func TestRecipeService_ListOmitsEmptyFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.False(t, q.Has("subCategoryList"))
		require.False(t, q.Has("searchWord"))
		w.Write([]byte(`{"content":[],"totalCount":0}`))
	}))
	t.Cleanup(srv.Close)

	svc := NewRecipeService(srv.URL, &http.Client{}, nil)
	_, err := svc.List(context.Background(), ListQuery{Page: 0, Size: 10, SortType: "new"})
	require.NoError(t, err)
}

func TestRecipeService_CreateMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/recipe/createRecipe", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "Kimchi stew", r.FormValue("recipeName"))
		require.Equal(t, "30", r.FormValue("timeTaken"))
		require.Equal(t, "120", r.FormValue("calorie"))
		require.Len(t, r.MultipartForm.File["recipeFileList"], 2)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"resultCode":"SUCCESS","result":{"recipeId":314}}`))
	}))
	t.Cleanup(srv.Close)

	svc := NewRecipeService(srv.URL, &http.Client{}, nil)
	id, err := svc.Create(context.Background(), RecipeForm{
		Name:        "Kimchi stew",
		Description: "spicy",
		TimeTaken:   30,
		Nutrition:   &models.NutritionInfo{Calories: 120},
		Images: []FilePart{
			{Name: "step1.jpg", Data: []byte{1}},
			{Name: "step2.jpg", Data: []byte{2}},
		},
	})
	require.NoError(t, err)
	require.Equal(t, int64(314), id)
}

func TestRecipeService_UpdateRequiresID(t *testing.T) {
	svc := NewRecipeService("http://unused.test", &http.Client{}, nil)
	err := svc.Update(context.Background(), RecipeForm{Name: "nameless"})
	require.Error(t, err)
}

func TestRecipeService_CommentCRUDBodies(t *testing.T) {
	type call struct {
		path string
		body map[string]any
	}
	var calls []call
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(data, &body)
		calls = append(calls, call{path: r.URL.Path, body: body})
		w.Write([]byte(`{"resultCode":"SUCCESS","result":{}}`))
	}))
	t.Cleanup(srv.Close)

	ctx := context.Background()
	svc := NewRecipeService(srv.URL, &http.Client{}, nil)

	require.NoError(t, svc.CreateComment(ctx, 42, "tasty"))
	require.NoError(t, svc.UpdateComment(ctx, 7, "tastier"))
	require.NoError(t, svc.DeleteComment(ctx, 7))

	require.Len(t, calls, 3)
	require.Equal(t, "/recipe/regist/comment", calls[0].path)
	require.Equal(t, float64(42), calls[0].body["recipeId"])
	require.Equal(t, "tasty", calls[0].body["commentValue"])
	require.Equal(t, "/recipe/update/comment", calls[1].path)
	require.Equal(t, float64(7), calls[1].body["commentId"])
	require.Equal(t, "/recipe/delete/comment", calls[2].path)
	require.Equal(t, float64(7), calls[2].body["commentId"])
}

func TestRecipeService_ToggleLike(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, float64(42), req["recipeId"])
		require.Equal(t, float64(0), req["likeId"])
		w.Write([]byte(`{"resultCode":"SUCCESS","result":{"id":512}}`))
	}))
	t.Cleanup(srv.Close)

	svc := NewRecipeService(srv.URL, &http.Client{}, nil)
	id, err := svc.ToggleLike(context.Background(), 42, 0)
	require.NoError(t, err)
	require.Equal(t, int64(512), id)
}

func TestRecipeService_Bookmarks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/recipe/addBookmark":
			w.Write([]byte(`{"resultCode":"SUCCESS","result":{"id":88}}`))
		case "/recipe/removeBookmark":
			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, float64(88), req["bookmarkId"])
			w.Write([]byte(`{"resultCode":"SUCCESS","result":{}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	t.Cleanup(srv.Close)

	ctx := context.Background()
	svc := NewRecipeService(srv.URL, &http.Client{}, nil)

	id, err := svc.AddBookmark(ctx, 42)
	require.NoError(t, err)
	require.Equal(t, int64(88), id)
	require.NoError(t, svc.RemoveBookmark(ctx, 88))
}
