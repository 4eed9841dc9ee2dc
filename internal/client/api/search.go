package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/mkornilov/tastebook/internal/client/models"
	"github.com/mkornilov/tastebook/internal/logging"
)

// Search conditions understood by the backend.
const (
	ConditionHashtag    = "hashtag"
	ConditionIngredient = "ingredient"
)

// SearchService performs free-text ingredient/hashtag lookups against the
// mongo-backed search endpoint on the recipe server.
type SearchService struct {
	base string
	hc   Doer
	log  logging.Logger
}

func NewSearchService(base string, hc Doer, log logging.Logger) *SearchService {
	return &SearchService{base: strings.TrimRight(base, "/"), hc: hc, log: log}
}

// Search returns at most resultSize suggestions matching word under the
// given condition.
func (s *SearchService) Search(ctx context.Context, condition, word string, resultSize int) ([]models.SearchHit, error) {
	q := url.Values{}
	q.Set("condition", condition)
	q.Set("searchWord", word)
	q.Set("resultSize", strconv.Itoa(resultSize))
	return getSingle[[]models.SearchHit](ctx, s.hc, s.base+"/mongo/search", q)
}
