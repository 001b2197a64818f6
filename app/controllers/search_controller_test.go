package controllers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vestniklab/Vestnik/app/models"
	"github.com/vestniklab/Vestnik/app/repository"
	"github.com/vestniklab/Vestnik/internal/pkg/aggregator"
)

type recordingNewsSource struct {
	filters []repository.NewsFilter
	news    []models.News
	err     error
}

func (r *recordingNewsSource) List(filter repository.NewsFilter) ([]models.News, error) {
	r.filters = append(r.filters, filter)
	return r.news, r.err
}

func newSearchTestApp(lister *recordingNewsSource, commentRepo *fakeCommentRepo) *fiber.App {
	agg := aggregator.New(aggregator.Sources{
		News: lister,
		Profiles: &fakeProfileSource{profiles: map[uint]*models.Profile{
			7: {ID: 7, Username: "ivan"},
		}},
		Categories: noopCategorySource{},
		Comments:   commentRepo,
		Reactions:  noopReactionSource{},
	})

	app := fiber.New()
	app.Get("/api/news/search", NewSearchController(agg).HandleNewsSearch)
	return app
}

func TestHandleNewsSearch(t *testing.T) {
	now := time.Now()
	lister := &recordingNewsSource{news: []models.News{
		{ID: 2, Title: "Новости города", AuthorID: 7, Published: true, CreatedAt: now},
		{ID: 1, Title: "Городской бюджет", AuthorID: 99, Published: true, CreatedAt: now.Add(-time.Hour)},
	}}
	commentRepo := &fakeCommentRepo{comments: []models.Comment{
		{ID: 1, NewsID: 2, AuthorID: 7, Content: "первый"},
	}, nextID: 1}
	app := newSearchTestApp(lister, commentRepo)

	req := httptest.NewRequest(fiber.MethodGet, "/api/news/search?q=%D0%B3%D0%BE%D1%80%D0%BE%D0%B4", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var results []aggregator.NewsWithDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&results))
	require.Len(t, results, 2)
	assert.Equal(t, uint(2), results[0].ID)
	assert.Equal(t, "ivan", results[0].AuthorName)
	assert.Equal(t, int64(1), results[0].CommentCount)
	assert.Equal(t, aggregator.UnknownAuthor, results[1].AuthorName)

	// Published-only, capped, matched on title. Draft articles never leak
	// through the public search.
	require.Len(t, lister.filters, 1)
	assert.Equal(t, repository.NewsFilter{
		PublishedOnly: true,
		TitleQuery:    "город",
		Limit:         5,
	}, lister.filters[0])
}

func TestHandleNewsSearchBlankQuery(t *testing.T) {
	lister := &recordingNewsSource{}
	app := newSearchTestApp(lister, &fakeCommentRepo{})

	for _, target := range []string{"/api/news/search", "/api/news/search?q=%20%20"} {
		req := httptest.NewRequest(fiber.MethodGet, target, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var results []aggregator.NewsWithDetails
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&results))
		assert.Empty(t, results)
	}

	assert.Empty(t, lister.filters, "blank query must not touch the store")
}

func TestHandleNewsSearchListerError(t *testing.T) {
	lister := &recordingNewsSource{err: errors.New("db down")}
	app := newSearchTestApp(lister, &fakeCommentRepo{})

	req := httptest.NewRequest(fiber.MethodGet, "/api/news/search?q=test", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
