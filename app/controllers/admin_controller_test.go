package controllers

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vestniklab/Vestnik/app/models"
	"github.com/vestniklab/Vestnik/app/repository"
)

// countingNewsRepo wraps the in-memory news repo with delete accounting and
// an optional induced failure.
type countingNewsRepo struct {
	fakeNewsRepo
	deleteCalls int
	failDelete  error
}

func (f *countingNewsRepo) Delete(id uint) error {
	f.deleteCalls++
	if f.failDelete != nil {
		return f.failDelete
	}
	delete(f.news, id)
	return nil
}

func newAdminTestApp(newsRepo *countingNewsRepo) *fiber.App {
	ac := NewAdminController(&repository.Repositories{News: newsRepo})

	app := fiber.New()
	app.Post("/admin/news/:id/delete", ac.HandleNewsDelete)
	return app
}

func TestHandleNewsDeleteCallsStoreOnce(t *testing.T) {
	newsRepo := &countingNewsRepo{fakeNewsRepo: fakeNewsRepo{news: map[uint]*models.News{
		5: {ID: 5, Title: "to delete"},
		6: {ID: 6, Title: "to keep"},
	}}}
	app := newAdminTestApp(newsRepo)

	req := httptest.NewRequest(fiber.MethodPost, "/admin/news/5/delete", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/news", resp.Header.Get("Location"))
	// Exactly one delete for exactly the requested row.
	assert.Equal(t, 1, newsRepo.deleteCalls)
	assert.NotContains(t, newsRepo.news, uint(5))
	assert.Contains(t, newsRepo.news, uint(6))
}

func TestHandleNewsDeleteFailureLeavesRow(t *testing.T) {
	newsRepo := &countingNewsRepo{
		fakeNewsRepo: fakeNewsRepo{news: map[uint]*models.News{5: {ID: 5, Title: "survivor"}}},
		failDelete:   errors.New("db down"),
	}
	app := newAdminTestApp(newsRepo)

	req := httptest.NewRequest(fiber.MethodPost, "/admin/news/5/delete", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	// The handler redirects back with a flash error; the row is untouched.
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/news", resp.Header.Get("Location"))
	assert.Equal(t, 1, newsRepo.deleteCalls)
	assert.Contains(t, newsRepo.news, uint(5))
}

func TestHandleNewsDeleteBadID(t *testing.T) {
	newsRepo := &countingNewsRepo{fakeNewsRepo: fakeNewsRepo{news: map[uint]*models.News{}}}
	app := newAdminTestApp(newsRepo)

	req := httptest.NewRequest(fiber.MethodPost, "/admin/news/abc/delete", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, 0, newsRepo.deleteCalls)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 80))
	long := "это очень длинный комментарий, который не помещается в таблицу"
	got := truncate(long, 10)
	assert.Equal(t, 11, len([]rune(got)))
}
