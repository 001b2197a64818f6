package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vestniklab/Vestnik/app/models"
	"github.com/vestniklab/Vestnik/internal/pkg/reactions"
	"github.com/vestniklab/Vestnik/internal/pkg/usercontext"
)

// fakeReactionRepo satisfies repository.ReactionRepository in memory and
// counts mutating calls.
type fakeReactionRepo struct {
	reactions map[[2]uint]*models.Reaction
	nextID    uint
	calls     int
}

func newFakeReactionRepo() *fakeReactionRepo {
	return &fakeReactionRepo{reactions: make(map[[2]uint]*models.Reaction), nextID: 1}
}

func (f *fakeReactionRepo) GetByNewsAndUser(newsID, userID uint) (*models.Reaction, error) {
	f.calls++
	r, ok := f.reactions[[2]uint{newsID, userID}]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReactionRepo) Create(reaction *models.Reaction) error {
	f.calls++
	reaction.ID = f.nextID
	f.nextID++
	cp := *reaction
	f.reactions[[2]uint{reaction.NewsID, reaction.UserID}] = &cp
	return nil
}

func (f *fakeReactionRepo) UpdateKind(id uint, kind string) error {
	f.calls++
	for _, r := range f.reactions {
		if r.ID == id {
			r.Kind = kind
		}
	}
	return nil
}

func (f *fakeReactionRepo) Delete(id uint) error {
	f.calls++
	for key, r := range f.reactions {
		if r.ID == id {
			delete(f.reactions, key)
		}
	}
	return nil
}

func (f *fakeReactionRepo) ListAll() ([]models.Reaction, error) { return nil, nil }
func (f *fakeReactionRepo) Count() (int64, error)               { return int64(len(f.reactions)), nil }

func (f *fakeReactionRepo) CountsByNews(newsID uint) (int64, int64, error) {
	var likes, dislikes int64
	for _, r := range f.reactions {
		if r.NewsID != newsID {
			continue
		}
		if r.Kind == models.REACTION_LIKE {
			likes++
		} else {
			dislikes++
		}
	}
	return likes, dislikes, nil
}

func newReactionTestApp(repo *fakeReactionRepo, viewer usercontext.UserContext) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(usercontext.KeyUserContext, viewer)
		return c.Next()
	})
	rc := NewReactionController(reactions.NewEngine(repo), repo)
	app.Post("/api/news/:id/reactions", rc.HandleReact)
	return app
}

func postReaction(t *testing.T, app *fiber.App, newsID, kind string) (int, map[string]any) {
	t.Helper()
	body, err := json.Marshal(fiber.Map{"kind": kind})
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/api/news/"+newsID+"/reactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp.StatusCode, payload
}

func TestHandleReactAnonymous(t *testing.T) {
	repo := newFakeReactionRepo()
	app := newReactionTestApp(repo, usercontext.UserContext{})

	status, payload := postReaction(t, app, "1", "like")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "auth_required", payload["error"])
	// An anonymous attempt must not reach the store at all.
	assert.Equal(t, 0, repo.calls)
}

func TestHandleReactToggleAndSwitch(t *testing.T) {
	repo := newFakeReactionRepo()
	app := newReactionTestApp(repo, usercontext.UserContext{UserID: 7, IsLoggedIn: true})

	status, payload := postReaction(t, app, "1", "like")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "liked", payload["state"])
	assert.Equal(t, float64(1), payload["likes"])
	assert.Equal(t, float64(0), payload["dislikes"])

	status, payload = postReaction(t, app, "1", "dislike")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "disliked", payload["state"])
	assert.Equal(t, float64(0), payload["likes"])
	assert.Equal(t, float64(1), payload["dislikes"])

	status, payload = postReaction(t, app, "1", "dislike")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "none", payload["state"])
	assert.Equal(t, float64(0), payload["likes"])
	assert.Equal(t, float64(0), payload["dislikes"])
}

func TestHandleReactBadRequests(t *testing.T) {
	repo := newFakeReactionRepo()
	app := newReactionTestApp(repo, usercontext.UserContext{UserID: 7, IsLoggedIn: true})

	status, payload := postReaction(t, app, "1", "love")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "bad_request", payload["error"])

	status, _ = postReaction(t, app, "abc", "like")
	assert.Equal(t, fiber.StatusBadRequest, status)

	assert.Equal(t, 0, repo.calls)
}
