package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/vestniklab/Vestnik/app/repository"
	"github.com/vestniklab/Vestnik/internal/pkg/aggregator"
	"github.com/vestniklab/Vestnik/internal/pkg/reactions"
	"github.com/vestniklab/Vestnik/internal/pkg/usercontext"
)

// NewsController renders the public news detail page
type NewsController struct {
	agg       *aggregator.Aggregator
	engine    *reactions.Engine
	newsRepo  repository.NewsRepository
	statsRepo repository.StatsRepository
}

// NewNewsController creates a new news controller
func NewNewsController(agg *aggregator.Aggregator, engine *reactions.Engine, newsRepo repository.NewsRepository, statsRepo repository.StatsRepository) *NewsController {
	return &NewsController{agg: agg, engine: engine, newsRepo: newsRepo, statsRepo: statsRepo}
}

// HandleNewsShow renders a single news article with comments, reaction
// counts and the viewer's own reaction state.
func (nc *NewsController) HandleNewsShow(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusNotFound).SendString("Новость не найдена")
	}

	news, err := nc.newsRepo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Новость не найдена")
	}

	// Drafts are visible to their author and to admins only.
	if !news.Published && news.AuthorID != userCtx.UserID && !userCtx.IsAdmin {
		return c.Status(fiber.StatusNotFound).SendString("Новость не найдена")
	}

	if err := nc.statsRepo.IncrementViews(id); err != nil {
		log.Printf("Error incrementing views for news %d: %v", id, err)
	}

	detail := nc.agg.Detail(*news)

	comments, err := nc.agg.Comments(id)
	if err != nil {
		log.Printf("Error fetching comments for news %d: %v", id, err)
	}

	viewerState, err := nc.engine.StateOf(userCtx.UserID, id)
	if err != nil {
		log.Printf("Error resolving viewer reaction for news %d: %v", id, err)
		viewerState = reactions.StateNone
	}

	return render(c, "pages/news_show", detail.Title, fiber.Map{
		"News":        detail,
		"Comments":    comments,
		"ViewerState": string(viewerState),
	})
}

var newsController *NewsController

// InitializeNewsController initializes the global news controller
func InitializeNewsController() {
	repos := repository.GetGlobalRepositories()
	newsController = NewNewsController(
		newAggregator(repos),
		reactions.NewEngine(repos.Reaction),
		repos.News,
		repos.Stats,
	)
}

// GetNewsController returns the global news controller instance
func GetNewsController() *NewsController {
	if newsController == nil {
		InitializeNewsController()
	}
	return newsController
}
