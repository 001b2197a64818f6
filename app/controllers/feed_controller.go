package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/vestniklab/Vestnik/app/repository"
	"github.com/vestniklab/Vestnik/internal/pkg/aggregator"
)

// How many items the home feed shows at once.
const feedLimit = 20

// FeedController renders the public home feed
type FeedController struct {
	agg          *aggregator.Aggregator
	categoryRepo repository.CategoryRepository
}

// NewFeedController creates a new feed controller
func NewFeedController(agg *aggregator.Aggregator, categoryRepo repository.CategoryRepository) *FeedController {
	return &FeedController{agg: agg, categoryRepo: categoryRepo}
}

// HandleHome renders the home feed: published news, newest first, optionally
// narrowed to one category. Re-selecting the active category in the sidebar
// links back to the unfiltered feed (toggle semantics live in the template).
func (fc *FeedController) HandleHome(c *fiber.Ctx) error {
	selectedCategory := parseUintQuery(c, "category")

	newsList, err := fc.agg.Collect(repository.NewsFilter{PublishedOnly: true, Limit: feedLimit})
	if err != nil {
		log.Printf("Error collecting home feed: %v", err)
		return render(c, "pages/error", "Ошибка", fiber.Map{
			"Message": "Не удалось загрузить новости. Пожалуйста, попробуйте позже.",
		})
	}
	newsList = aggregator.FilterByCategory(newsList, selectedCategory)

	// The sidebar survives a failed category fetch as an empty list.
	categories, err := fc.categoryRepo.List()
	if err != nil {
		log.Printf("Error fetching categories: %v", err)
	}

	return render(c, "pages/home", "Все новости", fiber.Map{
		"News":             newsList,
		"Categories":       categories,
		"SelectedCategory": selectedCategory,
	})
}

var feedController *FeedController

// InitializeFeedController initializes the global feed controller
func InitializeFeedController() {
	repos := repository.GetGlobalRepositories()
	feedController = NewFeedController(newAggregator(repos), repos.Category)
}

// GetFeedController returns the global feed controller instance
func GetFeedController() *FeedController {
	if feedController == nil {
		InitializeFeedController()
	}
	return feedController
}
