package controllers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vestniklab/Vestnik/app/repository"
	"github.com/vestniklab/Vestnik/internal/pkg/aggregator"
)

// How many results the header search dialog shows.
const searchLimit = 5

// SearchController serves the global news search behind the header dialog
type SearchController struct {
	agg *aggregator.Aggregator
}

// NewSearchController creates a new search controller
func NewSearchController(agg *aggregator.Aggregator) *SearchController {
	return &SearchController{agg: agg}
}

// HandleNewsSearch finds published news whose title contains the query,
// newest first, with resolved author and engagement counts. A blank query
// answers with an empty list and touches nothing.
func (sc *SearchController) HandleNewsSearch(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return c.JSON([]aggregator.NewsWithDetails{})
	}

	results, err := sc.agg.Collect(repository.NewsFilter{
		PublishedOnly: true,
		TitleQuery:    query,
		Limit:         searchLimit,
	})
	if err != nil {
		log.Printf("Error searching news for %q: %v", query, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal",
			"message": "Не удалось выполнить поиск",
		})
	}

	return c.JSON(results)
}

var searchController *SearchController

// InitializeSearchController initializes the global search controller
func InitializeSearchController() {
	repos := repository.GetGlobalRepositories()
	searchController = NewSearchController(newAggregator(repos))
}

// GetSearchController returns the global search controller instance
func GetSearchController() *SearchController {
	if searchController == nil {
		InitializeSearchController()
	}
	return searchController
}
