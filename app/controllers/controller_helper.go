package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/vestniklab/Vestnik/app/repository"
	"github.com/vestniklab/Vestnik/internal/pkg/aggregator"
	"github.com/vestniklab/Vestnik/internal/pkg/viewmodel"
)

// Session keys shared with the user-context middleware.
const (
	AUTH_KEY      string = "authenticated"
	USER_ID       string = "user_id"
	USER_NAME     string = "username"
	USER_IS_ADMIN string = "isAdmin"
)

// render merges the layout fields every template needs into data and
// renders the page inside the main layout.
func render(c *fiber.Ctx, template string, title string, data fiber.Map) error {
	data = viewmodel.NewLayout(c, title).Apply(data)

	return c.Render(template, data, "layouts/main")
}

// newAggregator wires a view-model aggregator over the app repositories.
func newAggregator(repos *repository.Repositories) *aggregator.Aggregator {
	return aggregator.New(aggregator.Sources{
		News:       repos.News,
		Profiles:   repos.Profile,
		Categories: repos.Category,
		Comments:   repos.Comment,
		Reactions:  repos.Reaction,
	})
}

// parseIDParam reads a numeric :id route parameter, 0 when absent or bad.
func parseIDParam(c *fiber.Ctx, name string) uint {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// parseUintQuery reads a numeric query parameter, 0 when absent or bad.
func parseUintQuery(c *fiber.Ctx, name string) uint {
	id, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
