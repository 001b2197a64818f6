package viewmodel

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/vestniklab/Vestnik/internal/pkg/usercontext"
)

// Layout carries the data every page template needs.
type Layout struct {
	Title      string
	IsLoggedIn bool
	IsAdmin    bool
	Username   string
	Flash      fiber.Map
}

// NewLayout builds the layout data for the current request.
func NewLayout(c *fiber.Ctx, title string) Layout {
	userCtx := usercontext.GetUserContext(c)
	return Layout{
		Title:      title,
		IsLoggedIn: userCtx.IsLoggedIn,
		IsAdmin:    userCtx.IsAdmin,
		Username:   userCtx.Username,
		Flash:      flash.Get(c),
	}
}

// Apply merges the layout fields into the template data map.
func (l Layout) Apply(data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}
	data["Title"] = l.Title
	data["IsLoggedIn"] = l.IsLoggedIn
	data["IsAdmin"] = l.IsAdmin
	data["Username"] = l.Username
	data["Flash"] = l.Flash
	return data
}
