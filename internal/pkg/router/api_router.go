package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/vestniklab/Vestnik/app/controllers"
	"github.com/vestniklab/Vestnik/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// The news pages call these from the browser. Auth failures answer
	// with JSON, never a redirect. The reaction route stays open so the
	// engine itself can refuse anonymous callers.
	api.Get("/news/search", controllers.GetSearchController().HandleNewsSearch)
	api.Get("/news/:id/comments", controllers.GetCommentController().HandleCommentList)
	api.Post("/news/:id/comments", middleware.RequireAPISessionAuth, controllers.GetCommentController().HandleCommentCreate)
	api.Post("/news/:id/reactions", controllers.GetReactionController().HandleReact)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
