package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vestniklab/Vestnik/app/controllers"
	"github.com/vestniklab/Vestnik/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	ac := controllers.GetAdminController()

	adminGroup := app.Group("/admin", middleware.RequireAdmin)
	adminGroup.Get("/", ac.HandleDashboard)

	// News management
	adminGroup.Get("/news", ac.HandleNewsList)
	adminGroup.Post("/news/:id/delete", ac.HandleNewsDelete)

	// Category management
	adminGroup.Get("/categories", ac.HandleCategoryList)
	adminGroup.Get("/categories/create", ac.HandleCategoryCreate)
	adminGroup.Post("/categories/create", ac.HandleCategoryCreate)
	adminGroup.Get("/categories/:id/edit", ac.HandleCategoryEdit)
	adminGroup.Post("/categories/:id/edit", ac.HandleCategoryEdit)
	adminGroup.Post("/categories/:id/delete", ac.HandleCategoryDelete)

	// Profile management
	adminGroup.Get("/profiles", ac.HandleProfileList)
	adminGroup.Get("/profiles/:id/edit", ac.HandleProfileEdit)
	adminGroup.Post("/profiles/:id/edit", ac.HandleProfileEdit)
	adminGroup.Post("/profiles/:id/delete", ac.HandleProfileDelete)

	// Comment + reaction moderation
	adminGroup.Get("/comments", ac.HandleCommentList)
	adminGroup.Post("/comments/:id/delete", ac.HandleCommentDelete)
	adminGroup.Get("/reactions", ac.HandleReactionList)
	adminGroup.Post("/reactions/:id/delete", ac.HandleReactionDelete)
}
