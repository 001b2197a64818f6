package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vestniklab/Vestnik/app/controllers"
	"github.com/vestniklab/Vestnik/internal/pkg/middleware"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Public feed + article pages
	app.Get("/", controllers.GetFeedController().HandleHome)
	app.Get("/news/:id", controllers.GetNewsController().HandleNewsShow)

	// Auth
	app.Get("/login", controllers.HandleAuthLogin)
	app.Post("/login", controllers.HandleAuthLogin)
	app.Get("/register", controllers.HandleAuthRegister)
	app.Post("/register", controllers.HandleAuthRegister)
	app.Post("/logout", middleware.RequireAuth, controllers.HandleAuthLogout)

	// Author workspace
	myNews := app.Group("/my/news", middleware.RequireAuth)
	myNews.Get("/", controllers.GetMyNewsController().HandleMyNews)
	myNews.Get("/create", controllers.GetMyNewsController().HandleNewsCreate)
	myNews.Post("/create", controllers.GetMyNewsController().HandleNewsCreate)
	myNews.Get("/:id/edit", controllers.GetMyNewsController().HandleNewsEdit)
	myNews.Post("/:id/edit", controllers.GetMyNewsController().HandleNewsEdit)
	myNews.Post("/:id/delete", controllers.GetMyNewsController().HandleNewsDelete)

	// Own profile
	profile := app.Group("/profile", middleware.RequireAuth)
	profile.Get("/", controllers.GetProfileController().HandleProfile)
	profile.Get("/edit", controllers.GetProfileController().HandleProfileEdit)
	profile.Post("/edit", controllers.GetProfileController().HandleProfileEdit)
}
