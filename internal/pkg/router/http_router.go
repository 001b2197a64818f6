package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vestniklab/Vestnik/app/controllers"
	"github.com/vestniklab/Vestnik/internal/pkg/middleware"
	"github.com/vestniklab/Vestnik/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	controllers.InitializeFeedController()
	controllers.InitializeNewsController()
	controllers.InitializeMyNewsController()
	controllers.InitializeProfileController()
	controllers.InitializeAdminController()

	h.registerPublicRoutes(app)
	h.registerAdminRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
