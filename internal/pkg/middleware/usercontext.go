package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vestniklab/Vestnik/app/controllers"
	"github.com/vestniklab/Vestnik/internal/pkg/session"
	"github.com/vestniklab/Vestnik/internal/pkg/usercontext"
)

// UserContextMiddleware resolves the session once per request and exposes
// the result as a single UserContext local. Handlers read that instead of
// touching the session cookie themselves.
func UserContextMiddleware(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return anonymous(c)
	}

	userID := sess.Get(controllers.USER_ID)
	if userID == nil {
		return anonymous(c)
	}

	username := session.GetSessionValue(c, controllers.USER_NAME)
	isAdmin := sess.Get(controllers.USER_IS_ADMIN)

	userCtx := usercontext.UserContext{
		UserID:     userID.(uint),
		Username:   username,
		IsLoggedIn: true,
		IsAdmin:    isAdmin != nil && isAdmin.(bool),
	}
	c.Locals(usercontext.KeyUserContext, userCtx)
	c.Locals(usercontext.KeyLoggedIn, true)
	c.Locals(usercontext.KeyIsAdmin, userCtx.IsAdmin)

	return c.Next()
}

func anonymous(c *fiber.Ctx) error {
	c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
		IsLoggedIn: false,
		IsAdmin:    false,
	})
	c.Locals(usercontext.KeyLoggedIn, false)
	c.Locals(usercontext.KeyIsAdmin, false)
	return c.Next()
}
