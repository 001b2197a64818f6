package constants

// Static route constants
const (
	HomeRoute     = "/"
	LoginRoute    = "/login"
	RegisterRoute = "/register"
	MyNewsRoute   = "/my/news"
	ProfileRoute  = "/profile"
	AdminRoute    = "/admin"
)
