package server

// Route paths exposed by the authority. They mirror the admin panel's
// existing API surface.
const (
	RouteCreateFirstAdmin = "/admin/createfirstadmin"
	RouteSignUp           = "/admin/signup"
	RouteLogin            = "/admin/login"
	RouteMe               = "/admin/me"
	RouteRefresh          = "/admin/refresh"
	RouteLogout           = "/admin/logout"
	RouteAdmins           = "/admin/admins"
	RouteToggleStatus     = "/admin/toggle/{adminID}"
	RouteHealth           = "/health"
)

func (s *Server) initRoutes() {
	s.RegisterRouteHandler("GET "+RouteHealth, ChainMiddleware(s.HealthHandler(), s.APIMiddleware()...))

	// Public: bootstrap, login, logout
	s.RegisterRouteHandler("POST "+RouteCreateFirstAdmin, ChainMiddleware(s.CreateFirstAdminHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteLogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))

	// Session gate only: refresh reads the refresh cookie itself
	s.RegisterRouteHandler("GET "+RouteRefresh, ChainMiddleware(s.RefreshHandler(), s.APIMiddleware(s.RequireSession())...))

	// Dual gate: access token AND bound session, each checked independently
	s.RegisterRouteHandler("GET "+RouteMe, ChainMiddleware(s.MeHandler(), s.APIMiddleware(s.RequireAccessToken(), s.RequireSession())...))

	// Dual gate plus a fresh superAdmin lookup
	s.RegisterRouteHandler("POST "+RouteSignUp, ChainMiddleware(s.SignUpHandler(), s.APIMiddleware(s.RequireAccessToken(), s.RequireSession(), s.RequireSuperAdmin())...))
	s.RegisterRouteHandler("GET "+RouteAdmins, ChainMiddleware(s.ListAdminsHandler(), s.APIMiddleware(s.RequireAccessToken(), s.RequireSession(), s.RequireSuperAdmin())...))
	s.RegisterRouteHandler("PUT "+RouteToggleStatus, ChainMiddleware(s.ToggleStatusHandler(), s.APIMiddleware(s.RequireAccessToken(), s.RequireSession(), s.RequireSuperAdmin())...))
}
