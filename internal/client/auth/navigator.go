package auth

// Route names a view the manager can direct the UI to after an operation.
type Route string

const (
	RouteHome        Route = "home"
	RouteDashboard   Route = "dashboard"
	RouteVerifyEmail Route = "verify-email"
	RouteLogin       Route = "login"
)

// Navigator receives post-operation navigation. The UI layer implements it;
// a no-op implementation is valid for headless use.
type Navigator interface {
	Navigate(route Route)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(route Route)

func (f NavigatorFunc) Navigate(route Route) { f(route) }
