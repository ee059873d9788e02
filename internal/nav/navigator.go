// Package nav implements the screen navigation stack and the session guard
// that every screen runs on mount.
package nav

// Route names one of the four screens.
type Route string

const (
	RouteLogin        Route = "Login"
	RouteRegistration Route = "Registration"
	RouteDashboard    Route = "Dashboard"
	RouteProducts     Route = "Products"
)

// Navigator is the navigation stack. The top of the stack is the screen the
// user sees; Login is the initial route.
type Navigator struct {
	stack []Route
}

// New creates a navigator with Login as the sole stack entry.
func New() *Navigator {
	return &Navigator{stack: []Route{RouteLogin}}
}

// Current returns the route on top of the stack.
func (n *Navigator) Current() Route {
	return n.stack[len(n.stack)-1]
}

// Navigate pushes a route, preserving the back-stack.
func (n *Navigator) Navigate(route Route) {
	n.stack = append(n.stack, route)
}

// Reset replaces the whole stack with a single route, clearing the back-stack.
func (n *Navigator) Reset(route Route) {
	n.stack = []Route{route}
}

// Back pops the current route. At the root it is a no-op.
func (n *Navigator) Back() {
	if len(n.stack) > 1 {
		n.stack = n.stack[:len(n.stack)-1]
	}
}

// Depth returns the stack size.
func (n *Navigator) Depth() int {
	return len(n.stack)
}
