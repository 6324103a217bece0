package views

// Screen is one of the top-level views.
type Screen string

const (
	ScreenDashboard Screen = "dashboard"
	ScreenCategory  Screen = "category"
	ScreenGrocery   Screen = "grocery"
	ScreenCars      Screen = "cars"
)

// Router tracks the current screen and, on the category screen, which
// category is open. The zero value shows the dashboard.
type Router struct {
	screen   Screen
	category string
}

func NewRouter() *Router {
	return &Router{screen: ScreenDashboard}
}

func (r *Router) Screen() Screen {
	if r.screen == "" {
		return ScreenDashboard
	}
	return r.screen
}

// Category returns the open category name, or "" outside the category screen.
func (r *Router) Category() string { return r.category }

func (r *Router) OpenCategory(name string) {
	r.screen = ScreenCategory
	r.category = name
}

func (r *Router) OpenGroceries() {
	r.screen = ScreenGrocery
	r.category = ""
}

func (r *Router) OpenCars() {
	r.screen = ScreenCars
	r.category = ""
}

// Back returns to the dashboard.
func (r *Router) Back() {
	r.screen = ScreenDashboard
	r.category = ""
}
