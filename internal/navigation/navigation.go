// Package navigation maps menu selections to scroll actions on page regions.
package navigation

// Target names one of the page regions.
type Target string

const (
	Home       Target = "home"
	About      Target = "about"
	Skills     Target = "skills"
	Experience Target = "experience"
	Projects   Target = "projects"
	Education  Target = "education"
	AI         Target = "ai"
	Contact    Target = "contact"
)

// Item is one entry of the navigation menu.
type Item struct {
	Target Target
	Label  string
}

// Items is the menu in page order.
var Items = []Item{
	{Home, "Home"},
	{About, "About"},
	{Skills, "Skills"},
	{Experience, "Experience"},
	{Projects, "Projects"},
	{Education, "Education"},
	{AI, "AI & Innovation"},
	{Contact, "Contact"},
}

// Lookup reports whether id names a menu target.
func Lookup(id string) (Target, bool) {
	for _, it := range Items {
		if string(it.Target) == id {
			return it.Target, true
		}
	}
	return "", false
}

// ScrollOptions describes how a region is brought into view.
type ScrollOptions struct {
	Behavior string
	Block    string
}

// Smooth scrolls the region's top edge to the top of the viewport.
var Smooth = ScrollOptions{Behavior: "smooth", Block: "start"}

// Region is a visible part of the page that can be scrolled to.
type Region interface {
	ScrollIntoView(opts ScrollOptions)
}

// Locator finds the region for a target, if the page has one.
type Locator interface {
	Locate(t Target) (Region, bool)
}

// LocatorFunc adapts a function to a Locator.
type LocatorFunc func(Target) (Region, bool)

func (f LocatorFunc) Locate(t Target) (Region, bool) { return f(t) }

// Controller dispatches a target to a scroll action. It keeps no state
// between calls.
type Controller struct {
	locator Locator
}

func NewController(l Locator) *Controller {
	return &Controller{locator: l}
}

// NavigateTo scrolls the region for t into view. Unknown targets are
// ignored; the return value reports whether a scroll happened.
func (c *Controller) NavigateTo(t Target) bool {
	if c.locator == nil {
		return false
	}
	region, ok := c.locator.Locate(t)
	if !ok || region == nil {
		return false
	}
	region.ScrollIntoView(Smooth)
	return true
}
