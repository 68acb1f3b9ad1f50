package web

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/navigation"
	"github.com/Zachkp/portfolio/internal/theme"
)

const colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

type pageView struct {
	Page        content.Page
	About       template.HTML
	AI          template.HTML
	Sections    []navigation.Item
	ThemeClass  string
	ToggleLabel string
	Skills      skillsView
	Contact     contactView
	Year        int
}

type skillsView struct {
	Groups []content.SkillGroup
	Active string
	Skills []content.Skill
}

type contactView struct {
	Name         string
	Email        string
	Message      string
	NameError    string
	EmailError   string
	MessageError string
}

func newContactView(ctrl *contact.Controller) contactView {
	state, errs := ctrl.State(), ctrl.Errors()
	return contactView{
		Name:         state.Name,
		Email:        state.Email,
		Message:      state.Message,
		NameError:    errs[contact.Name],
		EmailError:   errs[contact.Email],
		MessageError: errs[contact.Message],
	}
}

func (s *Server) newSkillsView(tab string) skillsView {
	group, _ := s.page.SkillGroup(tab)
	return skillsView{Groups: s.page.SkillGroups, Active: group.Name, Skills: group.Levels()}
}

// label of the button that switches to the other mode
func toggleLabel(p theme.Preference) string {
	if p == theme.Dark {
		return "Light"
	}
	return "Dark"
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// The client hint arrives quoted: Sec-CH-Prefers-Color-Scheme: "dark"
func colorSchemeSignal(c *gin.Context) theme.Signal {
	return theme.SignalFunc(func() bool {
		return strings.Trim(c.GetHeader(colorSchemeHint), `" `) == "dark"
	})
}

func (s *Server) themeController(c *gin.Context, svc *theme.Service) *theme.Controller {
	prefs := s.db.Visitor(c.Request.Context(), visitorID(c))
	return theme.NewController(svc, prefs, colorSchemeSignal(c))
}

func (s *Server) renderPage(c *gin.Context, status int, form contactView) {
	view := pageView{
		Page:     s.page,
		About:    s.about,
		AI:       s.ai,
		Sections: s.page.Sections(),
		Skills:   s.newSkillsView(""),
		Contact:  form,
		Year:     time.Now().Year(),
	}

	svc := theme.NewService()
	svc.Subscribe(func(p theme.Preference) {
		view.ThemeClass = theme.Class(p)
		view.ToggleLabel = toggleLabel(p)
	})
	s.themeController(c, svc).Initialize()

	c.Header("Accept-CH", colorSchemeHint)
	c.Header("Critical-CH", colorSchemeHint)
	c.Header("Vary", colorSchemeHint)
	c.HTML(status, "index.html", view)
}

func (s *Server) handleIndex(c *gin.Context) {
	s.renderPage(c, http.StatusOK, contactView{})
}

func (s *Server) handleThemeToggle(c *gin.Context) {
	svc := theme.NewService()
	ctrl := s.themeController(c, svc)
	ctrl.Initialize()
	next := ctrl.Toggle()
	log.Printf("Theme set to %s for visitor %s", next, hashVisitor(visitorID(c)))

	if !isHTMX(c) {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	trigger, _ := json.Marshal(gin.H{
		"themeChanged": gin.H{"theme": next.String(), "class": theme.Class(next)},
	})
	c.Header("HX-Trigger", string(trigger))
	c.String(http.StatusOK, toggleLabel(next))
}

// sectionRegion scrolls the browser to one of the page's sections.
type sectionRegion struct {
	c  *gin.Context
	id navigation.Target
}

func (r sectionRegion) ScrollIntoView(opts navigation.ScrollOptions) {
	if !isHTMX(r.c) {
		r.c.Redirect(http.StatusSeeOther, "/#"+string(r.id))
		return
	}
	trigger, _ := json.Marshal(gin.H{
		"scrollTo": gin.H{"id": string(r.id), "behavior": opts.Behavior, "block": opts.Block},
	})
	r.c.Header("HX-Trigger", string(trigger))
	r.c.Status(http.StatusOK)
}

func (s *Server) handleNavigate(c *gin.Context) {
	locator := navigation.LocatorFunc(func(t navigation.Target) (navigation.Region, bool) {
		if !s.page.HasSection(t) {
			return nil, false
		}
		return sectionRegion{c: c, id: t}, true
	})

	target, ok := navigation.Lookup(c.Param("target"))
	if !ok || !navigation.NewController(locator).NavigateTo(target) {
		c.Status(http.StatusNoContent)
	}
}

func (s *Server) handleContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", contactView{})
}

// Handle contact form submission. A valid form is handed to the visitor's
// mail client; nothing is sent from the server.
func (s *Server) handleContactSubmit(c *gin.Context) {
	var target string
	ctrl := contact.NewController(s.cfg.ContactAddress, contact.OpenerFunc(func(uri string) {
		target = uri
	}))
	for _, f := range contact.Fields {
		ctrl.UpdateField(f, c.PostForm(string(f)))
	}

	_, ok := ctrl.Submit()
	view := newContactView(ctrl)

	switch {
	case ok && isHTMX(c):
		c.Header("HX-Redirect", target)
		c.HTML(http.StatusOK, "contact.html", view)
	case ok:
		c.Redirect(http.StatusSeeOther, target)
	case isHTMX(c):
		// HTMX only swaps 2xx responses
		c.HTML(http.StatusOK, "contact.html", view)
	default:
		s.renderPage(c, http.StatusUnprocessableEntity, view)
	}
}

func (s *Server) handleSkills(c *gin.Context) {
	c.HTML(http.StatusOK, "skills.html", s.newSkillsView(c.Query("tab")))
}
