// Package web serves the portfolio page and its HTMX fragments.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/store"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server renders the portfolio.
type Server struct {
	cfg        *config.Config
	db         *store.DB
	page       content.Page
	about      template.HTML
	ai         template.HTML
	engine     *gin.Engine
	httpServer *http.Server
}

// New builds the gin engine for page. The configured contact address and
// scene URL replace the ones in page.
func New(cfg *config.Config, db *store.DB, page content.Page) (*Server, error) {
	gin.SetMode(cfg.Mode)

	page.Profile.Email = cfg.ContactAddress
	if cfg.SceneURL != "" {
		page.SceneURL = cfg.SceneURL
	}

	about, err := content.RenderMarkdown(page.About)
	if err != nil {
		return nil, fmt.Errorf("about section: %w", err)
	}
	ai, err := content.RenderMarkdown(page.AI)
	if err != nil {
		return nil, fmt.Errorf("ai section: %w", err)
	}

	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{cfg: cfg, db: db, page: page, about: about, ai: ai}
	s.engine = s.buildRouter(tmpl)
	return s, nil
}

func (s *Server) buildRouter(tmpl *template.Template) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(tmpl)

	r.Static("/static", s.cfg.StaticDir)
	r.Use(s.visitorMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Home page route
	r.GET("/", s.handleIndex)

	r.POST("/theme/toggle", s.handleThemeToggle)
	r.GET("/nav/:target", s.handleNavigate)

	// HTMX Contact form endpoint - returns just the form HTML
	r.GET("/contact-form", s.handleContactForm)
	r.POST("/contact", s.handleContactSubmit)

	r.GET("/skills-content", s.handleSkills)
	r.GET("/experience-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "experience.html", s.page.Roles)
	})
	r.GET("/education-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "education.html", s.page)
	})

	return r
}

// Handler returns the HTTP handler serving the site.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on the configured port until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go s.cleanupStalePreferences(ctx)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Portfolio listening on %s", s.httpServer.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}
