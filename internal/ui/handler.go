package ui

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/best-life-api/internal/config"
	"github.com/best-life-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const sessionKey = "session"

// DataSource is the subset of the data API the pages read
type DataSource interface {
	Usernames(ctx context.Context, roleName string) []string
	UserID(ctx context.Context, userName string) *int64
	RecentPreferences(ctx context.Context, userID int64) []models.PreferenceSummary
	Scores(ctx context.Context) []models.MLScore
	Countries(ctx context.Context) []models.Country
	Factors(ctx context.Context) []models.Factor
}

// Handler serves the persona selector pages
type Handler struct {
	personas  Personas
	api       DataSource
	store     Store
	session   config.SessionConfig
	templates *template.Template
	log       zerolog.Logger
}

// NewHandler creates a Handler and parses the page templates
func NewHandler(personas Personas, api DataSource, store Store, session config.SessionConfig, log zerolog.Logger) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Handler{
		personas:  personas,
		api:       api,
		store:     store,
		session:   session,
		templates: tmpl,
		log:       log.With().Str("handler", "ui").Logger(),
	}, nil
}

type selectorView struct {
	Persona Persona
	Options []string
	Choice  string
	State   SelectorState
	Invalid bool
}

type homePage struct {
	Title       string
	Session     *Session
	Placeholder string
	Selectors   []selectorView
}

type rolePage struct {
	Title       string
	Session     *Session
	Persona     Persona
	Preferences []models.PreferenceSummary
	Scores      []models.MLScore
	Countries   []models.Country
	Factors     []models.Factor
}

// LoadSession attaches the caller's session to the context, or a fresh
// unsaved one when the cookie is missing, unknown or expired
func (h *Handler) LoadSession(c *gin.Context) {
	s := &Session{ID: uuid.NewString()}

	if id, err := c.Cookie(h.session.CookieName); err == nil && id != "" {
		loaded, err := h.store.Get(c.Request.Context(), id)
		switch {
		case err == nil:
			s = loaded
		case errors.Is(err, ErrSessionNotFound):
		default:
			h.log.Warn().Err(err).Msg("Failed to load session")
		}
	}

	c.Set(sessionKey, s)
	c.Next()
}

func sessionFrom(c *gin.Context) *Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	return &Session{ID: uuid.NewString()}
}

func (h *Handler) saveSession(c *gin.Context, s *Session) error {
	if err := h.store.Save(c.Request.Context(), s); err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.session.CookieName, s.ID, int(h.session.TTL/time.Second), "/", "", h.session.Secure, true)
	return nil
}

// Home handles GET /. Landing here logs the session out. The optional
// persona and username query parameters preselect a dropdown option.
func (h *Handler) Home(c *gin.Context) {
	s := sessionFrom(c)
	if s.stored && s.Authenticated {
		s.Authenticated = false
		if err := h.saveSession(c, s); err != nil {
			h.log.Error().Err(err).Msg("Failed to clear session authentication")
		}
	}

	h.log.Info().Msg("Loading the Home page")
	h.renderHome(c, c.Query("persona"), c.Query("username"), false)
}

// renderHome populates every dropdown concurrently and renders the page.
// key names the persona whose dropdown holds choice; submitted marks a
// Login press rather than a plain selection.
func (h *Handler) renderHome(c *gin.Context, key, choice string, submitted bool) {
	views := make([]selectorView, len(h.personas))

	g, ctx := errgroup.WithContext(c.Request.Context())
	for i, p := range h.personas {
		i, p := i, p
		views[i] = selectorView{Persona: p, State: StateUnselected}
		g.Go(func() error {
			views[i].Options = h.api.Usernames(ctx, p.Role)
			return nil
		})
	}
	_ = g.Wait()

	for i := range views {
		if views[i].Persona.Key != key {
			continue
		}
		if submitted {
			views[i].State = Evaluate(choice)
		} else {
			views[i].State = Select(choice)
		}
		views[i].Invalid = views[i].State == StateSubmittedInvalid
		if views[i].State == StateSelected && contains(views[i].Options, choice) {
			views[i].Choice = choice
		} else if views[i].State == StateSelected {
			views[i].State = StateUnselected
		}
	}

	c.HTML(http.StatusOK, "home.html", homePage{
		Title:       "Home",
		Session:     sessionFrom(c),
		Placeholder: Placeholder,
		Selectors:   views,
	})
}

// Login handles POST /login/:persona with form field username
func (h *Handler) Login(c *gin.Context) {
	persona, ok := h.personas.ByKey(c.Param("persona"))
	if !ok {
		c.String(http.StatusNotFound, "Unknown persona")
		return
	}

	choice := c.PostForm("username")
	if Evaluate(choice) == StateSubmittedInvalid {
		h.log.Info().Str("persona", persona.Key).Msg("Login pressed without a username")
		h.renderHome(c, persona.Key, choice, true)
		return
	}

	s := sessionFrom(c)
	s.PersonaKey = persona.Key
	s.Role = persona.Role
	s.FirstName = persona.FirstName
	s.Username = choice
	s.UserID = h.api.UserID(c.Request.Context(), choice)
	s.Authenticated = true

	if err := h.saveSession(c, s); err != nil {
		h.log.Error().Err(err).Str("persona", persona.Key).Msg("Failed to save session")
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	h.log.Info().Str("persona", persona.Key).Str("username", choice).Msg("Logging in")
	c.Redirect(http.StatusSeeOther, persona.Home)
}

// Logout handles POST /logout
func (h *Handler) Logout(c *gin.Context) {
	s := sessionFrom(c)
	if s.stored {
		if err := h.store.Delete(c.Request.Context(), s.ID); err != nil {
			h.log.Error().Err(err).Msg("Failed to delete session")
		}
	}
	c.SetCookie(h.session.CookieName, "", -1, "/", "", h.session.Secure, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// RolePage serves the home page of persona. Sessions that are not logged in
// with the persona's role are sent back to /.
func (h *Handler) RolePage(persona Persona) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessionFrom(c)
		owner, ok := h.personas.ByRole(s.Role)
		if !s.Authenticated || !ok || owner.Key != persona.Key {
			c.Redirect(http.StatusFound, "/")
			return
		}

		ctx := c.Request.Context()
		page := rolePage{Title: persona.Title, Session: s, Persona: persona}

		switch persona.Role {
		case "student":
			page.Preferences = []models.PreferenceSummary{}
			if s.UserID != nil {
				page.Preferences = h.api.RecentPreferences(ctx, *s.UserID)
			}
		case "policymaker":
			page.Scores = h.api.Scores(ctx)
		case "activist":
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				page.Countries = h.api.Countries(gctx)
				return nil
			})
			g.Go(func() error {
				page.Factors = h.api.Factors(gctx)
				return nil
			})
			_ = g.Wait()
		}

		c.HTML(http.StatusOK, "role.html", page)
	}
}

func contains(options []string, choice string) bool {
	for _, o := range options {
		if o == choice {
			return true
		}
	}
	return false
}
