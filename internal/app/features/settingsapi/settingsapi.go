// internal/app/features/settingsapi/settingsapi.go
//
// JSON API over the singleton settings documents: the public company
// profile, theme colors, and the admin-only email configuration with a
// test-send endpoint.
package settingsapi

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	emailconfigstore "github.com/meridian-compliance/meridian/internal/app/store/emailconfig"
	themestore "github.com/meridian-compliance/meridian/internal/app/store/themesettings"
	"github.com/meridian-compliance/meridian/internal/app/system/apiauth"
	"github.com/meridian-compliance/meridian/internal/app/system/apicors"
	"github.com/meridian-compliance/meridian/internal/app/system/auth"
	"github.com/meridian-compliance/meridian/internal/app/system/jsonutil"
	"github.com/meridian-compliance/meridian/internal/app/system/mailer"
	"github.com/meridian-compliance/meridian/internal/app/system/viewdata"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// Handler provides the settings API.
type Handler struct {
	db      *mongo.Database
	storage storage.Store
	logger  *zap.Logger
}

// NewHandler creates a new settings API Handler. storage may be nil when
// no upload provider is configured; logo URLs are then omitted.
func NewHandler(db *mongo.Database, st storage.Store, logger *zap.Logger) *Handler {
	return &Handler{db: db, storage: st, logger: logger}
}

// Routes returns a chi.Router for the /settings subtree.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.With(apicors.Middleware()).Get("/public", h.Public)

	r.Route("/email-configuration", func(r chi.Router) {
		r.Use(apiauth.RequireAdmin)
		r.Get("/", h.GetEmailConfig)
		r.Put("/", h.PutEmailConfig)
		r.Post("/test", h.SendTestEmail)
	})
	return r
}

// ThemeRoutes returns a chi.Router for the /theme-settings subtree.
func ThemeRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.With(apicors.Middleware()).Get("/", h.GetTheme)
	r.With(apiauth.RequireAdmin).Put("/", h.PutTheme)
	return r
}

// publicSettings is the public-safe slice of company settings.
type publicSettings struct {
	CompanyName  string `json:"companyName"`
	Tagline      string `json:"tagline,omitempty"`
	LogoURL      string `json:"logoUrl,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
	Address      string `json:"address,omitempty"`
	LinkedInURL  string `json:"linkedinUrl,omitempty"`
	TwitterURL   string `json:"twitterUrl,omitempty"`
}

// Public returns the company profile fields the site may expose.
func (h *Handler) Public(w http.ResponseWriter, r *http.Request) {
	company := viewdata.GetCompanySettings(r.Context(), h.db)

	out := publicSettings{
		CompanyName:  company.CompanyName,
		Tagline:      company.Tagline,
		ContactEmail: company.ContactEmail,
		ContactPhone: company.ContactPhone,
		Address:      company.Address,
		LinkedInURL:  company.LinkedInURL,
		TwitterURL:   company.TwitterURL,
	}
	if company.HasLogo() && h.storage != nil {
		out.LogoURL = h.storage.URL(company.LogoPath)
	}
	jsonutil.Success(w, out)
}

// GetTheme returns the theme colors, falling back to defaults per color.
func (h *Handler) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := themestore.New(h.db).Get(r.Context())
	if err != nil {
		h.logger.Error("failed to load theme settings", zap.Error(err))
		jsonutil.InternalError(w, "failed to load theme settings")
		return
	}
	jsonutil.Success(w, theme)
}

// PutTheme saves the theme colors.
func (h *Handler) PutTheme(w http.ResponseWriter, r *http.Request) {
	var theme models.ThemeSettings
	if err := jsonutil.Decode(r, &theme); err != nil {
		jsonutil.BadRequest(w, "invalid request body")
		return
	}

	store := themestore.New(h.db)
	if err := store.Save(r.Context(), theme); err != nil {
		h.logger.Error("failed to save theme settings", zap.Error(err))
		jsonutil.InternalError(w, "failed to save theme settings")
		return
	}

	saved, err := store.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to reload theme settings", zap.Error(err))
		jsonutil.InternalError(w, "failed to load theme settings")
		return
	}
	jsonutil.Success(w, saved)
}

// GetEmailConfig returns the stored SMTP configuration. The password is
// never serialized; hasPassword tells the dashboard whether one is set.
func (h *Handler) GetEmailConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := emailconfigstore.New(h.db).Get(r.Context())
	if err != nil {
		h.logger.Error("failed to load email config", zap.Error(err))
		jsonutil.InternalError(w, "failed to load email configuration")
		return
	}
	if cfg == nil {
		jsonutil.SuccessNull(w)
		return
	}
	jsonutil.Success(w, map[string]any{
		"smtpHost":    cfg.SMTPHost,
		"smtpPort":    cfg.SMTPPort,
		"smtpUser":    cfg.SMTPUser,
		"from":        cfg.From,
		"fromName":    cfg.FromName,
		"hasPassword": cfg.SMTPPass != "",
	})
}

// emailConfigRequest carries the password explicitly since the model
// never serializes it. An empty password keeps the stored one.
type emailConfigRequest struct {
	SMTPHost string `json:"smtpHost"`
	SMTPPort int    `json:"smtpPort"`
	SMTPUser string `json:"smtpUser"`
	SMTPPass string `json:"smtpPass"`
	From     string `json:"from"`
	FromName string `json:"fromName"`
}

// PutEmailConfig saves the SMTP configuration.
func (h *Handler) PutEmailConfig(w http.ResponseWriter, r *http.Request) {
	var req emailConfigRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.BadRequest(w, "invalid request body")
		return
	}

	store := emailconfigstore.New(h.db)
	err := store.Save(r.Context(), models.EmailConfig{
		SMTPHost: req.SMTPHost,
		SMTPPort: req.SMTPPort,
		SMTPUser: req.SMTPUser,
		SMTPPass: req.SMTPPass,
		From:     req.From,
		FromName: req.FromName,
	})
	if err != nil {
		h.logger.Error("failed to save email config", zap.Error(err))
		jsonutil.InternalError(w, "failed to save email configuration")
		return
	}
	jsonutil.Success(w, map[string]bool{"saved": true})
}

// SendTestEmail sends a test message to the signed-in admin using the
// stored SMTP configuration.
func (h *Handler) SendTestEmail(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	cfg, err := emailconfigstore.New(h.db).Get(r.Context())
	if err != nil {
		h.logger.Error("failed to load email config", zap.Error(err))
		jsonutil.InternalError(w, "failed to load email configuration")
		return
	}
	if cfg == nil || !cfg.IsConfigured() {
		jsonutil.BadRequest(w, "email is not configured")
		return
	}

	m := mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Pass:     cfg.SMTPPass,
		From:     cfg.From,
		FromName: cfg.FromName,
	}, h.logger)

	company := viewdata.GetCompanySettings(r.Context(), h.db)
	text, html := mailer.TestEmail(mailer.TestEmailData{
		AppName:  company.CompanyName,
		SentBy:   u.Email,
		SMTPHost: cfg.SMTPHost,
	})

	err = m.Send(mailer.Email{
		To:       u.Email,
		Subject:  "Test email from " + company.CompanyName,
		TextBody: text,
		HTMLBody: html,
	})
	if err != nil {
		jsonutil.InternalError(w, "failed to send test email")
		return
	}
	jsonutil.Success(w, map[string]string{"sentTo": u.Email})
}
