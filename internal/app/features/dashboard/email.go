// internal/app/features/dashboard/email.go
package dashboard

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"

	emailconfigstore "github.com/meridian-compliance/meridian/internal/app/store/emailconfig"
	"github.com/meridian-compliance/meridian/internal/app/system/auth"
	"github.com/meridian-compliance/meridian/internal/app/system/formutil"
	"github.com/meridian-compliance/meridian/internal/app/system/mailer"
	"github.com/meridian-compliance/meridian/internal/app/system/viewdata"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// EmailFormVM is the view model for the SMTP configuration editor. The
// stored password is never echoed; HasPassword drives the placeholder.
type EmailFormVM struct {
	formutil.Base
	Config      models.EmailConfig
	HasPassword bool
	Success     bool
	TestSentTo  string
}

// ShowEmailForm renders the SMTP configuration editor.
func (h *Handler) ShowEmailForm(w http.ResponseWriter, r *http.Request) {
	cfg, err := emailconfigstore.New(h.db).Get(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load email config", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if cfg == nil {
		cfg = &models.EmailConfig{}
	}

	vm := EmailFormVM{
		Base:        formutil.NewBase(r, h.db, "Email", "/dashboard"),
		Config:      *cfg,
		HasPassword: cfg.SMTPPass != "",
		Success:     r.URL.Query().Get("success") == "1",
		TestSentTo:  r.URL.Query().Get("sent"),
	}
	vm.Config.SMTPPass = ""
	templates.Render(w, r, "dashboard/email", vm)
}

// SaveEmail saves the SMTP configuration. Leaving the password blank keeps
// the stored one.
func (h *Handler) SaveEmail(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	cfg := models.EmailConfig{
		SMTPHost: strings.TrimSpace(r.FormValue("smtp_host")),
		SMTPUser: strings.TrimSpace(r.FormValue("smtp_user")),
		SMTPPass: r.FormValue("smtp_pass"),
		From:     strings.TrimSpace(r.FormValue("from")),
		FromName: strings.TrimSpace(r.FormValue("from_name")),
	}
	cfg.UpdatedByID, cfg.UpdatedByName = editorIdentity(r)
	if port, err := strconv.Atoi(r.FormValue("smtp_port")); err == nil {
		cfg.SMTPPort = port
	}

	if err := emailconfigstore.New(h.db).Save(r.Context(), cfg); err != nil {
		h.errLog.Log(r, "failed to save email config", err)
		vm := EmailFormVM{
			Base:   formutil.NewBase(r, h.db, "Email", "/dashboard"),
			Config: cfg,
		}
		vm.Config.SMTPPass = ""
		vm.SetError("Failed to save email configuration.")
		templates.Render(w, r, "dashboard/email", vm)
		return
	}

	http.Redirect(w, r, "/dashboard/email?success=1", http.StatusSeeOther)
}

// SendTestEmail sends a test message to the signed-in admin using the
// stored configuration.
func (h *Handler) SendTestEmail(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	cfg, err := emailconfigstore.New(h.db).Get(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load email config", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if cfg == nil || !cfg.IsConfigured() {
		h.renderEmailWithError(w, r, cfg, "Email is not configured. Save SMTP settings first.")
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
		h.renderEmailWithError(w, r, cfg, "Failed to send test email. Check the SMTP settings.")
		return
	}

	http.Redirect(w, r, "/dashboard/email?sent="+u.Email, http.StatusSeeOther)
}

func (h *Handler) renderEmailWithError(w http.ResponseWriter, r *http.Request, cfg *models.EmailConfig, errMsg string) {
	if cfg == nil {
		cfg = &models.EmailConfig{}
	}
	vm := EmailFormVM{
		Base:        formutil.NewBase(r, h.db, "Email", "/dashboard"),
		Config:      *cfg,
		HasPassword: cfg.SMTPPass != "",
	}
	vm.Config.SMTPPass = ""
	vm.SetError(errMsg)
	templates.Render(w, r, "dashboard/email", vm)
}
