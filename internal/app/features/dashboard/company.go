// internal/app/features/dashboard/company.go
package dashboard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/google/uuid"
	"go.uber.org/zap"

	companystore "github.com/meridian-compliance/meridian/internal/app/store/companysettings"
	"github.com/meridian-compliance/meridian/internal/app/system/formutil"
	"github.com/meridian-compliance/meridian/internal/app/system/htmlsanitize"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// maxFooterLength caps the footer HTML at 10KB.
const maxFooterLength = 10000

// CompanyFormVM is the view model for the company profile editor.
type CompanyFormVM struct {
	formutil.Base
	Settings models.CompanySettings
	HasLogo  bool
	LogoURL  string
	Success  bool
}

// ShowCompanyForm renders the company profile editor.
func (h *Handler) ShowCompanyForm(w http.ResponseWriter, r *http.Request) {
	settings, err := companystore.New(h.db).Get(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load company settings", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := CompanyFormVM{
		Base:     formutil.NewBase(r, h.db, "Company Profile", "/dashboard"),
		Settings: *settings,
		HasLogo:  settings.HasLogo(),
		Success:  r.URL.Query().Get("success") == "1",
	}
	if settings.HasLogo() && h.fileStorage != nil {
		vm.LogoURL = h.fileStorage.URL(settings.LogoPath)
	}
	templates.Render(w, r, "dashboard/company", vm)
}

// SaveCompany saves the company profile including logo upload and removal.
func (h *Handler) SaveCompany(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form for the logo upload (10MB max)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.errLog.Log(r, "failed to parse company form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	settings := models.CompanySettings{
		CompanyName:  strings.TrimSpace(r.FormValue("company_name")),
		Tagline:      strings.TrimSpace(r.FormValue("tagline")),
		ContactEmail: strings.TrimSpace(r.FormValue("contact_email")),
		ContactPhone: strings.TrimSpace(r.FormValue("contact_phone")),
		Address:      strings.TrimSpace(r.FormValue("address")),
		LinkedInURL:  strings.TrimSpace(r.FormValue("linkedin_url")),
		TwitterURL:   strings.TrimSpace(r.FormValue("twitter_url")),
	}
	settings.UpdatedByID, settings.UpdatedByName = editorIdentity(r)

	if settings.CompanyName == "" {
		h.renderCompanyWithError(w, r, settings, "Company name is required.")
		return
	}

	rawFooter := r.FormValue("footer_html")
	if len(rawFooter) > maxFooterLength {
		h.renderCompanyWithError(w, r, settings, "Footer HTML is too long. Maximum length is 10,000 characters.")
		return
	}
	settings.FooterHTML = htmlsanitize.Sanitize(rawFooter)

	// Current document for logo handling
	current, err := companystore.New(h.db).Get(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load company settings", err)
		h.renderCompanyWithError(w, r, settings, "Failed to save settings.")
		return
	}
	settings.LogoPath = current.LogoPath
	settings.LogoName = current.LogoName

	if r.FormValue("remove_logo") != "" {
		if current.HasLogo() && h.fileStorage != nil {
			if err := h.fileStorage.Delete(ctx, current.LogoPath); err != nil {
				h.logger.Warn("failed to delete old logo", zap.String("path", current.LogoPath), zap.Error(err))
			}
		}
		settings.LogoPath = ""
		settings.LogoName = ""
	}

	file, header, fileErr := r.FormFile("logo")
	if fileErr == nil && header != nil && header.Size > 0 {
		defer file.Close()

		if h.fileStorage == nil {
			h.renderCompanyWithError(w, r, settings, "File uploads are not configured.")
			return
		}
		if current.HasLogo() {
			if err := h.fileStorage.Delete(ctx, current.LogoPath); err != nil {
				h.logger.Warn("failed to delete old logo", zap.String("path", current.LogoPath), zap.Error(err))
			}
		}

		newPath, err := h.uploadLogoFile(ctx, header.Filename, file, header.Header.Get("Content-Type"))
		if err != nil {
			h.logger.Error("logo upload failed", zap.Error(err))
			h.renderCompanyWithError(w, r, settings, "Failed to upload logo. Please try again.")
			return
		}
		settings.LogoPath = newPath
		settings.LogoName = header.Filename
	}

	if err := companystore.New(h.db).Save(ctx, settings); err != nil {
		h.errLog.Log(r, "failed to save company settings", err)
		h.renderCompanyWithError(w, r, settings, "Failed to save settings.")
		return
	}

	http.Redirect(w, r, "/dashboard/company?success=1", http.StatusSeeOther)
}

func (h *Handler) renderCompanyWithError(w http.ResponseWriter, r *http.Request, settings models.CompanySettings, errMsg string) {
	vm := CompanyFormVM{
		Base:     formutil.NewBase(r, h.db, "Company Profile", "/dashboard"),
		Settings: settings,
		HasLogo:  settings.HasLogo(),
	}
	if settings.HasLogo() && h.fileStorage != nil {
		vm.LogoURL = h.fileStorage.URL(settings.LogoPath)
	}
	vm.SetError(errMsg)
	templates.Render(w, r, "dashboard/company", vm)
}

// uploadLogoFile stores a logo under a unique path and returns that path.
func (h *Handler) uploadLogoFile(ctx context.Context, filename string, file io.Reader, contentType string) (string, error) {
	// logos/YYYY/MM/uuid-ext
	now := time.Now().UTC()
	ext := filepath.Ext(filename)
	uniqueName := fmt.Sprintf("%s%s", uuid.New().String()[:8], ext)
	path := fmt.Sprintf("logos/%04d/%02d/%s", now.Year(), now.Month(), uniqueName)

	opts := &storage.PutOptions{
		ContentType: contentType,
	}
	if err := h.fileStorage.Put(ctx, path, file, opts); err != nil {
		return "", fmt.Errorf("failed to upload logo: %w", err)
	}

	return path, nil
}
