// internal/app/features/dashboard/theme.go
package dashboard

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"

	themestore "github.com/meridian-compliance/meridian/internal/app/store/themesettings"
	"github.com/meridian-compliance/meridian/internal/app/system/formutil"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ThemeFormVM is the view model for the theme editor.
type ThemeFormVM struct {
	formutil.Base
	Theme   models.ThemeSettings
	Success bool
}

// ShowThemeForm renders the theme color editor.
func (h *Handler) ShowThemeForm(w http.ResponseWriter, r *http.Request) {
	theme, err := themestore.New(h.db).Get(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load theme settings", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := ThemeFormVM{
		Base:    formutil.NewBase(r, h.db, "Theme", "/dashboard"),
		Theme:   *theme,
		Success: r.URL.Query().Get("success") == "1",
	}
	templates.Render(w, r, "dashboard/theme", vm)
}

// SaveTheme validates the three colors and saves them.
func (h *Handler) SaveTheme(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	theme := models.ThemeSettings{
		PrimaryColor:   strings.TrimSpace(r.FormValue("primary_color")),
		SecondaryColor: strings.TrimSpace(r.FormValue("secondary_color")),
		AccentColor:    strings.TrimSpace(r.FormValue("accent_color")),
	}
	theme.UpdatedByID, theme.UpdatedByName = editorIdentity(r)

	for _, c := range []string{theme.PrimaryColor, theme.SecondaryColor, theme.AccentColor} {
		if c != "" && !hexColorRe.MatchString(c) {
			vm := ThemeFormVM{
				Base:  formutil.NewBase(r, h.db, "Theme", "/dashboard"),
				Theme: theme,
			}
			vm.SetError("Colors must be six-digit hex values like #0f3d5c.")
			templates.Render(w, r, "dashboard/theme", vm)
			return
		}
	}

	if err := themestore.New(h.db).Save(r.Context(), theme); err != nil {
		h.errLog.Log(r, "failed to save theme settings", err)
		vm := ThemeFormVM{
			Base:  formutil.NewBase(r, h.db, "Theme", "/dashboard"),
			Theme: theme,
		}
		vm.SetError("Failed to save theme. Please try again.")
		templates.Render(w, r, "dashboard/theme", vm)
		return
	}

	http.Redirect(w, r, "/dashboard/theme?success=1", http.StatusSeeOther)
}
