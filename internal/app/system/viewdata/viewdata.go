// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"context"
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/gorilla/csrf"
	"go.mongodb.org/mongo-driver/mongo"

	companystore "github.com/meridian-compliance/meridian/internal/app/store/companysettings"
	themestore "github.com/meridian-compliance/meridian/internal/app/store/themesettings"
	"github.com/meridian-compliance/meridian/internal/app/system/auth"
	"github.com/meridian-compliance/meridian/internal/app/system/htmlsanitize"
	"github.com/meridian-compliance/meridian/internal/app/system/timeouts"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, db, "Page Title", "/default-back"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	// Company settings (from database)
	CompanyName string
	Tagline     string
	LogoURL     string
	FooterHTML  template.HTML

	// Theme colors (from database, defaults otherwise)
	PrimaryColor   string
	SecondaryColor string
	AccentColor    string

	// User context (from auth middleware)
	IsLoggedIn bool
	UserID     string
	UserName   string
	Email      string
	Role       string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// Security
	CSRFToken string // CSRF token for forms (use in hidden input field)
}

// IsAdmin reports whether the signed-in user has the admin role.
func (vm BaseVM) IsAdmin() bool {
	return vm.IsLoggedIn && vm.Role == models.RoleAdmin
}

// storageProvider is set by Init and used to generate logo URLs.
var storageProvider storage.Store

// globalDB is set by Init and used by New() to load settings.
var globalDB *mongo.Database

// Init sets the storage provider and database for viewdata.
// Call this once at startup from bootstrap.
func Init(store storage.Store, db *mongo.Database) {
	storageProvider = store
	globalDB = db
}

// NewBaseVM creates a fully populated BaseVM for a page.
// This is the preferred way to create a BaseVM for embedding in view models.
//
// Parameters:
//   - r: the HTTP request
//   - db: database for loading company settings (can be nil for defaults)
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, db *mongo.Database, title, backDefault string) BaseVM {
	vm := newUserVM(r)
	vm.Title = title
	vm.BackURL = httpnav.ResolveBackURL(r, backDefault)

	loadSettings(r, db, &vm)
	return vm
}

// New creates a BaseVM with company settings loaded from the database
// registered at Init. This is the standard way for most handlers.
func New(r *http.Request) BaseVM {
	vm := newUserVM(r)
	loadSettings(r, globalDB, &vm)
	return vm
}

func newUserVM(r *http.Request) BaseVM {
	vm := BaseVM{
		CompanyName:    models.DefaultCompanyName,
		Tagline:        models.DefaultTagline,
		PrimaryColor:   models.DefaultPrimaryColor,
		SecondaryColor: models.DefaultSecondaryColor,
		AccentColor:    models.DefaultAccentColor,
		CurrentPath:    httpnav.CurrentPath(r),
		CSRFToken:      csrf.Token(r),
	}

	if user, ok := auth.CurrentUser(r); ok {
		vm.IsLoggedIn = true
		vm.UserID = user.ID
		vm.UserName = user.Name
		vm.Email = user.Email
		vm.Role = user.Role
	}
	return vm
}

func loadSettings(r *http.Request, db *mongo.Database, vm *BaseVM) {
	if db == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if company, err := companystore.New(db).Get(ctx); err == nil && company != nil {
		vm.CompanyName = company.CompanyName
		vm.Tagline = company.Tagline
		vm.FooterHTML = htmlsanitize.SanitizeToHTML(company.FooterHTML)
		if company.HasLogo() && storageProvider != nil {
			vm.LogoURL = storageProvider.URL(company.LogoPath)
		}
	}

	if theme, err := themestore.New(db).Get(ctx); err == nil && theme != nil {
		vm.PrimaryColor = theme.PrimaryColor
		vm.SecondaryColor = theme.SecondaryColor
		vm.AccentColor = theme.AccentColor
	}
}

// GetCompanySettings returns the full company settings, or defaults if not
// available. Used by handlers that need settings outside a page render.
func GetCompanySettings(ctx context.Context, db *mongo.Database) models.CompanySettings {
	if db == nil {
		return models.CompanySettings{
			CompanyName: models.DefaultCompanyName,
			Tagline:     models.DefaultTagline,
			FooterHTML:  models.DefaultFooterHTML,
		}
	}

	settings, err := companystore.New(db).Get(ctx)
	if err != nil || settings == nil {
		return models.CompanySettings{
			CompanyName: models.DefaultCompanyName,
			Tagline:     models.DefaultTagline,
			FooterHTML:  models.DefaultFooterHTML,
		}
	}
	return *settings
}
