// internal/app/features/dashboard/services.go
package dashboard

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	servicestore "github.com/meridian-compliance/meridian/internal/app/store/services"
	"github.com/meridian-compliance/meridian/internal/app/system/formutil"
	"github.com/meridian-compliance/meridian/internal/app/system/normalize"
	"github.com/meridian-compliance/meridian/internal/domain/models"
)

const servicesPerPage = 20

// ServiceListVM is the view model for the dashboard services list.
type ServiceListVM struct {
	formutil.Base
	Services   []models.Service
	Total      int64
	Search     string
	Page       int
	TotalPages int
	PrevPage   int
	NextPage   int
	Success    bool
}

// ListServices shows the paginated services table.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	page := 1
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}
	search := normalize.QueryParam(r.URL.Query().Get("q"))

	services, total, err := servicestore.New(h.db).List(r.Context(), servicestore.ListOptions{
		Page:   int64(page),
		Limit:  servicesPerPage,
		Search: search,
	})
	if err != nil {
		h.errLog.Log(r, "failed to list services", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	totalPages := int((total + servicesPerPage - 1) / servicesPerPage)
	vm := ServiceListVM{
		Base:       formutil.NewBase(r, h.db, "Services", "/dashboard"),
		Services:   services,
		Total:      total,
		Search:     search,
		Page:       page,
		TotalPages: totalPages,
		PrevPage:   page - 1,
		NextPage:   page + 1,
		Success:    r.URL.Query().Get("success") == "1",
	}
	templates.Render(w, r, "dashboard/service_list", vm)
}

// ServiceFormVM is the view model for the service create/edit form.
type ServiceFormVM struct {
	formutil.Base
	Service models.Service
	IsNew   bool
}

// NewServiceForm shows an empty service form.
func (h *Handler) NewServiceForm(w http.ResponseWriter, r *http.Request) {
	vm := ServiceFormVM{
		Base:    formutil.NewBase(r, h.db, "New Service", "/dashboard/services"),
		Service: models.Service{IsActive: true},
		IsNew:   true,
	}
	templates.Render(w, r, "dashboard/service_form", vm)
}

// CreateService validates the form and inserts a new service.
func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	svc, errMsg := h.parseServiceForm(r)
	if errMsg == "" {
		exists, err := servicestore.New(h.db).SlugExists(r.Context(), svc.Slug, primitive.NilObjectID)
		if err != nil {
			h.errLog.Log(r, "failed to check service slug", err)
			errMsg = "Failed to save service. Please try again."
		} else if exists {
			errMsg = "That slug is already in use by another service."
		}
	}
	if errMsg != "" {
		vm := ServiceFormVM{
			Base:    formutil.NewBase(r, h.db, "New Service", "/dashboard/services"),
			Service: svc,
			IsNew:   true,
		}
		vm.SetError(errMsg)
		templates.Render(w, r, "dashboard/service_form", vm)
		return
	}

	if _, err := servicestore.New(h.db).Create(r.Context(), svc); err != nil {
		h.errLog.Log(r, "failed to create service", err)
		vm := ServiceFormVM{
			Base:    formutil.NewBase(r, h.db, "New Service", "/dashboard/services"),
			Service: svc,
			IsNew:   true,
		}
		vm.SetError("Failed to save service. Please try again.")
		templates.Render(w, r, "dashboard/service_form", vm)
		return
	}

	http.Redirect(w, r, "/dashboard/services?success=1", http.StatusSeeOther)
}

// EditServiceForm shows the form pre-filled with an existing service.
func (h *Handler) EditServiceForm(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	svc, err := servicestore.New(h.db).GetByID(r.Context(), id)
	if err != nil {
		h.errLog.Log(r, "failed to load service", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if svc == nil {
		http.NotFound(w, r)
		return
	}

	vm := ServiceFormVM{
		Base:    formutil.NewBase(r, h.db, "Edit Service", "/dashboard/services"),
		Service: *svc,
	}
	templates.Render(w, r, "dashboard/service_form", vm)
}

// UpdateService validates the form and saves changes to an existing service.
func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	svc, errMsg := h.parseServiceForm(r)
	svc.ID = id
	if errMsg == "" {
		exists, err := servicestore.New(h.db).SlugExists(r.Context(), svc.Slug, id)
		if err != nil {
			h.errLog.Log(r, "failed to check service slug", err)
			errMsg = "Failed to save service. Please try again."
		} else if exists {
			errMsg = "That slug is already in use by another service."
		}
	}
	if errMsg != "" {
		vm := ServiceFormVM{
			Base:    formutil.NewBase(r, h.db, "Edit Service", "/dashboard/services"),
			Service: svc,
		}
		vm.SetError(errMsg)
		templates.Render(w, r, "dashboard/service_form", vm)
		return
	}

	updated, err := servicestore.New(h.db).Update(r.Context(), id, svc)
	if err != nil {
		h.errLog.Log(r, "failed to update service", err)
		vm := ServiceFormVM{
			Base:    formutil.NewBase(r, h.db, "Edit Service", "/dashboard/services"),
			Service: svc,
		}
		vm.SetError("Failed to save service. Please try again.")
		templates.Render(w, r, "dashboard/service_form", vm)
		return
	}
	if updated == nil {
		http.NotFound(w, r)
		return
	}

	http.Redirect(w, r, "/dashboard/services?success=1", http.StatusSeeOther)
}

// DeleteService removes a service and returns to the list.
func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if _, err := servicestore.New(h.db).Delete(r.Context(), id); err != nil {
		h.errLog.Log(r, "failed to delete service", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/dashboard/services?success=1", http.StatusSeeOther)
}

// parseServiceForm reads the submitted service fields. Returns a non-empty
// message when validation fails; the partially parsed service is returned
// either way so the form can re-render with the entered values.
func (h *Handler) parseServiceForm(r *http.Request) (models.Service, string) {
	if err := r.ParseForm(); err != nil {
		return models.Service{}, "Invalid form submission."
	}

	svc := models.Service{
		Slug:            normalize.Slug(r.FormValue("slug")),
		HeroTitle:       strings.TrimSpace(r.FormValue("hero_title")),
		HeroDescription: strings.TrimSpace(r.FormValue("hero_description")),
		HeroImage:       strings.TrimSpace(r.FormValue("hero_image")),
		IsActive:        r.FormValue("is_active") == "on",
	}
	if order, err := strconv.Atoi(r.FormValue("order")); err == nil {
		svc.Order = order
	}

	if svc.HeroTitle == "" {
		return svc, "Title is required."
	}
	if svc.Slug == "" {
		svc.Slug = normalize.Slug(svc.HeroTitle)
	}
	if svc.Slug == "" {
		return svc, "Slug is required."
	}
	return svc, ""
}
