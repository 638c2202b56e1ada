package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/application"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/job"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/offer"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/user"
	"github.com/DLT-Africa-Hub/Recruita/internal/handler/http/response"
	adminsvc "github.com/DLT-Africa-Hub/Recruita/internal/service/admin"
	companysvc "github.com/DLT-Africa-Hub/Recruita/internal/service/company"
	jobsvc "github.com/DLT-Africa-Hub/Recruita/internal/service/job"
	"github.com/go-chi/chi/v5"
)

type AdminHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
	ListGraduates(w http.ResponseWriter, r *http.Request)
	ListCompanies(w http.ResponseWriter, r *http.Request)
	GetCompany(w http.ResponseWriter, r *http.Request)
	SetCompanyActive(w http.ResponseWriter, r *http.Request)
	SendMessage(w http.ResponseWriter, r *http.Request)

	ListJobs(w http.ResponseWriter, r *http.Request)
	GetJob(w http.ResponseWriter, r *http.Request)
	UpdateJob(w http.ResponseWriter, r *http.Request)
	DeleteJob(w http.ResponseWriter, r *http.Request)
	JobApplications(w http.ResponseWriter, r *http.Request)

	GetApplication(w http.ResponseWriter, r *http.Request)
	UpdateApplicationStatus(w http.ResponseWriter, r *http.Request)
	GetOffer(w http.ResponseWriter, r *http.Request)
}

type AdminHandlerImpl struct {
	adminService       adminsvc.AdminService
	applicationService application.Service
	companyService     companysvc.CompanyService
	jobService         jobsvc.JobService
	offerService       offer.Service
}

func NewAdminHandler(
	adminService adminsvc.AdminService,
	appService application.Service,
	companyService companysvc.CompanyService,
	jobService jobsvc.JobService,
	offerService offer.Service,
) AdminHandler {
	return &AdminHandlerImpl{
		adminService:       adminService,
		applicationService: appService,
		companyService:     companyService,
		jobService:         jobService,
		offerService:       offerService,
	}
}

// Dashboard handles GET /admin/dashboard
func (h *AdminHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.Dashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// ListUsers handles GET /admin/users
func (h *AdminHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	page := getIntQueryParam(r, "page", 1)
	limit := getIntQueryParam(r, "limit", 20)
	search := r.URL.Query().Get("search")

	var role *user.Role
	if roleStr := r.URL.Query().Get("role"); roleStr != "" {
		parsed, ok := user.ParseRole(roleStr)
		if !ok {
			response.BadRequest(w, "Invalid role filter", nil)
			return
		}
		role = &parsed
	}

	users, total, err := h.adminService.ListUsers(r.Context(), search, role, page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, users, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages(total, limit),
	})
}

// DeleteUser handles DELETE /admin/users/{id}
func (h *AdminHandlerImpl) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "User deleted successfully", nil)
}

// ListGraduates handles GET /admin/graduates
func (h *AdminHandlerImpl) ListGraduates(w http.ResponseWriter, r *http.Request) {
	page := getIntQueryParam(r, "page", 1)
	limit := getIntQueryParam(r, "limit", 20)
	search := r.URL.Query().Get("search")

	graduates, total, err := h.adminService.ListGraduates(r.Context(), search, page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, graduates, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages(total, limit),
	})
}

// ListCompanies handles GET /admin/companies
func (h *AdminHandlerImpl) ListCompanies(w http.ResponseWriter, r *http.Request) {
	page := getIntQueryParam(r, "page", 1)
	limit := getIntQueryParam(r, "limit", 20)
	search := r.URL.Query().Get("search")

	companies, total, err := h.adminService.ListCompanies(r.Context(), search, page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, companies, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages(total, limit),
	})
}

// SetCompanyActive handles PATCH /admin/companies/{id}/active
func (h *AdminHandlerImpl) SetCompanyActive(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Active *bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Active == nil {
		response.BadRequest(w, "active is required", nil)
		return
	}

	if err := h.companyService.SetActive(r.Context(), chi.URLParam(r, "id"), *req.Active); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Company updated successfully", nil)
}

// GetCompany handles GET /admin/companies/{id}
func (h *AdminHandlerImpl) GetCompany(w http.ResponseWriter, r *http.Request) {
	detail, err := h.companyService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, detail)
}

// SendMessage handles POST /admin/messages
func (h *AdminHandlerImpl) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req adminsvc.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.adminService.SendMessage(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Message sent successfully", nil)
}

// ListJobs handles GET /admin/jobs
func (h *AdminHandlerImpl) ListJobs(w http.ResponseWriter, r *http.Request) {
	page := getIntQueryParam(r, "page", 1)
	limit := getIntQueryParam(r, "limit", 20)
	search := r.URL.Query().Get("search")

	var status *job.Status
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		parsed, ok := job.ParseStatus(statusStr)
		if !ok {
			response.BadRequest(w, "Invalid status filter", nil)
			return
		}
		status = &parsed
	}

	jobs, total, err := h.jobService.ListAll(r.Context(), status, search, page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, jobs, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages(total, limit),
	})
}

// GetJob handles GET /admin/jobs/{id}
func (h *AdminHandlerImpl) GetJob(w http.ResponseWriter, r *http.Request) {
	resp, err := h.jobService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// UpdateJob handles PATCH /admin/jobs/{id}
func (h *AdminHandlerImpl) UpdateJob(w http.ResponseWriter, r *http.Request) {
	var req job.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.jobService.AdminUpdate(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job updated successfully", resp)
}

// DeleteJob handles DELETE /admin/jobs/{id}
func (h *AdminHandlerImpl) DeleteJob(w http.ResponseWriter, r *http.Request) {
	if err := h.jobService.AdminDelete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job deleted successfully", nil)
}

// JobApplications handles GET /admin/jobs/{id}/applications
func (h *AdminHandlerImpl) JobApplications(w http.ResponseWriter, r *http.Request) {
	page := getIntQueryParam(r, "page", 1)
	limit := getIntQueryParam(r, "limit", 20)

	apps, total, err := h.applicationService.ListForJob(r.Context(), chi.URLParam(r, "id"), page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, apps, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages(total, limit),
	})
}

// GetOffer handles GET /admin/offers/{id}
func (h *AdminHandlerImpl) GetOffer(w http.ResponseWriter, r *http.Request) {
	o, err := h.offerService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, o)
}

// GetApplication handles GET /admin/applications/{id}
func (h *AdminHandlerImpl) GetApplication(w http.ResponseWriter, r *http.Request) {
	resp, err := h.applicationService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// decodeStatusUpdate decodes a status-transition body, distinguishing a
// non-string notes value from a malformed body.
func decodeStatusUpdate(w http.ResponseWriter, r *http.Request) (application.UpdateStatusRequest, bool) {
	var req application.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "notes" {
			response.HandleError(w, application.ErrInvalidNotes)
			return req, false
		}
		response.BadRequest(w, "Invalid request body", nil)
		return req, false
	}
	return req, true
}

// UpdateApplicationStatus handles PATCH /admin/applications/{id}/status
func (h *AdminHandlerImpl) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeStatusUpdate(w, r)
	if !ok {
		return
	}

	actor := application.Actor{UserID: getUserIDFromContext(r)}
	resp, message, err := h.applicationService.UpdateStatus(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, resp)
}
