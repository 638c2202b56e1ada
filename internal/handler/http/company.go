package http

import (
	"encoding/json"
	"net/http"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/application"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/company"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/job"
	"github.com/DLT-Africa-Hub/Recruita/internal/handler/http/response"
	companysvc "github.com/DLT-Africa-Hub/Recruita/internal/service/company"
	jobsvc "github.com/DLT-Africa-Hub/Recruita/internal/service/job"
	"github.com/go-chi/chi/v5"
)

type CompanyHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpsertProfile(w http.ResponseWriter, r *http.Request)

	CreateJob(w http.ResponseWriter, r *http.Request)
	UpdateJob(w http.ResponseWriter, r *http.Request)
	DeleteJob(w http.ResponseWriter, r *http.Request)
	MyJobs(w http.ResponseWriter, r *http.Request)

	JobApplications(w http.ResponseWriter, r *http.Request)
	JobMatches(w http.ResponseWriter, r *http.Request)
	UpdateApplicationStatus(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService     companysvc.CompanyService
	jobService         jobsvc.JobService
	applicationService application.Service
	companies          company.Repository
}

func NewCompanyHandler(
	companyService companysvc.CompanyService,
	jobService jobsvc.JobService,
	appService application.Service,
	companies company.Repository,
) CompanyHandler {
	return &CompanyHandlerImpl{
		companyService:     companyService,
		jobService:         jobService,
		applicationService: appService,
		companies:          companies,
	}
}

// GetProfile handles GET /companies/me
func (h *CompanyHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	resp, err := h.companyService.GetProfile(r.Context(), getUserIDFromContext(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// UpsertProfile handles PUT /companies/me
func (h *CompanyHandlerImpl) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	var req company.UpsertProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.companyService.UpsertProfile(r.Context(), getUserIDFromContext(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Profile saved successfully", resp)
}

// CreateJob handles POST /companies/me/jobs
func (h *CompanyHandlerImpl) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req job.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.jobService.Create(r.Context(), getUserIDFromContext(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Job posted successfully", resp)
}

// UpdateJob handles PUT /companies/me/jobs/{id}
func (h *CompanyHandlerImpl) UpdateJob(w http.ResponseWriter, r *http.Request) {
	var req job.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.jobService.Update(r.Context(), getUserIDFromContext(r), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job updated successfully", resp)
}

// DeleteJob handles DELETE /companies/me/jobs/{id}
func (h *CompanyHandlerImpl) DeleteJob(w http.ResponseWriter, r *http.Request) {
	if err := h.jobService.Delete(r.Context(), getUserIDFromContext(r), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job deleted successfully", nil)
}

// MyJobs handles GET /companies/me/jobs
func (h *CompanyHandlerImpl) MyJobs(w http.ResponseWriter, r *http.Request) {
	page := getIntQueryParam(r, "page", 1)
	limit := getIntQueryParam(r, "limit", 20)

	jobs, total, err := h.jobService.ListForCompany(r.Context(), getUserIDFromContext(r), page, limit)
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

// JobMatches handles GET /companies/me/jobs/{id}/matches
func (h *CompanyHandlerImpl) JobMatches(w http.ResponseWriter, r *http.Request) {
	limit := getIntQueryParam(r, "limit", 20)

	matches, err := h.jobService.MatchesForJob(r.Context(), getUserIDFromContext(r), chi.URLParam(r, "id"), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, matches)
}

// JobApplications handles GET /companies/me/jobs/{id}/applications
func (h *CompanyHandlerImpl) JobApplications(w http.ResponseWriter, r *http.Request) {
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

// UpdateApplicationStatus handles PATCH /companies/me/applications/{id}/status
func (h *CompanyHandlerImpl) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeStatusUpdate(w, r)
	if !ok {
		return
	}

	userID := getUserIDFromContext(r)
	c, err := h.companies.GetByUserID(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	actor := application.Actor{UserID: userID, CompanyID: c.ID}
	resp, message, err := h.applicationService.UpdateStatusAsCompany(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, resp)
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
