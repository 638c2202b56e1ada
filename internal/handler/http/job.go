package http

import (
	"net/http"

	"github.com/DLT-Africa-Hub/Recruita/internal/handler/http/response"
	jobsvc "github.com/DLT-Africa-Hub/Recruita/internal/service/job"
	"github.com/go-chi/chi/v5"
)

// JobHandler serves the job catalog.
type JobHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type JobHandlerImpl struct {
	jobService jobsvc.JobService
}

func NewJobHandler(jobService jobsvc.JobService) JobHandler {
	return &JobHandlerImpl{jobService: jobService}
}

// List handles GET /jobs
func (h *JobHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page := getIntQueryParam(r, "page", 1)
	limit := getIntQueryParam(r, "limit", 20)
	search := r.URL.Query().Get("search")

	jobs, total, err := h.jobService.ListActive(r.Context(), search, page, limit)
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

// Get handles GET /jobs/{id}
func (h *JobHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.jobService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
