package http

import (
	"encoding/json"
	"net/http"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/interview"
	"github.com/DLT-Africa-Hub/Recruita/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type InterviewHandler interface {
	Schedule(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Room(w http.ResponseWriter, r *http.Request)
}

type InterviewHandlerImpl struct {
	interviewService interview.Service
}

func NewInterviewHandler(interviewService interview.Service) InterviewHandler {
	return &InterviewHandlerImpl{interviewService: interviewService}
}

// Schedule handles POST /admin/interviews
func (h *InterviewHandlerImpl) Schedule(w http.ResponseWriter, r *http.Request) {
	var req interview.ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.interviewService.Schedule(r.Context(), getUserIDFromContext(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Interview created successfully", resp)
}

// List handles GET /admin/interviews. Expired interviews are swept before
// the page is served.
func (h *InterviewHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := interview.ListFilter{
		Page:  getIntQueryParam(r, "page", 1),
		Limit: getIntQueryParam(r, "limit", 20),
	}

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status, ok := interview.ParseStatus(statusStr)
		if !ok {
			response.HandleError(w, interview.ErrInvalidStatusFilter)
			return
		}
		filter.Status = &status
	}

	if upcomingStr := r.URL.Query().Get("upcoming"); upcomingStr != "" {
		upcoming := upcomingStr == "true" || upcomingStr == "1"
		filter.Upcoming = &upcoming
	}

	result, err := h.interviewService.ListAdminManaged(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Cancel handles POST /admin/interviews/{id}/cancel
func (h *InterviewHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.interviewService.Cancel(r.Context(), getUserIDFromContext(r), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Interview cancelled", nil)
}

// Room handles GET /interviews/room/{slug}; participants only
func (h *InterviewHandlerImpl) Room(w http.ResponseWriter, r *http.Request) {
	resp, err := h.interviewService.GetByRoomSlug(r.Context(), getUserIDFromContext(r), chi.URLParam(r, "slug"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
