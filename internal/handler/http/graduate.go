package http

import (
	"encoding/json"
	"net/http"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/application"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/graduate"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/interview"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/offer"
	"github.com/DLT-Africa-Hub/Recruita/internal/handler/http/response"
	graduatesvc "github.com/DLT-Africa-Hub/Recruita/internal/service/graduate"
	"github.com/go-chi/chi/v5"
)

type GraduateHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpsertProfile(w http.ResponseWriter, r *http.Request)
	SubmitAssessment(w http.ResponseWriter, r *http.Request)
	Matches(w http.ResponseWriter, r *http.Request)

	Apply(w http.ResponseWriter, r *http.Request)
	MyApplications(w http.ResponseWriter, r *http.Request)

	MyOffers(w http.ResponseWriter, r *http.Request)
	AcceptOffer(w http.ResponseWriter, r *http.Request)
	DeclineOffer(w http.ResponseWriter, r *http.Request)

	SelectInterviewSlot(w http.ResponseWriter, r *http.Request)
}

type GraduateHandlerImpl struct {
	graduateService    graduatesvc.GraduateService
	applicationService application.Service
	offerService       offer.Service
	interviewService   interview.Service
}

func NewGraduateHandler(
	graduateService graduatesvc.GraduateService,
	appService application.Service,
	offerService offer.Service,
	interviewService interview.Service,
) GraduateHandler {
	return &GraduateHandlerImpl{
		graduateService:    graduateService,
		applicationService: appService,
		offerService:       offerService,
		interviewService:   interviewService,
	}
}

// GetProfile handles GET /graduates/me
func (h *GraduateHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	resp, err := h.graduateService.GetProfile(r.Context(), getUserIDFromContext(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// UpsertProfile handles PUT /graduates/me
func (h *GraduateHandlerImpl) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	var req graduate.UpsertProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.graduateService.UpsertProfile(r.Context(), getUserIDFromContext(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Profile saved successfully", resp)
}

// SubmitAssessment handles POST /graduates/me/assessment
func (h *GraduateHandlerImpl) SubmitAssessment(w http.ResponseWriter, r *http.Request) {
	var req graduate.SubmitAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.graduateService.SubmitAssessment(r.Context(), getUserIDFromContext(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Assessment submitted successfully", resp)
}

// Matches handles GET /graduates/me/matches
func (h *GraduateHandlerImpl) Matches(w http.ResponseWriter, r *http.Request) {
	limit := getIntQueryParam(r, "limit", 20)

	matches, err := h.graduateService.Matches(r.Context(), getUserIDFromContext(r), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, matches)
}

// Apply handles POST /applications
func (h *GraduateHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req application.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.JobID == "" {
		response.BadRequest(w, "job_id is required", nil)
		return
	}

	resp, err := h.applicationService.Submit(r.Context(), getUserIDFromContext(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Application submitted successfully", resp)
}

// MyApplications handles GET /applications/my
func (h *GraduateHandlerImpl) MyApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.applicationService.ListForGraduate(r.Context(), getUserIDFromContext(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, apps)
}

// MyOffers handles GET /offers/my
func (h *GraduateHandlerImpl) MyOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.offerService.ListMine(r.Context(), getUserIDFromContext(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, offers)
}

// AcceptOffer handles POST /offers/{id}/accept
func (h *GraduateHandlerImpl) AcceptOffer(w http.ResponseWriter, r *http.Request) {
	o, err := h.offerService.Accept(r.Context(), chi.URLParam(r, "id"), getUserIDFromContext(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Offer accepted", o)
}

// DeclineOffer handles POST /offers/{id}/decline
func (h *GraduateHandlerImpl) DeclineOffer(w http.ResponseWriter, r *http.Request) {
	o, err := h.offerService.Decline(r.Context(), chi.URLParam(r, "id"), getUserIDFromContext(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Offer declined", o)
}

// SelectInterviewSlot handles POST /interviews/{id}/select-slot
func (h *GraduateHandlerImpl) SelectInterviewSlot(w http.ResponseWriter, r *http.Request) {
	var req interview.SelectSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.interviewService.SelectSlot(r.Context(), getUserIDFromContext(r), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Interview scheduled", resp)
}
