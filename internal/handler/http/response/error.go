package response

import (
	"errors"
	"net/http"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/application"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/company"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/graduate"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/interview"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/job"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/match"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/notification"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/offer"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/user"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// User domain errors
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrInvalidRefreshToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrCompanyRoleRequired),
		errors.Is(err, user.ErrGraduateRoleRequired):
		Forbidden(w, err.Error())

	// Graduate domain errors
	case errors.Is(err, graduate.ErrGraduateNotFound):
		NotFound(w, "Graduate profile not found")
	case errors.Is(err, graduate.ErrProfileIncomplete):
		BadRequest(w, "Complete your profile before submitting an assessment", nil)
	case errors.Is(err, graduate.ErrAssessmentRequired):
		BadRequest(w, "Submit an assessment to get matches", nil)

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company profile not found")
	case errors.Is(err, company.ErrCompanyInactive):
		Forbidden(w, "Company account is deactivated")

	// Job domain errors
	case errors.Is(err, job.ErrJobNotFound):
		NotFound(w, "Job not found")
	case errors.Is(err, job.ErrNotJobOwner):
		Forbidden(w, err.Error())
	case errors.Is(err, job.ErrJobNotActive):
		BadRequest(w, "Job is not accepting applications", nil)
	case errors.Is(err, job.ErrInvalidStatus):
		BadRequest(w, "Invalid job status", nil)

	// Application domain errors
	case errors.Is(err, application.ErrApplicationNotFound):
		NotFound(w, "Application not found")
	case errors.Is(err, application.ErrInvalidStatus):
		BadRequest(w, "Invalid application status", nil)
	case errors.Is(err, application.ErrInvalidNotes):
		BadRequest(w, "Notes must be a string", nil)
	case errors.Is(err, application.ErrAlreadyApplied):
		Conflict(w, "An application for this job already exists")
	case errors.Is(err, application.ErrNotAdminManaged),
		errors.Is(err, application.ErrNotCompanyManaged):
		Forbidden(w, err.Error())

	// Offer domain errors
	case errors.Is(err, offer.ErrOfferNotFound):
		NotFound(w, "Offer not found")
	case errors.Is(err, offer.ErrOfferExists):
		Conflict(w, "An offer for this application already exists")
	case errors.Is(err, offer.ErrAlreadyHandled):
		Conflict(w, "Offer has already been responded to")
	case errors.Is(err, offer.ErrOfferCreation):
		InternalServerError(w, "Failed to create and send offer")

	// Interview domain errors
	case errors.Is(err, interview.ErrInterviewNotFound):
		NotFound(w, "Interview not found")
	case errors.Is(err, interview.ErrNotParticipant):
		Forbidden(w, err.Error())
	case errors.Is(err, interview.ErrInvalidSlot):
		BadRequest(w, "Selected time slot is not among the suggested slots", nil)
	case errors.Is(err, interview.ErrAlreadyScheduled):
		Conflict(w, "Interview has already been scheduled")
	case errors.Is(err, interview.ErrInterviewExists):
		Conflict(w, "An interview for this application already exists")
	case errors.Is(err, interview.ErrInvalidStatusFilter):
		BadRequest(w, "Invalid interview status filter", nil)
	case errors.Is(err, interview.ErrAlreadyFinished):
		Conflict(w, "Interview is already completed or cancelled")

	// Match domain errors
	case errors.Is(err, match.ErrScoringFailed):
		InternalServerError(w, "Match scoring is temporarily unavailable")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrUnauthorized):
		Forbidden(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
