package offer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/application"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/graduate"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/notification"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/offer"
	"github.com/DLT-Africa-Hub/Recruita/internal/domain/user"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/email"
)

type OfferServiceImpl struct {
	offers       offer.Repository
	applications application.Repository
	graduates    graduate.Repository
	users        user.Repository
	notifier     notification.Service
	mailer       email.EmailService
	frontendURL  string
}

func NewOfferService(
	offers offer.Repository,
	applications application.Repository,
	graduates graduate.Repository,
	users user.Repository,
	notifier notification.Service,
	mailer email.EmailService,
	frontendURL string,
) offer.Service {
	return &OfferServiceImpl{
		offers:       offers,
		applications: applications,
		graduates:    graduates,
		users:        users,
		notifier:     notifier,
		mailer:       mailer,
		frontendURL:  frontendURL,
	}
}

// CreateAndSend implements offer.Issuer. Every failure surfaces as
// ErrOfferCreation; callers decide what to do about the application state
// they wrote before invoking it.
func (s *OfferServiceImpl) CreateAndSend(ctx context.Context, applicationID, actingUserID string) error {
	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return fmt.Errorf("%w: %v", offer.ErrOfferCreation, err)
	}

	if _, err := s.offers.GetByApplicationID(ctx, applicationID); err == nil {
		return fmt.Errorf("%w: %v", offer.ErrOfferCreation, offer.ErrOfferExists)
	} else if !errors.Is(err, offer.ErrOfferNotFound) {
		return fmt.Errorf("%w: %v", offer.ErrOfferCreation, err)
	}

	created, err := s.offers.Create(ctx, offer.Offer{
		ApplicationID: app.ID,
		JobID:         app.Job.ID(),
		GraduateID:    app.Graduate.ID(),
		Status:        offer.StatusSent,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", offer.ErrOfferCreation, err)
	}

	if err := s.applications.SetStatus(ctx, app.ID, application.StatusOfferSent); err != nil {
		return fmt.Errorf("%w: %v", offer.ErrOfferCreation, err)
	}

	s.notifyGraduate(ctx, app, created)

	return nil
}

// notifyGraduate queues the in-app notification and sends the offer email.
// Both are best effort once the offer exists.
func (s *OfferServiceImpl) notifyGraduate(ctx context.Context, app application.Application, o offer.Offer) {
	g, ok := app.Graduate.Entity()
	if !ok {
		return
	}

	jobTitle := ""
	companyName := ""
	if j, ok := app.Job.Entity(); ok {
		jobTitle = j.Title
		if c, ok := j.Company.Entity(); ok {
			companyName = c.CompanyName
		}
	}

	relatedType := "offer"
	_ = s.notifier.Queue(ctx, notification.CreateNotificationRequest{
		UserID:      g.UserID,
		Type:        notification.TypeOffer,
		Title:       "New Job Offer",
		Message:     fmt.Sprintf("You have received an offer for %s", jobTitle),
		RelatedID:   &o.ID,
		RelatedType: &relatedType,
	})

	u, err := s.users.GetByID(ctx, g.UserID)
	if err != nil {
		slog.Error("failed to resolve offer recipient", "user_id", g.UserID, "error", err)
		return
	}
	offersLink := s.frontendURL + "/offers"
	if err := s.mailer.SendOffer(u.Email, g.FullName(), jobTitle, companyName, offersLink); err != nil {
		slog.Error("failed to send offer email", "offer_id", o.ID, "error", err)
	}
}

// Get implements offer.Service.
func (s *OfferServiceImpl) Get(ctx context.Context, id string) (offer.Offer, error) {
	return s.offers.GetByID(ctx, id)
}

// GetForApplication implements offer.Service.
func (s *OfferServiceImpl) GetForApplication(ctx context.Context, applicationID string) (offer.Offer, error) {
	return s.offers.GetByApplicationID(ctx, applicationID)
}

// Accept implements offer.Service. Accepting an offer does not close the
// job; the hired transition remains the authority for that.
func (s *OfferServiceImpl) Accept(ctx context.Context, offerID, graduateUserID string) (offer.Offer, error) {
	o, err := s.ownedOffer(ctx, offerID, graduateUserID)
	if err != nil {
		return offer.Offer{}, err
	}

	if err := s.offers.MarkAccepted(ctx, o.ID, time.Now(), graduateUserID); err != nil {
		return offer.Offer{}, err
	}

	s.notifyCompanyOfResponse(ctx, o, "Offer Accepted", "accepted")

	return s.offers.GetByID(ctx, o.ID)
}

// Decline implements offer.Service.
func (s *OfferServiceImpl) Decline(ctx context.Context, offerID, graduateUserID string) (offer.Offer, error) {
	o, err := s.ownedOffer(ctx, offerID, graduateUserID)
	if err != nil {
		return offer.Offer{}, err
	}

	if err := s.offers.UpdateStatus(ctx, o.ID, offer.StatusDeclined, graduateUserID); err != nil {
		return offer.Offer{}, err
	}

	s.notifyCompanyOfResponse(ctx, o, "Offer Declined", "declined")

	return s.offers.GetByID(ctx, o.ID)
}

// ownedOffer loads the offer and verifies it belongs to the graduate and is
// still open for a response.
func (s *OfferServiceImpl) ownedOffer(ctx context.Context, offerID, graduateUserID string) (offer.Offer, error) {
	g, err := s.graduates.GetByUserID(ctx, graduateUserID)
	if err != nil {
		return offer.Offer{}, err
	}

	o, err := s.offers.GetByID(ctx, offerID)
	if err != nil {
		return offer.Offer{}, err
	}
	if o.GraduateID != g.ID {
		return offer.Offer{}, offer.ErrOfferNotFound
	}
	if o.Status != offer.StatusSent {
		return offer.Offer{}, offer.ErrAlreadyHandled
	}
	return o, nil
}

func (s *OfferServiceImpl) notifyCompanyOfResponse(ctx context.Context, o offer.Offer, title, verb string) {
	app, err := s.applications.GetByID(ctx, o.ApplicationID)
	if err != nil {
		slog.Error("failed to load application for offer response", "offer_id", o.ID, "error", err)
		return
	}

	j, ok := app.Job.Entity()
	if !ok {
		return
	}
	c, ok := j.Company.Entity()
	if !ok {
		return
	}

	graduateName := ""
	if g, ok := app.Graduate.Entity(); ok {
		graduateName = g.FullName()
	}

	relatedType := "offer"
	_ = s.notifier.Queue(ctx, notification.CreateNotificationRequest{
		UserID:      c.UserID,
		Type:        notification.TypeOffer,
		Title:       title,
		Message:     fmt.Sprintf("%s has %s the offer for %s", graduateName, verb, j.Title),
		RelatedID:   &o.ID,
		RelatedType: &relatedType,
	})
}

// ListMine implements offer.Service.
func (s *OfferServiceImpl) ListMine(ctx context.Context, graduateUserID string) ([]offer.Offer, error) {
	g, err := s.graduates.GetByUserID(ctx, graduateUserID)
	if err != nil {
		return nil, err
	}
	return s.offers.ListByGraduate(ctx, g.ID)
}
