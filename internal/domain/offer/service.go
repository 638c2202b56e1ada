package offer

import "context"

// Issuer creates and sends offers. The transition workflow consumes it when
// an application is accepted; its failure is load-bearing for that branch.
type Issuer interface {
	// CreateAndSend creates the offer for applicationID (status sent) and
	// flips the application to offer_sent. Fails with ErrOfferCreation.
	CreateAndSend(ctx context.Context, applicationID, actingUserID string) error
}

// Service adds the read and graduate-response operations on top of issuance.
type Service interface {
	Issuer

	Get(ctx context.Context, id string) (Offer, error)
	GetForApplication(ctx context.Context, applicationID string) (Offer, error)
	// Accept/Decline are the graduate's response to a sent offer. Accepting
	// here does not close the job; the hired transition remains the
	// authority for that.
	Accept(ctx context.Context, offerID, graduateUserID string) (Offer, error)
	Decline(ctx context.Context, offerID, graduateUserID string) (Offer, error)
	ListMine(ctx context.Context, graduateUserID string) ([]Offer, error)
}
