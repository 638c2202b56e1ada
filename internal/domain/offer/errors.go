package offer

import "errors"

var (
	ErrOfferNotFound  = errors.New("offer not found")
	ErrOfferExists    = errors.New("an offer for this application already exists")
	ErrAlreadyHandled = errors.New("offer has already been responded to")

	// ErrOfferCreation wraps any failure inside offer issuance. By the time
	// it surfaces, the application may already have been written as
	// accepted.
	ErrOfferCreation = errors.New("failed to create and send offer")
)
