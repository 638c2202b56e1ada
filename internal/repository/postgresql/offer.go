package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/offer"
	"github.com/DLT-Africa-Hub/Recruita/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type offerRepositoryImpl struct {
	db *database.DB
}

func NewOfferRepository(db *database.DB) offer.Repository {
	return &offerRepositoryImpl{db: db}
}

const offerColumns = `
	id, application_id, job_id, graduate_id, status, accepted_at, declined_at, updated_by, created_at, updated_at
`

func scanOffer(row pgx.Row) (offer.Offer, error) {
	var o offer.Offer
	err := row.Scan(
		&o.ID, &o.ApplicationID, &o.JobID, &o.GraduateID, &o.Status,
		&o.AcceptedAt, &o.DeclinedAt, &o.UpdatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

func (r *offerRepositoryImpl) Create(ctx context.Context, o offer.Offer) (offer.Offer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO offers (id, application_id, job_id, graduate_id, status, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		o.ApplicationID, o.JobID, o.GraduateID, o.Status,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return offer.Offer{}, fmt.Errorf("create offer: %w", err)
	}

	return o, nil
}

func (r *offerRepositoryImpl) GetByID(ctx context.Context, id string) (offer.Offer, error) {
	q := GetQuerier(ctx, r.db)

	o, err := scanOffer(q.QueryRow(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return offer.Offer{}, offer.ErrOfferNotFound
	}
	if err != nil {
		return offer.Offer{}, fmt.Errorf("get offer by id: %w", err)
	}
	return o, nil
}

func (r *offerRepositoryImpl) GetByApplicationID(ctx context.Context, applicationID string) (offer.Offer, error) {
	q := GetQuerier(ctx, r.db)

	o, err := scanOffer(q.QueryRow(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE application_id = $1`, applicationID))
	if errors.Is(err, pgx.ErrNoRows) {
		return offer.Offer{}, offer.ErrOfferNotFound
	}
	if err != nil {
		return offer.Offer{}, fmt.Errorf("get offer by application id: %w", err)
	}
	return o, nil
}

func (r *offerRepositoryImpl) MarkAccepted(ctx context.Context, id string, acceptedAt time.Time, updatedBy string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE offers
		SET status = $1, accepted_at = $2, updated_by = $3, updated_at = NOW()
		WHERE id = $4
	`, offer.StatusAccepted, acceptedAt, updatedBy, id)
	if err != nil {
		return fmt.Errorf("mark offer accepted: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return offer.ErrOfferNotFound
	}
	return nil
}

func (r *offerRepositoryImpl) UpdateStatus(ctx context.Context, id string, status offer.Status, updatedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE offers
		SET status = $1,
		    updated_by = $2,
		    declined_at = CASE WHEN $1 = 'declined' THEN NOW() ELSE declined_at END,
		    updated_at = NOW()
		WHERE id = $3
	`

	commandTag, err := q.Exec(ctx, query, status, updatedBy, id)
	if err != nil {
		return fmt.Errorf("update offer status: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return offer.ErrOfferNotFound
	}
	return nil
}

func (r *offerRepositoryImpl) ListByGraduate(ctx context.Context, graduateID string) ([]offer.Offer, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE graduate_id = $1 ORDER BY created_at DESC`,
		graduateID)
	if err != nil {
		return nil, fmt.Errorf("list offers by graduate: %w", err)
	}
	defer rows.Close()

	var offers []offer.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}

	return offers, rows.Err()
}
