package company

import (
	"context"
	"strings"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/company"
)

type CompanyService interface {
	GetProfile(ctx context.Context, userID string) (company.Response, error)
	UpsertProfile(ctx context.Context, userID string, req company.UpsertProfileRequest) (company.Response, error)
	Get(ctx context.Context, companyID string) (company.DetailResponse, error)
	List(ctx context.Context, search string, page, limit int) ([]company.Response, int64, error)
	SetActive(ctx context.Context, companyID string, active bool) error
}

type CompanyServiceImpl struct {
	companies company.Repository
}

func NewCompanyService(companies company.Repository) CompanyService {
	return &CompanyServiceImpl{companies: companies}
}

// GetProfile implements CompanyService.
func (s *CompanyServiceImpl) GetProfile(ctx context.Context, userID string) (company.Response, error) {
	c, err := s.companies.GetByUserID(ctx, userID)
	if err != nil {
		return company.Response{}, err
	}
	return company.ToResponse(c), nil
}

// UpsertProfile implements CompanyService.
func (s *CompanyServiceImpl) UpsertProfile(ctx context.Context, userID string, req company.UpsertProfileRequest) (company.Response, error) {
	if err := req.Validate(); err != nil {
		return company.Response{}, err
	}

	c, err := s.companies.Upsert(ctx, company.Company{
		UserID:      userID,
		CompanyName: strings.TrimSpace(req.CompanyName),
		Industry:    req.Industry,
		Description: req.Description,
		Website:     req.Website,
	})
	if err != nil {
		return company.Response{}, err
	}
	return company.ToResponse(c), nil
}

// Get implements CompanyService.
func (s *CompanyServiceImpl) Get(ctx context.Context, companyID string) (company.DetailResponse, error) {
	c, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return company.DetailResponse{}, err
	}

	stats, err := s.companies.GetHireStats(ctx, c.ID)
	if err != nil {
		return company.DetailResponse{}, err
	}

	return company.DetailResponse{
		Response:        company.ToResponse(c),
		PostedJobs:      stats.PostedJobs,
		HiredCandidates: stats.HiredCandidates,
	}, nil
}

// List implements CompanyService.
func (s *CompanyServiceImpl) List(ctx context.Context, search string, page, limit int) ([]company.Response, int64, error) {
	companies, total, err := s.companies.List(ctx, search, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]company.Response, len(companies))
	for i, c := range companies {
		responses[i] = company.ToResponse(c)
	}
	return responses, total, nil
}

// SetActive implements CompanyService.
func (s *CompanyServiceImpl) SetActive(ctx context.Context, companyID string, active bool) error {
	return s.companies.SetActive(ctx, companyID, active)
}
