package company

import (
	"context"
	"time"

	companyerrors "github.com/VaibhavBaliyan/hirenest/internal/company/errors"
	"github.com/VaibhavBaliyan/hirenest/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, employerID string, req RegisterCompanyRequest) (CompanyResponse, error)
	GetMine(ctx context.Context, employerID string) (CompanyResponse, error)
	UpdateMine(ctx context.Context, employerID string, req UpdateCompanyRequest) (CompanyResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Register(ctx context.Context, employerID string, req RegisterCompanyRequest) (CompanyResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	employerUUID, err := uuid.Parse(employerID)
	if err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidEmployerID
	}

	// Fast-path pre-check; the unique index on employer_id is the real
	// arbiter under concurrent requests.
	if _, err := s.repo.FindByEmployer(ctx, employerID); err == nil {
		return CompanyResponse{}, companyerrors.ErrCompanyExists
	}

	comp := &Company{
		ID:          uuid.New(),
		EmployerID:  employerUUID,
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Logo:        req.Logo,
		Location:    req.Location,
	}

	if err := s.repo.Create(ctx, comp); err != nil {
		l.Warn("register company persist failed", zap.String("employer_id", employerID), zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	l.Info("company registered",
		zap.String("company_id", comp.ID.String()),
		zap.String("employer_id", employerID),
	)
	return mapToResponse(*comp), nil
}

func (s *service) GetMine(ctx context.Context, employerID string) (CompanyResponse, error) {
	comp, err := s.repo.FindByEmployer(ctx, employerID)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*comp), nil
}

func (s *service) UpdateMine(ctx context.Context, employerID string, req UpdateCompanyRequest) (CompanyResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	comp, err := s.repo.FindByEmployer(ctx, employerID)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		comp.Name = *req.Name
	}
	if req.Description != nil {
		comp.Description = *req.Description
	}
	if req.Website != nil {
		comp.Website = *req.Website
	}
	if req.Logo != nil {
		comp.Logo = *req.Logo
	}
	if req.Location != nil {
		comp.Location = *req.Location
	}

	if err := s.repo.Update(ctx, comp); err != nil {
		l.Error("update company persist failed", zap.String("company_id", comp.ID.String()), zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*comp), nil
}

func mapToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID.String(),
		EmployerID:  c.EmployerID.String(),
		Name:        c.Name,
		Description: c.Description,
		Website:     c.Website,
		Logo:        c.Logo,
		Location:    c.Location,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}
