package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sstlab/vigia/pkg/domain/interfaces"
	"github.com/sstlab/vigia/pkg/domain/model"
)

type CompanyUseCase struct {
	repo interfaces.Repository
}

func NewCompanyUseCase(repo interfaces.Repository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

func (uc *CompanyUseCase) CreateCompany(ctx context.Context, company *model.Company) (*model.Company, error) {
	if company.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "company name is required")
	}
	if company.SegmentID != 0 {
		if _, err := uc.repo.Segment().Get(ctx, company.SegmentID); err != nil {
			return nil, goerr.Wrap(err, "segment not found", goerr.V("segmentID", company.SegmentID))
		}
	}

	created, err := uc.repo.Company().Create(ctx, company)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create company")
	}
	return created, nil
}

func (uc *CompanyUseCase) GetCompany(ctx context.Context, id int64) (*model.Company, error) {
	company, err := uc.repo.Company().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get company", goerr.V(CompanyIDKey, id))
	}
	return company, nil
}

func (uc *CompanyUseCase) ListCompanies(ctx context.Context) ([]*model.Company, error) {
	companies, err := uc.repo.Company().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list companies")
	}
	return companies, nil
}

func (uc *CompanyUseCase) UpdateCompany(ctx context.Context, company *model.Company) (*model.Company, error) {
	if company.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "company name is required")
	}
	if company.SegmentID != 0 {
		if _, err := uc.repo.Segment().Get(ctx, company.SegmentID); err != nil {
			return nil, goerr.Wrap(err, "segment not found", goerr.V("segmentID", company.SegmentID))
		}
	}

	updated, err := uc.repo.Company().Update(ctx, company)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update company", goerr.V(CompanyIDKey, company.ID))
	}
	return updated, nil
}

// DeleteCompany removes the company record only. Employees, sectors,
// functions and inventories referencing it are kept and must be removed
// explicitly.
func (uc *CompanyUseCase) DeleteCompany(ctx context.Context, id int64) error {
	if err := uc.repo.Company().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete company", goerr.V(CompanyIDKey, id))
	}
	return nil
}

func (uc *CompanyUseCase) CreateEmployee(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	if employee.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "employee name is required")
	}
	if _, err := uc.repo.Company().Get(ctx, employee.CompanyID); err != nil {
		return nil, goerr.Wrap(err, "company not found", goerr.V(CompanyIDKey, employee.CompanyID))
	}

	created, err := uc.repo.Employee().Create(ctx, employee)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create employee")
	}
	return created, nil
}

func (uc *CompanyUseCase) ListEmployees(ctx context.Context, companyID int64) ([]*model.Employee, error) {
	employees, err := uc.repo.Employee().ListByCompany(ctx, companyID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list employees", goerr.V(CompanyIDKey, companyID))
	}
	return employees, nil
}

func (uc *CompanyUseCase) UpdateEmployee(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	if employee.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "employee name is required")
	}

	updated, err := uc.repo.Employee().Update(ctx, employee)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update employee", goerr.V("employeeID", employee.ID))
	}
	return updated, nil
}

func (uc *CompanyUseCase) DeleteEmployee(ctx context.Context, id int64) error {
	if err := uc.repo.Employee().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete employee", goerr.V("employeeID", id))
	}
	return nil
}
