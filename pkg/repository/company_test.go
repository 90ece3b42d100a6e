package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/sstlab/vigia/pkg/domain/interfaces"
	"github.com/sstlab/vigia/pkg/domain/model"
)

func runCompanyRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns auto-increment ID and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created1, err := repo.Company().Create(ctx, &model.Company{
			Name:         "Acme Industrial",
			TaxID:        "12.345.678/0001-90",
			ActivityCode: "25.11-0",
			RiskGrade:    3,
		})
		gt.NoError(t, err).Required()

		gt.Value(t, created1.ID).NotEqual(int64(0))
		gt.Value(t, created1.Name).Equal("Acme Industrial")
		gt.Bool(t, created1.CreatedAt.IsZero()).False()
		gt.Bool(t, created1.UpdatedAt.IsZero()).False()

		created2, err := repo.Company().Create(ctx, &model.Company{Name: "Beta Logistics"})
		gt.NoError(t, err).Required()
		gt.Value(t, created2.ID).NotEqual(created1.ID)
	})

	t.Run("Get retrieves a stored company", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Company().Create(ctx, &model.Company{
			Name:    "Gamma Foods",
			Address: "Av. Central, 1000",
		})
		gt.NoError(t, err).Required()

		got, err := repo.Company().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.ID).Equal(created.ID)
		gt.Value(t, got.Name).Equal("Gamma Foods")
		gt.Value(t, got.Address).Equal("Av. Central, 1000")
	})

	t.Run("Get unknown ID returns ErrNotFound", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Company().Get(ctx, time.Now().UnixNano())
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})

	t.Run("Update preserves CreatedAt and refreshes UpdatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Company().Create(ctx, &model.Company{Name: "Before"})
		gt.NoError(t, err).Required()

		created.Name = "After"
		updated, err := repo.Company().Update(ctx, created)
		gt.NoError(t, err).Required()

		gt.Value(t, updated.ID).Equal(created.ID)
		gt.Value(t, updated.Name).Equal("After")
		gt.Bool(t, updated.CreatedAt.Equal(created.CreatedAt)).True()
		gt.Bool(t, updated.UpdatedAt.Before(created.UpdatedAt)).False()
	})

	t.Run("Update unknown company fails", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Company().Update(ctx, &model.Company{ID: time.Now().UnixNano(), Name: "Ghost"})
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})

	t.Run("Delete removes the company", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Company().Create(ctx, &model.Company{Name: "Short-lived"})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Company().Delete(ctx, created.ID)).Required()

		_, err = repo.Company().Get(ctx, created.ID)
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})

	t.Run("List returns all companies", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, name := range []string{"One", "Two", "Three"} {
			_, err := repo.Company().Create(ctx, &model.Company{Name: name})
			gt.NoError(t, err).Required()
		}

		all, err := repo.Company().List(ctx)
		gt.NoError(t, err).Required()
		gt.Number(t, len(all)).Equal(3)
	})
}

func TestCompanyRepository_Memory(t *testing.T) {
	runCompanyRepositoryTest(t, newMemoryRepo)
}

func TestCompanyRepository_Firestore(t *testing.T) {
	runCompanyRepositoryTest(t, newFirestoreRepo)
}

func runEmployeeRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("ListByCompany filters by company", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		companyA, err := repo.Company().Create(ctx, &model.Company{Name: "A"})
		gt.NoError(t, err).Required()
		companyB, err := repo.Company().Create(ctx, &model.Company{Name: "B"})
		gt.NoError(t, err).Required()

		for _, e := range []*model.Employee{
			{CompanyID: companyA.ID, Name: "Ana", Sector: "Production", Role: "Operator"},
			{CompanyID: companyA.ID, Name: "Bruno", Sector: "Maintenance", Role: "Technician"},
			{CompanyID: companyB.ID, Name: "Carla", Sector: "Office", Role: "Analyst"},
		} {
			_, err := repo.Employee().Create(ctx, e)
			gt.NoError(t, err).Required()
		}

		listed, err := repo.Employee().ListByCompany(ctx, companyA.ID)
		gt.NoError(t, err).Required()
		gt.Number(t, len(listed)).Equal(2)
		for _, e := range listed {
			gt.Value(t, e.CompanyID).Equal(companyA.ID)
		}
	})

	t.Run("ListByCompany with no employees returns empty slice", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		listed, err := repo.Employee().ListByCompany(ctx, 999)
		gt.NoError(t, err).Required()
		gt.Number(t, len(listed)).Equal(0)
	})
}

func TestEmployeeRepository_Memory(t *testing.T) {
	runEmployeeRepositoryTest(t, newMemoryRepo)
}

func TestEmployeeRepository_Firestore(t *testing.T) {
	runEmployeeRepositoryTest(t, newFirestoreRepo)
}
