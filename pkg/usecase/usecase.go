package usecase

import (
	"github.com/m-mizutani/gollem"
	"github.com/sstlab/vigia/pkg/domain/interfaces"
)

type UseCases struct {
	repo      interfaces.Repository
	llmClient gollem.LLMClient

	Company   *CompanyUseCase
	Catalog   *CatalogUseCase
	Danger    *DangerUseCase
	Norm      *NormUseCase
	Inventory *InventoryUseCase
	Report    *ReportUseCase
	Assist    *AssistUseCase
	Seed      *SeedUseCase
}

type Option func(*UseCases)

// WithLLM enables LLM-backed assistant replies. Without it the assistant
// falls back to deterministic keyword responses.
func WithLLM(client gollem.LLMClient) Option {
	return func(uc *UseCases) {
		uc.llmClient = client
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Company = NewCompanyUseCase(repo)
	uc.Catalog = NewCatalogUseCase(repo)
	uc.Danger = NewDangerUseCase(repo)
	uc.Norm = NewNormUseCase(repo)
	uc.Inventory = NewInventoryUseCase(repo)
	uc.Report = NewReportUseCase(repo)
	uc.Assist = NewAssistUseCase(repo, uc.llmClient)
	uc.Seed = NewSeedUseCase(repo)

	return uc
}
