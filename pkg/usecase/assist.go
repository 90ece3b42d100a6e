package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/sstlab/vigia/pkg/domain/interfaces"
	"github.com/sstlab/vigia/pkg/domain/model"
	"github.com/sstlab/vigia/pkg/service/assistant"
	"github.com/sstlab/vigia/pkg/utils/logging"
)

// maxHistoryExchanges bounds how much replayed conversation is considered
const maxHistoryExchanges = 5

type AssistUseCase struct {
	repo      interfaces.Repository
	llmClient gollem.LLMClient
	fallback  *assistant.Responder
}

func NewAssistUseCase(repo interfaces.Repository, llmClient gollem.LLMClient) *AssistUseCase {
	return &AssistUseCase{
		repo:      repo,
		llmClient: llmClient,
		fallback:  assistant.New(),
	}
}

// Chat answers one user message in the context of a company's current risk
// data. With an LLM client configured the reply is generated; without one,
// or when the LLM call fails, a deterministic keyword-based reply is
// returned instead. companyID may be zero for questions not tied to a
// company.
func (uc *AssistUseCase) Chat(ctx context.Context, companyID int64, message string, history []model.ChatExchange) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", goerr.Wrap(ErrInvalidInput, "message is required")
	}

	if len(history) > maxHistoryExchanges {
		history = history[len(history)-maxHistoryExchanges:]
	}

	if uc.llmClient == nil {
		return uc.fallback.Respond(message), nil
	}

	systemPrompt, err := uc.buildSystemPrompt(ctx, companyID)
	if err != nil {
		return "", err
	}

	session, err := uc.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(systemPrompt),
	)
	if err != nil {
		logging.From(ctx).Warn("failed to create LLM session, answering locally", "error", err, "companyID", companyID)
		return uc.fallback.Respond(message), nil
	}

	var prompt strings.Builder
	for _, exchange := range history {
		fmt.Fprintf(&prompt, "User: %s\nAssistant: %s\n", exchange.Question, exchange.Answer)
	}
	fmt.Fprintf(&prompt, "User: %s", message)

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt.String()))
	if err != nil {
		logging.From(ctx).Warn("failed to generate assistant reply, answering locally", "error", err, "companyID", companyID)
		return uc.fallback.Respond(message), nil
	}
	if len(resp.Texts) == 0 {
		logging.From(ctx).Warn("assistant returned empty response", "companyID", companyID)
		return uc.fallback.Respond(message), nil
	}

	return strings.Join(resp.Texts, "\n"), nil
}

// buildSystemPrompt summarizes the company's current risk data so the model
// answers from real numbers instead of guessing.
func (uc *AssistUseCase) buildSystemPrompt(ctx context.Context, companyID int64) (string, error) {
	var prompt strings.Builder
	prompt.WriteString("You are an occupational health and safety assistant. ")
	prompt.WriteString("Answer questions about hazard inventories, risk scoring (probability x severity on 1-5 scales, five bands), regulatory norms and risk management program documents. ")
	prompt.WriteString("Be concise and practical.\n")

	if companyID == 0 {
		return prompt.String(), nil
	}

	company, err := uc.repo.Company().Get(ctx, companyID)
	if err != nil {
		return "", goerr.Wrap(err, "company not found", goerr.V(CompanyIDKey, companyID))
	}
	fmt.Fprintf(&prompt, "\nCurrent company: %s.\n", company.Name)

	inventories, err := uc.repo.Inventory().ListByCompany(ctx, companyID)
	if err != nil {
		return "", goerr.Wrap(err, "failed to list inventories", goerr.V(CompanyIDKey, companyID))
	}
	if len(inventories) == 0 {
		prompt.WriteString("The company has no hazard inventory yet.\n")
		return prompt.String(), nil
	}

	latest := inventories[0]
	for _, inv := range inventories[1:] {
		if inv.Version > latest.Version {
			latest = inv
		}
	}

	counts := map[string]int{}
	for i := range latest.Entries {
		counts[latest.Entries[i].Score.Label()]++
	}
	fmt.Fprintf(&prompt, "Latest inventory: version %d (%s) with %d entries.", latest.Version, latest.Status, len(latest.Entries))
	for label, count := range counts {
		fmt.Fprintf(&prompt, " %s: %d.", label, count)
	}
	prompt.WriteString("\n")

	return prompt.String(), nil
}
