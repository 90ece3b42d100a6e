package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sstlab/vigia/pkg/domain/model"
)

const (
	suggestedProbability = 3
	suggestedSeverity    = 3

	suggestedDescription = "Suggested hazard based on the regulatory norm for the company segment."
)

// SuggestEntries expands the segment-norm associations of the inventory's
// company into pre-filled risk entries and appends them to the inventory.
// Pairs of (source, danger) already present are skipped, so running the
// suggestion twice adds nothing the second time. Suggested entries carry
// middle-of-scale probability and severity and must be reviewed by the user.
func (uc *InventoryUseCase) SuggestEntries(ctx context.Context, inventoryID int64) ([]model.RiskEntry, error) {
	inventory, err := uc.repo.Inventory().Get(ctx, inventoryID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get inventory", goerr.V(InventoryIDKey, inventoryID))
	}

	company, err := uc.repo.Company().Get(ctx, inventory.CompanyID)
	if err != nil {
		return nil, goerr.Wrap(err, "company not found", goerr.V(CompanyIDKey, inventory.CompanyID))
	}
	if company.SegmentID == 0 {
		return nil, goerr.Wrap(ErrNoSegment, "cannot suggest entries", goerr.V(CompanyIDKey, company.ID))
	}

	assocs, err := uc.repo.SegmentNormAssoc().ListBySegment(ctx, company.SegmentID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list segment associations", goerr.V("segmentID", company.SegmentID))
	}

	type pair struct{ sourceID, dangerID int64 }
	seen := map[pair]bool{}

	added := []model.RiskEntry{}
	now := time.Now().UTC()
	for _, assoc := range assocs {
		key := pair{assoc.DangerSourceID, assoc.DangerID}
		if seen[key] || inventory.HasEntry(assoc.DangerSourceID, assoc.DangerID) {
			continue
		}
		seen[key] = true

		entry, err := uc.buildSuggestedEntry(ctx, assoc, now)
		if err != nil {
			return nil, err
		}
		added = append(added, *entry)
	}

	if len(added) == 0 {
		return added, nil
	}

	inventory.Entries = append(inventory.Entries, added...)
	if _, err := uc.repo.Inventory().Update(ctx, inventory); err != nil {
		return nil, goerr.Wrap(err, "failed to save inventory", goerr.V(InventoryIDKey, inventoryID))
	}
	return added, nil
}

// buildSuggestedEntry turns one association into a pre-filled entry. The
// norm detail for the (norm, danger) pair contributes the expected injuries;
// the measure status list always starts empty so the user records what is
// actually in place.
func (uc *InventoryUseCase) buildSuggestedEntry(ctx context.Context, assoc *model.SegmentNormAssociation, now time.Time) (*model.RiskEntry, error) {
	source, err := uc.repo.DangerSource().Get(ctx, assoc.DangerSourceID)
	if err != nil {
		return nil, goerr.Wrap(err, "danger source not found", goerr.V("sourceID", assoc.DangerSourceID))
	}
	danger, err := uc.repo.Danger().Get(ctx, assoc.DangerID)
	if err != nil {
		return nil, goerr.Wrap(err, "danger not found", goerr.V("dangerID", assoc.DangerID))
	}

	entry := &model.RiskEntry{
		ID:          model.NewEntryID(),
		SourceID:    assoc.DangerSourceID,
		DangerID:    assoc.DangerID,
		Description: suggestedDescription,
		Probability: suggestedProbability,
		Severity:    suggestedSeverity,
		Score:       model.ScoreRisk(suggestedProbability, suggestedSeverity),
		SourceName:  source.Name,
		DangerName:  danger.Name,
		CreatedAt:   now,
	}

	detail, err := uc.repo.NormDetail().FindByNormDanger(ctx, assoc.NormID, assoc.DangerID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to look up norm detail", goerr.V(NormIDKey, assoc.NormID))
	}
	if detail == nil {
		return entry, nil
	}

	entry.InjuryIDs = append([]int64(nil), detail.InjuryIDs...)
	return entry, nil
}
