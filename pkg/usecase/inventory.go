package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sstlab/vigia/pkg/domain/interfaces"
	"github.com/sstlab/vigia/pkg/domain/model"
	"github.com/sstlab/vigia/pkg/domain/types"
)

type InventoryUseCase struct {
	repo interfaces.Repository
}

func NewInventoryUseCase(repo interfaces.Repository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// CreateInventory starts a new empty draft inventory for the company. The
// version number is one above the company's highest existing version, so
// versions stay unique even after deletions.
func (uc *InventoryUseCase) CreateInventory(ctx context.Context, companyID int64) (*model.Inventory, error) {
	company, err := uc.repo.Company().Get(ctx, companyID)
	if err != nil {
		return nil, goerr.Wrap(err, "company not found", goerr.V(CompanyIDKey, companyID))
	}

	existing, err := uc.repo.Inventory().ListByCompany(ctx, companyID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list inventories", goerr.V(CompanyIDKey, companyID))
	}

	inventory := &model.Inventory{
		CompanyID:   companyID,
		CompanyName: company.Name,
		Version:     model.NextVersion(existing),
		Status:      types.InventoryStatusDraft,
		Entries:     []model.RiskEntry{},
	}

	created, err := uc.repo.Inventory().Create(ctx, inventory)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create inventory", goerr.V(CompanyIDKey, companyID))
	}
	return created, nil
}

func (uc *InventoryUseCase) GetInventory(ctx context.Context, id int64) (*model.Inventory, error) {
	inventory, err := uc.repo.Inventory().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get inventory", goerr.V(InventoryIDKey, id))
	}
	return inventory, nil
}

func (uc *InventoryUseCase) ListInventories(ctx context.Context, companyID int64) ([]*model.Inventory, error) {
	inventories, err := uc.repo.Inventory().ListByCompany(ctx, companyID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list inventories", goerr.V(CompanyIDKey, companyID))
	}
	return inventories, nil
}

func (uc *InventoryUseCase) UpdateStatus(ctx context.Context, id int64, status types.InventoryStatus) (*model.Inventory, error) {
	if !status.IsValid() {
		return nil, goerr.Wrap(ErrInvalidInput, "invalid inventory status", goerr.V("status", status))
	}

	inventory, err := uc.repo.Inventory().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get inventory", goerr.V(InventoryIDKey, id))
	}

	inventory.Status = status
	updated, err := uc.repo.Inventory().Update(ctx, inventory)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update inventory status", goerr.V(InventoryIDKey, id))
	}
	return updated, nil
}

func (uc *InventoryUseCase) DeleteInventory(ctx context.Context, id int64) error {
	if err := uc.repo.Inventory().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete inventory", goerr.V(InventoryIDKey, id))
	}
	return nil
}

// CloneInventory copies an inventory into a new draft version of the same
// company. Every entry receives a fresh identifier so the copies evolve
// independently of the originals.
func (uc *InventoryUseCase) CloneInventory(ctx context.Context, id int64) (*model.Inventory, error) {
	source, err := uc.repo.Inventory().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get inventory", goerr.V(InventoryIDKey, id))
	}

	existing, err := uc.repo.Inventory().ListByCompany(ctx, source.CompanyID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list inventories", goerr.V(CompanyIDKey, source.CompanyID))
	}

	cloned := source.Clone()
	cloned.ID = 0
	cloned.Version = model.NextVersion(existing)
	cloned.Status = types.InventoryStatusDraft
	now := time.Now().UTC()
	for i := range cloned.Entries {
		cloned.Entries[i].ID = model.NewEntryID()
		cloned.Entries[i].CreatedAt = now
	}

	created, err := uc.repo.Inventory().Create(ctx, cloned)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create cloned inventory", goerr.V(InventoryIDKey, id))
	}
	return created, nil
}

// SaveEntry validates an entry, snapshots the names of every referenced
// record, recomputes the score and upserts the entry into the inventory. An
// entry without ID is appended as new; a known ID replaces the stored entry
// while keeping its creation time.
func (uc *InventoryUseCase) SaveEntry(ctx context.Context, inventoryID int64, entry *model.RiskEntry) (*model.RiskEntry, error) {
	if entry.SectorID == 0 {
		return nil, goerr.Wrap(ErrInvalidInput, "risk entry sector is required")
	}
	if entry.SourceID == 0 {
		return nil, goerr.Wrap(ErrInvalidInput, "risk entry danger source is required")
	}
	if entry.DangerID == 0 {
		return nil, goerr.Wrap(ErrInvalidInput, "risk entry danger is required")
	}
	if entry.Probability < 1 {
		entry.Probability = 1
	}
	if entry.Severity < 1 {
		entry.Severity = 1
	}
	if entry.Probability > 5 || entry.Severity > 5 {
		return nil, goerr.Wrap(ErrInvalidInput, "probability and severity must be between 1 and 5",
			goerr.V("probability", entry.Probability), goerr.V("severity", entry.Severity))
	}

	inventory, err := uc.repo.Inventory().Get(ctx, inventoryID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get inventory", goerr.V(InventoryIDKey, inventoryID))
	}

	saved := entry.Clone()
	if err := uc.snapshotEntry(ctx, saved); err != nil {
		return nil, err
	}
	saved.Score = model.ScoreRisk(saved.Probability, saved.Severity)

	if saved.ID == "" {
		saved.ID = model.NewEntryID()
		saved.CreatedAt = time.Now().UTC()
		inventory.Entries = append(inventory.Entries, *saved)
	} else {
		replaced := false
		for i := range inventory.Entries {
			if inventory.Entries[i].ID == saved.ID {
				saved.CreatedAt = inventory.Entries[i].CreatedAt
				inventory.Entries[i] = *saved
				replaced = true
				break
			}
		}
		if !replaced {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "risk entry not found",
				goerr.V(InventoryIDKey, inventoryID), goerr.V(EntryIDKey, saved.ID))
		}
	}

	if _, err := uc.repo.Inventory().Update(ctx, inventory); err != nil {
		return nil, goerr.Wrap(err, "failed to save inventory", goerr.V(InventoryIDKey, inventoryID))
	}
	return saved, nil
}

// snapshotEntry denormalizes the names of the referenced sector, functions,
// source, danger and measures into the entry, and normalizes measure
// statuses. Sector, source and danger must exist; missing functions and
// measures keep their previous snapshot.
func (uc *InventoryUseCase) snapshotEntry(ctx context.Context, entry *model.RiskEntry) error {
	sector, err := uc.repo.Sector().Get(ctx, entry.SectorID)
	if err != nil {
		return goerr.Wrap(err, "sector not found", goerr.V("sectorID", entry.SectorID))
	}
	entry.SectorName = sector.Name

	source, err := uc.repo.DangerSource().Get(ctx, entry.SourceID)
	if err != nil {
		return goerr.Wrap(err, "danger source not found", goerr.V("sourceID", entry.SourceID))
	}
	entry.SourceName = source.Name

	danger, err := uc.repo.Danger().Get(ctx, entry.DangerID)
	if err != nil {
		return goerr.Wrap(err, "danger not found", goerr.V("dangerID", entry.DangerID))
	}
	entry.DangerName = danger.Name

	names := make([]string, 0, len(entry.FunctionIDs))
	for _, fnID := range entry.FunctionIDs {
		fn, err := uc.repo.Function().Get(ctx, fnID)
		if err != nil {
			continue
		}
		names = append(names, fn.Name)
	}
	entry.FunctionNames = names

	for i := range entry.Measures {
		entry.Measures[i].Status = entry.Measures[i].Status.Normalize()
		measure, err := uc.repo.ProtectionMeasure().Get(ctx, entry.Measures[i].MeasureID)
		if err != nil {
			continue
		}
		entry.Measures[i].MeasureName = measure.Name
	}

	return nil
}

func (uc *InventoryUseCase) DeleteEntry(ctx context.Context, inventoryID int64, entryID string) error {
	inventory, err := uc.repo.Inventory().Get(ctx, inventoryID)
	if err != nil {
		return goerr.Wrap(err, "failed to get inventory", goerr.V(InventoryIDKey, inventoryID))
	}

	found := -1
	for i := range inventory.Entries {
		if inventory.Entries[i].ID == entryID {
			found = i
			break
		}
	}
	if found < 0 {
		return goerr.Wrap(interfaces.ErrNotFound, "risk entry not found",
			goerr.V(InventoryIDKey, inventoryID), goerr.V(EntryIDKey, entryID))
	}

	inventory.Entries = append(inventory.Entries[:found], inventory.Entries[found+1:]...)
	if _, err := uc.repo.Inventory().Update(ctx, inventory); err != nil {
		return goerr.Wrap(err, "failed to save inventory", goerr.V(InventoryIDKey, inventoryID))
	}
	return nil
}

// CloneEntry duplicates one entry inside the same inventory. The copy gets
// a fresh identifier and a marked description so the user can tell the two
// apart before editing.
func (uc *InventoryUseCase) CloneEntry(ctx context.Context, inventoryID int64, entryID string) (*model.RiskEntry, error) {
	inventory, err := uc.repo.Inventory().Get(ctx, inventoryID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get inventory", goerr.V(InventoryIDKey, inventoryID))
	}

	var source *model.RiskEntry
	for i := range inventory.Entries {
		if inventory.Entries[i].ID == entryID {
			source = &inventory.Entries[i]
			break
		}
	}
	if source == nil {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "risk entry not found",
			goerr.V(InventoryIDKey, inventoryID), goerr.V(EntryIDKey, entryID))
	}

	cloned := source.Clone()
	cloned.ID = model.NewEntryID()
	cloned.Description = source.Description + " (copy)"
	cloned.CreatedAt = time.Now().UTC()

	inventory.Entries = append(inventory.Entries, *cloned)
	if _, err := uc.repo.Inventory().Update(ctx, inventory); err != nil {
		return nil, goerr.Wrap(err, "failed to save inventory", goerr.V(InventoryIDKey, inventoryID))
	}
	return cloned, nil
}
