package usecase

import (
	"context"
	_ "embed"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/sstlab/vigia/pkg/domain/interfaces"
	"github.com/sstlab/vigia/pkg/domain/model"
	"github.com/sstlab/vigia/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

//go:embed seed/catalog.toml
var defaultCatalog []byte

// SeedCatalog is the reference data loaded into an empty database. Records
// reference each other by name; IDs are assigned at load time.
type SeedCatalog struct {
	Segments           []seedName        `toml:"segment"`
	DangerGroups       []seedDangerGroup `toml:"danger_group"`
	Dangers            []seedDanger      `toml:"danger"`
	DangerSources      []seedName        `toml:"danger_source"`
	ProtectionMeasures []seedName        `toml:"protection_measure"`
	Injuries           []seedName        `toml:"injury"`
	Norms              []seedNorm        `toml:"norm"`
	NormDetails        []seedNormDetail  `toml:"norm_detail"`
	Associations       []seedAssociation `toml:"association"`
}

type seedName struct {
	Name string `toml:"name"`
}

type seedDangerGroup struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Color       string `toml:"color"`
}

type seedDanger struct {
	Group       string `toml:"group"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

type seedNorm struct {
	Number      string `toml:"number"`
	Name        string `toml:"name"`
	Type        string `toml:"type"`
	Description string `toml:"description"`
}

type seedNormDetail struct {
	Norm     string   `toml:"norm"`
	Danger   string   `toml:"danger"`
	Injuries []string `toml:"injuries"`
	Measures []string `toml:"measures"`
}

type seedAssociation struct {
	Segment string `toml:"segment"`
	Source  string `toml:"source"`
	Norm    string `toml:"norm"`
	Danger  string `toml:"danger"`
}

// ParseSeedCatalog decodes a TOML catalog
func ParseSeedCatalog(data []byte) (*SeedCatalog, error) {
	var catalog SeedCatalog
	if err := toml.Unmarshal(data, &catalog); err != nil {
		return nil, goerr.Wrap(err, "failed to parse seed catalog")
	}
	return &catalog, nil
}

// DefaultSeedCatalog returns the embedded reference catalog
func DefaultSeedCatalog() (*SeedCatalog, error) {
	return ParseSeedCatalog(defaultCatalog)
}

type SeedUseCase struct {
	repo interfaces.Repository
}

func NewSeedUseCase(repo interfaces.Repository) *SeedUseCase {
	return &SeedUseCase{repo: repo}
}

// Seed loads the catalog into the repository. Independent collections load
// concurrently; dangers wait for their groups, and details and associations
// wait for everything they reference. A database that already holds
// segments is considered seeded and left untouched.
func (uc *SeedUseCase) Seed(ctx context.Context, catalog *SeedCatalog) error {
	existing, err := uc.repo.Segment().List(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to check existing segments")
	}
	if len(existing) > 0 {
		logging.From(ctx).Info("database already seeded, skipping", "segments", len(existing))
		return nil
	}

	segmentIDs := map[string]int64{}
	groupIDs := map[string]int64{}
	sourceIDs := map[string]int64{}
	measureIDs := map[string]int64{}
	injuryIDs := map[string]int64{}
	normIDs := map[string]int64{}
	dangerIDs := map[string]int64{}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		for _, s := range catalog.Segments {
			created, err := uc.repo.Segment().Create(egCtx, &model.Segment{Name: s.Name})
			if err != nil {
				return goerr.Wrap(err, "failed to seed segment", goerr.V("name", s.Name))
			}
			segmentIDs[s.Name] = created.ID
		}
		return nil
	})
	eg.Go(func() error {
		for _, g := range catalog.DangerGroups {
			created, err := uc.repo.DangerGroup().Create(egCtx, &model.DangerGroup{
				Name:        g.Name,
				Description: g.Description,
				Color:       g.Color,
			})
			if err != nil {
				return goerr.Wrap(err, "failed to seed danger group", goerr.V("name", g.Name))
			}
			groupIDs[g.Name] = created.ID
		}
		return nil
	})
	eg.Go(func() error {
		for _, s := range catalog.DangerSources {
			created, err := uc.repo.DangerSource().Create(egCtx, &model.DangerSource{Name: s.Name})
			if err != nil {
				return goerr.Wrap(err, "failed to seed danger source", goerr.V("name", s.Name))
			}
			sourceIDs[s.Name] = created.ID
		}
		return nil
	})
	eg.Go(func() error {
		for _, m := range catalog.ProtectionMeasures {
			created, err := uc.repo.ProtectionMeasure().Create(egCtx, &model.ProtectionMeasure{Name: m.Name})
			if err != nil {
				return goerr.Wrap(err, "failed to seed protection measure", goerr.V("name", m.Name))
			}
			measureIDs[m.Name] = created.ID
		}
		return nil
	})
	eg.Go(func() error {
		for _, i := range catalog.Injuries {
			created, err := uc.repo.Injury().Create(egCtx, &model.Injury{Name: i.Name})
			if err != nil {
				return goerr.Wrap(err, "failed to seed injury", goerr.V("name", i.Name))
			}
			injuryIDs[i.Name] = created.ID
		}
		return nil
	})
	eg.Go(func() error {
		for _, n := range catalog.Norms {
			created, err := uc.repo.Norm().Create(egCtx, &model.Norm{
				Number:      n.Number,
				Name:        n.Name,
				Type:        n.Type,
				Description: n.Description,
			})
			if err != nil {
				return goerr.Wrap(err, "failed to seed norm", goerr.V("number", n.Number))
			}
			normIDs[n.Number] = created.ID
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	for _, d := range catalog.Dangers {
		groupID, ok := groupIDs[d.Group]
		if !ok {
			return goerr.New("danger references unknown group",
				goerr.V("danger", d.Name), goerr.V("group", d.Group))
		}
		created, err := uc.repo.Danger().Create(ctx, &model.Danger{
			GroupID:     groupID,
			Name:        d.Name,
			Description: d.Description,
		})
		if err != nil {
			return goerr.Wrap(err, "failed to seed danger", goerr.V("name", d.Name))
		}
		dangerIDs[d.Name] = created.ID
	}

	eg, egCtx = errgroup.WithContext(ctx)
	eg.Go(func() error {
		for _, detail := range catalog.NormDetails {
			normID, ok := normIDs[detail.Norm]
			if !ok {
				return goerr.New("norm detail references unknown norm", goerr.V("norm", detail.Norm))
			}
			dangerID, ok := dangerIDs[detail.Danger]
			if !ok {
				return goerr.New("norm detail references unknown danger", goerr.V("danger", detail.Danger))
			}

			injuries := make([]int64, 0, len(detail.Injuries))
			for _, name := range detail.Injuries {
				id, ok := injuryIDs[name]
				if !ok {
					return goerr.New("norm detail references unknown injury", goerr.V("injury", name))
				}
				injuries = append(injuries, id)
			}
			measures := make([]int64, 0, len(detail.Measures))
			for _, name := range detail.Measures {
				id, ok := measureIDs[name]
				if !ok {
					return goerr.New("norm detail references unknown measure", goerr.V("measure", name))
				}
				measures = append(measures, id)
			}

			if _, err := uc.repo.NormDetail().Create(egCtx, &model.NormDetail{
				NormID:     normID,
				DangerID:   dangerID,
				InjuryIDs:  injuries,
				MeasureIDs: measures,
			}); err != nil {
				return goerr.Wrap(err, "failed to seed norm detail", goerr.V("norm", detail.Norm))
			}
		}
		return nil
	})
	eg.Go(func() error {
		for _, assoc := range catalog.Associations {
			segmentID, ok := segmentIDs[assoc.Segment]
			if !ok {
				return goerr.New("association references unknown segment", goerr.V("segment", assoc.Segment))
			}
			sourceID, ok := sourceIDs[assoc.Source]
			if !ok {
				return goerr.New("association references unknown source", goerr.V("source", assoc.Source))
			}
			normID, ok := normIDs[assoc.Norm]
			if !ok {
				return goerr.New("association references unknown norm", goerr.V("norm", assoc.Norm))
			}
			dangerID, ok := dangerIDs[assoc.Danger]
			if !ok {
				return goerr.New("association references unknown danger", goerr.V("danger", assoc.Danger))
			}

			if _, err := uc.repo.SegmentNormAssoc().Create(egCtx, &model.SegmentNormAssociation{
				SegmentID:      segmentID,
				DangerSourceID: sourceID,
				NormID:         normID,
				DangerID:       dangerID,
			}); err != nil {
				return goerr.Wrap(err, "failed to seed association", goerr.V("segment", assoc.Segment))
			}
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	logging.From(ctx).Info("seed completed",
		"segments", len(catalog.Segments),
		"dangers", len(catalog.Dangers),
		"norms", len(catalog.Norms),
		"details", len(catalog.NormDetails),
		"associations", len(catalog.Associations),
	)
	return nil
}
