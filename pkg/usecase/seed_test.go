package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/sstlab/vigia/pkg/repository/memory"
	"github.com/sstlab/vigia/pkg/usecase"
)

func TestDefaultSeedCatalog(t *testing.T) {
	catalog, err := usecase.DefaultSeedCatalog()
	gt.NoError(t, err).Required()

	gt.Bool(t, len(catalog.Segments) > 0).True()
	gt.Bool(t, len(catalog.DangerGroups) > 0).True()
	gt.Bool(t, len(catalog.Dangers) > 0).True()
	gt.Bool(t, len(catalog.Norms) > 0).True()
	gt.Bool(t, len(catalog.NormDetails) > 0).True()
	gt.Bool(t, len(catalog.Associations) > 0).True()
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)

	catalog, err := usecase.DefaultSeedCatalog()
	gt.NoError(t, err).Required()

	gt.NoError(t, uc.Seed.Seed(ctx, catalog)).Required()

	segments, err := uc.Catalog.ListSegments(ctx)
	gt.NoError(t, err).Required()
	gt.Number(t, len(segments)).Equal(len(catalog.Segments))

	dangers, err := uc.Danger.ListDangers(ctx)
	gt.NoError(t, err).Required()
	gt.Number(t, len(dangers)).Equal(len(catalog.Dangers))

	// every danger must resolve to an existing group
	groups, err := uc.Danger.ListGroups(ctx)
	gt.NoError(t, err).Required()
	groupIDs := map[int64]bool{}
	for _, g := range groups {
		groupIDs[g.ID] = true
	}
	for _, d := range dangers {
		gt.Bool(t, groupIDs[d.GroupID]).True()
	}

	norms, err := uc.Norm.ListNorms(ctx)
	gt.NoError(t, err).Required()
	gt.Number(t, len(norms)).Equal(len(catalog.Norms))

	// seeding again is a no-op
	gt.NoError(t, uc.Seed.Seed(ctx, catalog)).Required()

	segmentsAfter, err := uc.Catalog.ListSegments(ctx)
	gt.NoError(t, err).Required()
	gt.Number(t, len(segmentsAfter)).Equal(len(segments))
}

func TestParseSeedCatalogRejectsGarbage(t *testing.T) {
	_, err := usecase.ParseSeedCatalog([]byte("not toml {{{"))
	gt.Value(t, err).NotNil()
}
