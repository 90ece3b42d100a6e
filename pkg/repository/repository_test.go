package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/sstlab/vigia/pkg/domain/interfaces"
	"github.com/sstlab/vigia/pkg/repository/firestore"
	"github.com/sstlab/vigia/pkg/repository/memory"
)

func newMemoryRepo(t *testing.T) interfaces.Repository {
	t.Helper()
	return memory.New()
}

func newFirestoreRepo(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("FIRESTORE_PROJECT_ID not set")
	}
	databaseID := os.Getenv("FIRESTORE_DATABASE_ID")

	repo, err := firestore.New(context.Background(), projectID, databaseID,
		firestore.WithCollectionPrefix(fmt.Sprintf("test_%d", time.Now().UnixNano())))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}
