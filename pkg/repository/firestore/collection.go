package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sstlab/vigia/pkg/domain/interfaces"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// hooks adapts one entity type to the generic collection. stamp receives the
// previous record on update and nil on create.
type hooks[T any] struct {
	clone func(*T) *T
	id    func(*T) int64
	setID func(*T, int64)
	stamp func(v, prev *T, now time.Time)
}

// collection persists one entity type in a Firestore collection, with
// auto-increment int64 IDs allocated through a counter document.
type collection[T any] struct {
	client *firestore.Client
	name   string
	prefix string
	h      hooks[T]
}

func newCollection[T any](client *firestore.Client, name string, h hooks[T]) *collection[T] {
	return &collection[T]{
		client: client,
		name:   name,
		h:      h,
	}
}

func (c *collection[T]) colName() string {
	if c.prefix != "" {
		return c.prefix + "_" + c.name
	}
	return c.name
}

func (c *collection[T]) counterName() string {
	if c.prefix != "" {
		return c.prefix + "_counters"
	}
	return "counters"
}

func (c *collection[T]) nextID(ctx context.Context) (int64, error) {
	counterRef := c.client.Collection(c.counterName()).Doc(c.name + "_counter")

	var nextID int64
	err := c.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(counterRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				nextID = 1
				return tx.Set(counterRef, map[string]interface{}{
					"value": nextID,
				})
			}
			return goerr.Wrap(err, "failed to get counter")
		}

		currentValue, err := doc.DataAt("value")
		if err != nil {
			return goerr.Wrap(err, "failed to get counter value")
		}

		val, ok := currentValue.(int64)
		if !ok {
			return goerr.New("counter value is not of type int64", goerr.V("value", currentValue))
		}
		nextID = val + 1
		return tx.Update(counterRef, []firestore.Update{
			{Path: "value", Value: nextID},
		})
	})
	if err != nil {
		return 0, goerr.Wrap(err, "failed to allocate next ID", goerr.V("collection", c.colName()))
	}

	return nextID, nil
}

func (c *collection[T]) docID(id int64) string {
	return fmt.Sprintf("%d", id)
}

func (c *collection[T]) Create(ctx context.Context, v *T) (*T, error) {
	id, err := c.nextID(ctx)
	if err != nil {
		return nil, err
	}

	created := c.h.clone(v)
	c.h.setID(created, id)
	if c.h.stamp != nil {
		c.h.stamp(created, nil, time.Now().UTC())
	}

	if _, err := c.client.Collection(c.colName()).Doc(c.docID(id)).Set(ctx, created); err != nil {
		return nil, goerr.Wrap(err, "failed to create record",
			goerr.V("collection", c.colName()), goerr.V("id", id))
	}

	return created, nil
}

func (c *collection[T]) Get(ctx context.Context, id int64) (*T, error) {
	snap, err := c.client.Collection(c.colName()).Doc(c.docID(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "record not found",
				goerr.V("collection", c.colName()), goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get record",
			goerr.V("collection", c.colName()), goerr.V("id", id))
	}

	var v T
	if err := snap.DataTo(&v); err != nil {
		return nil, goerr.Wrap(err, "failed to decode record",
			goerr.V("collection", c.colName()), goerr.V("id", id))
	}
	return &v, nil
}

func (c *collection[T]) List(ctx context.Context) ([]*T, error) {
	return c.query(ctx, c.client.Collection(c.colName()).Query)
}

func (c *collection[T]) Update(ctx context.Context, v *T) (*T, error) {
	prev, err := c.Get(ctx, c.h.id(v))
	if err != nil {
		return nil, err
	}

	updated := c.h.clone(v)
	if c.h.stamp != nil {
		c.h.stamp(updated, prev, time.Now().UTC())
	}

	if _, err := c.client.Collection(c.colName()).Doc(c.docID(c.h.id(updated))).Set(ctx, updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update record",
			goerr.V("collection", c.colName()), goerr.V("id", c.h.id(updated)))
	}
	return updated, nil
}

func (c *collection[T]) Delete(ctx context.Context, id int64) error {
	if _, err := c.Get(ctx, id); err != nil {
		return err
	}

	if _, err := c.client.Collection(c.colName()).Doc(c.docID(id)).Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete record",
			goerr.V("collection", c.colName()), goerr.V("id", id))
	}
	return nil
}

// query runs a Firestore query over the collection and decodes all documents
func (c *collection[T]) query(ctx context.Context, q firestore.Query) ([]*T, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	out := []*T{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate records",
				goerr.V("collection", c.colName()))
		}

		var v T
		if err := snap.DataTo(&v); err != nil {
			return nil, goerr.Wrap(err, "failed to decode record",
				goerr.V("collection", c.colName()))
		}
		out = append(out, &v)
	}
	return out, nil
}

// listWhere runs an equality-filtered query over the collection
func (c *collection[T]) listWhere(ctx context.Context, path string, value interface{}) ([]*T, error) {
	return c.query(ctx, c.client.Collection(c.colName()).Where(path, "==", value))
}

// deleteWhere removes every document matching the equality filter
func (c *collection[T]) deleteWhere(ctx context.Context, path string, value interface{}) error {
	iter := c.client.Collection(c.colName()).Where(path, "==", value).Documents(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate records for deletion",
				goerr.V("collection", c.colName()))
		}
		if _, err := snap.Ref.Delete(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete record",
				goerr.V("collection", c.colName()), goerr.V("doc", snap.Ref.ID))
		}
	}
	return nil
}
