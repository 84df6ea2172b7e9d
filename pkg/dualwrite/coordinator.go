package dualwrite

import (
	"context"
	"log"

	"github.com/google/uuid"
)

// Kind names a secondary-store collection.
type Kind string

const (
	KindTaste      Kind = "tastes"
	KindCollection Kind = "collections"
	KindLike       Kind = "likes"
)

type (
	// SecondaryStore is the document store written alongside the primary
	// database. It is write-only replication, never queried for reads.
	SecondaryStore interface {
		Insert(ctx context.Context, kind Kind, doc map[string]interface{}) (string, error)
		Update(ctx context.Context, kind Kind, id string, fields map[string]interface{}) error
		SoftDelete(ctx context.Context, kind Kind, id string) error
		Restore(ctx context.Context, kind Kind, id string) error
	}

	// Coordinator writes the secondary store first so it can mint the
	// canonical id, then hands that id back for the primary insert. A
	// secondary failure is logged and recovered with a locally generated
	// id; it never fails the primary operation.
	Coordinator interface {
		Write(ctx context.Context, kind Kind, doc map[string]interface{}) (string, *string)
		Update(ctx context.Context, kind Kind, id string, fields map[string]interface{})
		Remove(ctx context.Context, kind Kind, id string)
		Restore(ctx context.Context, kind Kind, id string)
	}

	coordinator struct {
		store SecondaryStore // nil when dual write is disabled
	}
)

func NewCoordinator(store SecondaryStore) Coordinator {
	return &coordinator{store: store}
}

func (c *coordinator) Write(ctx context.Context, kind Kind, doc map[string]interface{}) (string, *string) {
	if c.store == nil {
		return uuid.New().String(), nil
	}

	id, err := c.store.Insert(ctx, kind, doc)
	if err != nil {
		log.Printf("secondary store insert failed for %s: %v", kind, err)
		return uuid.New().String(), nil
	}
	return id, &id
}

func (c *coordinator) Update(ctx context.Context, kind Kind, id string, fields map[string]interface{}) {
	if c.store == nil {
		return
	}
	if err := c.store.Update(ctx, kind, id, fields); err != nil {
		log.Printf("secondary store update failed for %s/%s: %v", kind, id, err)
	}
}

func (c *coordinator) Remove(ctx context.Context, kind Kind, id string) {
	if c.store == nil {
		return
	}
	if err := c.store.SoftDelete(ctx, kind, id); err != nil {
		log.Printf("secondary store delete failed for %s/%s: %v", kind, id, err)
	}
}

func (c *coordinator) Restore(ctx context.Context, kind Kind, id string) {
	if c.store == nil {
		return
	}
	if err := c.store.Restore(ctx, kind, id); err != nil {
		log.Printf("secondary store restore failed for %s/%s: %v", kind, id, err)
	}
}
