package usecase

import (
	"context"
	"fmt"

	"github.com/xavierca1/cirkidz-admin/internal/infra/database"
)

// Transaction runs named operations against one staged copy of the store.
// Nothing is published unless every operation succeeds, so there is nothing
// to compensate.
type Transaction struct {
	store      Store
	operations []Operation
}

type Operation struct {
	Name string
	Fn   func(tx *database.Collections) error
}

func NewTransaction(store Store) *Transaction {
	return &Transaction{
		store:      store,
		operations: []Operation{},
	}
}

func (t *Transaction) AddOperation(name string, fn func(tx *database.Collections) error) {
	t.operations = append(t.operations, Operation{name, fn})
}

func (t *Transaction) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.store.Atomic(func(tx *database.Collections) error {
		for i, op := range t.operations {
			if err := op.Fn(tx); err != nil {
				return fmt.Errorf("operation '%s' failed: %w (discarded %d staged operations)", op.Name, err, i)
			}
		}
		return nil
	})
}
