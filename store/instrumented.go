// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/danielhkuo/food-selector/metrics"
)

// Instrumented counts Get and Set outcomes of the wrapped store.
type Instrumented struct {
	Store
}

func NewInstrumented(s Store) *Instrumented {
	return &Instrumented{Store: s}
}

func (i *Instrumented) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := i.Store.Get(ctx, key)
	metrics.StoreOperations.WithLabelValues("get", outcome(err)).Inc()
	return b, err
}

func (i *Instrumented) Set(ctx context.Context, key string, value []byte) error {
	err := i.Store.Set(ctx, key, value)
	metrics.StoreOperations.WithLabelValues("set", outcome(err)).Inc()
	return err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}
