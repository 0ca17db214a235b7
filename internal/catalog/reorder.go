package catalog

import (
	"context"
	"fmt"
)

// OrderWriter persists one row's position. Implementations decide which
// column that means: why-us features write feature_order, everything else
// writes display_order.
type OrderWriter interface {
	SetOrder(ctx context.Context, id string, position int) error
}

// OrderUpdate is one row's new 1-based position.
type OrderUpdate struct {
	ID       string
	Position int
}

// ApplyDrop repositions the item at src adjacent to the item at dst: below
// it when dragged downward, above it when dragged upward. Out-of-range or
// same-index drops return the input unchanged. The result is a new slice.
func ApplyDrop(ids []string, src, dst int) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	if src == dst || src < 0 || dst < 0 || src >= len(ids) || dst >= len(ids) {
		return out
	}
	moved := out[src]
	out = append(out[:src], out[src+1:]...)
	out = append(out[:dst], append([]string{moved}, out[dst:]...)...)
	return out
}

// Updates relabels an ordered id list with dense 1-based positions.
func Updates(ids []string) []OrderUpdate {
	out := make([]OrderUpdate, len(ids))
	for i, id := range ids {
		out[i] = OrderUpdate{ID: id, Position: i + 1}
	}
	return out
}

// CommitOrder writes the new positions one row at a time, strictly in
// sequence. The first failure aborts the remainder; rows already written
// stay written, the caller re-fetches from the database afterwards either
// way, so the authoritative order always comes from storage.
func CommitOrder(ctx context.Context, w OrderWriter, updates []OrderUpdate) error {
	for _, u := range updates {
		if err := w.SetOrder(ctx, u.ID, u.Position); err != nil {
			return fmt.Errorf("save order at position %d: %w", u.Position, err)
		}
	}
	return nil
}
