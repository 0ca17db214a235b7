package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderWriter struct {
	applied []OrderUpdate
	failAt  int // 1-based call number that fails; 0 never fails
	calls   int
}

func (w *fakeOrderWriter) SetOrder(ctx context.Context, id string, position int) error {
	w.calls++
	if w.failAt > 0 && w.calls == w.failAt {
		return errors.New("update failed")
	}
	w.applied = append(w.applied, OrderUpdate{ID: id, Position: position})
	return nil
}

func TestApplyDrop(t *testing.T) {
	tests := []struct {
		name     string
		in       []string
		src, dst int
		want     []string
	}{
		{"drag up onto first", []string{"a", "b", "c", "d", "e"}, 3, 0, []string{"d", "a", "b", "c", "e"}},
		{"drag down", []string{"a", "b", "c", "d", "e"}, 0, 3, []string{"b", "c", "d", "a", "e"}},
		{"adjacent swap down", []string{"a", "b"}, 0, 1, []string{"b", "a"}},
		{"same index is a no-op", []string{"a", "b", "c"}, 1, 1, []string{"a", "b", "c"}},
		{"out of range is a no-op", []string{"a", "b"}, 5, 0, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyDrop(tt.in, tt.src, tt.dst))
		})
	}
}

func TestApplyDropDoesNotMutateInput(t *testing.T) {
	in := []string{"a", "b", "c"}
	_ = ApplyDrop(in, 2, 0)
	assert.Equal(t, []string{"a", "b", "c"}, in)
}

func TestUpdatesRelabelsDense(t *testing.T) {
	got := Updates([]string{"d", "a", "b", "c", "e"})
	want := []OrderUpdate{
		{ID: "d", Position: 1},
		{ID: "a", Position: 2},
		{ID: "b", Position: 3},
		{ID: "c", Position: 4},
		{ID: "e", Position: 5},
	}
	assert.Equal(t, want, got)
}

func TestCommitOrderSequential(t *testing.T) {
	w := &fakeOrderWriter{}
	updates := Updates(ApplyDrop([]string{"a", "b", "c", "d", "e"}, 3, 0))
	err := CommitOrder(context.Background(), w, updates)
	require.NoError(t, err)
	assert.Equal(t, updates, w.applied)
}

func TestCommitOrderAbortsOnFailure(t *testing.T) {
	w := &fakeOrderWriter{failAt: 3}
	updates := Updates([]string{"a", "b", "c", "d", "e"})
	err := CommitOrder(context.Background(), w, updates)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position 3")

	// The first two writes stay applied, the 4th and 5th never happen.
	assert.Equal(t, []OrderUpdate{{ID: "a", Position: 1}, {ID: "b", Position: 2}}, w.applied)
	assert.Equal(t, 3, w.calls)
}
