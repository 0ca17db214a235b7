package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooseEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"nil vs empty string", nil, "", true},
		{"empty string vs nil", "", nil, true},
		{"nil vs nil", nil, nil, true},
		{"nil vs value", nil, "x", false},
		{"number vs numeric string", float64(10), "10", true},
		{"numeric string vs number", "2.5", 2.5, true},
		{"different numbers", float64(10), float64(12), false},
		{"same strings", "podi", "podi", true},
		{"different strings", "podi", "pickle", false},
		{
			"maps regardless of key order",
			map[string]any{"a": float64(1), "b": float64(2)},
			map[string]any{"b": float64(2), "a": float64(1)},
			true,
		},
		{
			"map with extra empty key still equal",
			map[string]any{"a": float64(1)},
			map[string]any{"a": float64(1), "b": ""},
			true,
		},
		{
			"map with extra non-empty key",
			map[string]any{"a": float64(1)},
			map[string]any{"a": float64(1), "b": "x"},
			false,
		},
		{
			"slice vs map of indexes",
			[]any{float64(1), float64(2)},
			map[string]any{"0": float64(1), "1": float64(2)},
			false,
		},
		{"slice vs scalar", []any{float64(1)}, float64(1), false},
		{"map vs scalar", map[string]any{"a": float64(1)}, "a", false},
		{
			"equal slices",
			[]any{"a", float64(2)},
			[]any{"a", float64(2)},
			true,
		},
		{
			"slices of different length",
			[]any{"a", "b"},
			[]any{"a"},
			false,
		},
		{
			"nested maps",
			map[string]any{"nutrition": map[string]any{"protein": "12"}},
			map[string]any{"nutrition": map[string]any{"protein": float64(12)}},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LooseEqual(tt.a, tt.b))
		})
	}
}

func TestDescribeChangesNewItem(t *testing.T) {
	got := DescribeChanges(nil, map[string]any{"anything": 1})
	assert.Equal(t, []string{CreatedLabel}, got)
}

func TestDescribeChangesNoChanges(t *testing.T) {
	got := DescribeChanges(
		map[string]any{"price": float64(10)},
		map[string]any{"price": float64(10)},
	)
	assert.Equal(t, []string{NoChangesLabel}, got)
}

func TestDescribeChangesSingleField(t *testing.T) {
	got := DescribeChanges(
		map[string]any{"price": float64(10)},
		map[string]any{"price": float64(12)},
	)
	assert.Equal(t, []string{"Price"}, got)
}

func TestDescribeChangesLabels(t *testing.T) {
	got := DescribeChanges(
		map[string]any{"stock_count": float64(5), "displayOrder": float64(1), "name": "Karam Podi"},
		map[string]any{"stock_count": float64(7), "displayOrder": float64(2), "name": "Karam Podi"},
	)
	assert.Equal(t, []string{"Display order", "Stock count"}, got)
}

func TestDescribeChangesStringNumberRoundTrip(t *testing.T) {
	// A form submit turns numbers into strings; that is not a change.
	got := DescribeChanges(
		map[string]any{"price": float64(10), "mrp": float64(12)},
		map[string]any{"price": "10", "mrp": "12"},
	)
	assert.Equal(t, []string{NoChangesLabel}, got)
}

func TestSnapshot(t *testing.T) {
	type row struct {
		Name  string `json:"name"`
		Price int    `json:"price"`
	}
	snap := Snapshot(row{Name: "Avakaya", Price: 250})
	require.NotNil(t, snap)
	assert.Equal(t, "Avakaya", snap["name"])
	assert.Equal(t, float64(250), snap["price"])

	// Snapshot is an independent copy in loose map form.
	snap["name"] = "changed"
	again := Snapshot(row{Name: "Avakaya", Price: 250})
	assert.Equal(t, "Avakaya", again["name"])
}
