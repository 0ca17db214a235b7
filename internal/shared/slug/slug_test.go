package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips punctuation", "Red Chilli Podi!!", "red-chilli-podi"},
		{"collapses spaces and hyphens", "  Multiple   Spaces -- here ", "multiple-spaces-here"},
		{"lowercases", "Mango Pickle", "mango-pickle"},
		{"keeps digits", "Karam Podi 250g", "karam-podi-250g"},
		{"empty input", "", ""},
		{"only punctuation", "!!!", ""},
		{"leading and trailing hyphens trimmed", "-hello-", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{"Red Chilli Podi!!", "  Multiple   Spaces -- here ", "Sweet & Hot Avakaya"}
	for _, in := range inputs {
		once := Make(in)
		assert.Equal(t, once, Make(once))
	}
}
