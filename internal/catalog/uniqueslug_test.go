package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlugChecker struct {
	taken map[string]string // slug -> owner id
	err   error
	calls int
}

func (c *fakeSlugChecker) SlugTaken(ctx context.Context, slug, excludeID string) (bool, error) {
	c.calls++
	if c.err != nil {
		return false, c.err
	}
	owner, ok := c.taken[slug]
	if !ok {
		return false, nil
	}
	return owner != excludeID || excludeID == "", nil
}

func TestEnsureUniqueSlugNoCollision(t *testing.T) {
	c := &fakeSlugChecker{taken: map[string]string{}}
	got, err := EnsureUniqueSlug(context.Background(), c, "gongura-pickle", "")
	require.NoError(t, err)
	assert.Equal(t, "gongura-pickle", got)
	assert.Equal(t, 1, c.calls)
}

func TestEnsureUniqueSlugSuffixes(t *testing.T) {
	c := &fakeSlugChecker{taken: map[string]string{
		"mango-pickle":   "p1",
		"mango-pickle-1": "p2",
	}}
	got, err := EnsureUniqueSlug(context.Background(), c, "mango-pickle", "")
	require.NoError(t, err)
	assert.Equal(t, "mango-pickle-2", got)
}

func TestEnsureUniqueSlugExcludesSelf(t *testing.T) {
	c := &fakeSlugChecker{taken: map[string]string{"mango-pickle": "p1"}}
	got, err := EnsureUniqueSlug(context.Background(), c, "mango-pickle", "p1")
	require.NoError(t, err)
	assert.Equal(t, "mango-pickle", got)
}

func TestEnsureUniqueSlugFailsClosed(t *testing.T) {
	c := &fakeSlugChecker{err: errors.New("connection reset")}
	_, err := EnsureUniqueSlug(context.Background(), c, "mango-pickle", "")
	require.Error(t, err)
}
