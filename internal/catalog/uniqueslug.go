package catalog

import (
	"context"
	"fmt"
)

// SlugChecker reports whether a slug is already used by a different row.
type SlugChecker interface {
	SlugTaken(ctx context.Context, slug, excludeID string) (bool, error)
}

// EnsureUniqueSlug appends -1, -2, ... to base until no other row holds the
// candidate. excludeID keeps the row being edited out of the collision
// check. A checker error aborts the whole save; there is no fallback value.
func EnsureUniqueSlug(ctx context.Context, c SlugChecker, base, excludeID string) (string, error) {
	candidate := base
	for n := 1; ; n++ {
		taken, err := c.SlugTaken(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}
