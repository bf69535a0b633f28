package fulfillment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKnownCode(t *testing.T) {
	links := Resolve("design-snowman")
	assert.NotEmpty(t, links)
	for _, link := range links {
		assert.Contains(t, link, "downloads.christmasfun.store")
	}
}

func TestResolveUnknownCodeIsEmptyNotError(t *testing.T) {
	assert.Empty(t, Resolve("design-does-not-exist"))
}

func TestMissingFromFlagsDrift(t *testing.T) {
	missing := MissingFrom([]string{"design-snowman", "design-new-2026", "bundle-complete"})
	assert.Equal(t, []string{"design-new-2026"}, missing)
}

func TestMissingFromAllPresent(t *testing.T) {
	assert.Empty(t, MissingFrom([]string{"design-snowman", "note-santa-1"}))
}
