package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"en", "de", "pt-BR"}, SplitList(" en, de,,pt-BR ,"))
	assert.Nil(t, SplitList(""))
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"en", "de"}, Unique([]string{"en", "de", "en"}))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab...", Truncate("abcdef", 2))
	assert.Equal(t, "a...", Truncate("aäb", 2))
	assert.Equal(t, "aä...", Truncate("aäb", 3))
	assert.Equal(t, "...", Truncate("日本", 2))
}
