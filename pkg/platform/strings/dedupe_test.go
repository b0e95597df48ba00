package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	assert.Equal(t,
		[]string{"EU Organic", "FSC"},
		DedupeAndTrim([]string{"  EU Organic ", "FSC", "EU Organic", "", "  "}),
	)
	assert.Empty(t, DedupeAndTrim(nil))
}
