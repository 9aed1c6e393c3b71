package helper

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestAddToSet(t *testing.T) {
	arr := pq.StringArray{"a", "b"}

	arr = AddToSet(arr, "c")
	assert.Equal(t, pq.StringArray{"a", "b", "c"}, arr)

	arr = AddToSet(arr, "b")
	assert.Equal(t, pq.StringArray{"a", "b", "c"}, arr, "existing id must not duplicate")

	assert.Equal(t, pq.StringArray{"x"}, AddToSet(nil, "x"))
}

func TestDedupeStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, DedupeStrings([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, DedupeStrings(nil))
}
