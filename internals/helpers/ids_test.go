package helper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateErr(t *testing.T) {
	assert.False(t, IsDuplicateErr(nil))
	assert.False(t, IsDuplicateErr(errors.New("connection refused")))
	assert.True(t, IsDuplicateErr(errors.New(`ERROR: duplicate key value violates unique constraint "uq_subject_name_per_class" (SQLSTATE 23505)`)))
	assert.True(t, IsDuplicateErr(errors.New("pq: duplicate key value")))
}
