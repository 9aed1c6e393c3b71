package helper

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchDoc struct {
	Name     PatchField[string]  `json:"name"`
	Capacity PatchField[int]     `json:"capacity"`
	Score    PatchField[float64] `json:"score"`
}

func TestPatchFieldStates(t *testing.T) {
	var doc patchDoc
	require.NoError(t, sonic.Unmarshal([]byte(`{"name":"1-A","capacity":null}`), &doc))

	v, present := doc.Name.Get()
	assert.True(t, present)
	require.NotNil(t, v)
	assert.Equal(t, "1-A", *v)

	v2, present := doc.Capacity.Get()
	assert.True(t, present)
	assert.Nil(t, v2)

	_, present = doc.Score.Get()
	assert.False(t, present)
}

func TestPatchFieldApply(t *testing.T) {
	var doc patchDoc
	require.NoError(t, sonic.Unmarshal([]byte(`{"name":"2-B","capacity":null}`), &doc))

	name := "1-A"
	capacity := 30
	score := 88.5

	doc.Name.Apply(&name)
	doc.Capacity.Apply(&capacity)
	doc.Score.Apply(&score)

	assert.Equal(t, "2-B", name)
	assert.Equal(t, 30, capacity, "explicit null must not overwrite")
	assert.Equal(t, 88.5, score, "absent field must not overwrite")
}

func TestPatchFieldRejectsWrongType(t *testing.T) {
	var doc patchDoc
	assert.Error(t, sonic.Unmarshal([]byte(`{"capacity":"thirty"}`), &doc))
}
