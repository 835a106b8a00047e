package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDSetAddIsIdempotent(t *testing.T) {
	s := NewIDSet()

	assert.True(t, s.Add("1"))
	assert.False(t, s.Add("1"))
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Has("1"))
}

func TestIDSetZeroValueUsable(t *testing.T) {
	var s IDSet

	assert.False(t, s.Has("1"))
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.Add("1"))
	assert.True(t, s.Has("1"))
}

func TestIDSetJSONSortsAndDedupes(t *testing.T) {
	data, err := json.Marshal(NewIDSet("b", "a", "c"))
	assert.NoError(t, err)
	assert.JSONEq(t, `["a","b","c"]`, string(data))

	var s IDSet
	assert.NoError(t, json.Unmarshal([]byte(`["x","y","x"]`), &s))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"x", "y"}, s.Values())
}

func TestIDSetEmptyMarshalsAsArray(t *testing.T) {
	data, err := json.Marshal(NewIDSet())
	assert.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestIDSetCloneIsIndependent(t *testing.T) {
	s := NewIDSet("1")
	c := s.Clone()
	c.Add("2")

	assert.False(t, s.Has("2"))
	assert.True(t, c.Has("2"))
}

func TestIDSetEqual(t *testing.T) {
	assert.True(t, NewIDSet("a", "b").Equal(NewIDSet("b", "a")))
	assert.False(t, NewIDSet("a").Equal(NewIDSet("a", "b")))
}
