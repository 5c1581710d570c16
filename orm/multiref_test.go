package orm

import (
	"bytes"
	"testing"

	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/swaptest/assert"
)

func refs(keys ...string) [][]byte {
	out := make([][]byte, len(keys))
	for i, k := range keys {
		out[i] = []byte(k)
	}
	return out
}

func sorted(r [][]byte) bool {
	for i := 1; i < len(r); i++ {
		if bytes.Compare(r[i-1], r[i]) >= 0 {
			return false
		}
	}
	return true
}

func TestMultiRefAdd(t *testing.T) {
	m := new(MultiRef)
	for _, k := range refs("maker-c", "maker-a", "maker-b") {
		assert.Nil(t, m.Add(k))
	}
	assert.Equal(t, refs("maker-a", "maker-b", "maker-c"), m.GetRefs())

	assert.IsErr(t, errors.ErrDuplicate, m.Add([]byte("maker-b")))
	assert.Equal(t, 3, len(m.GetRefs()))
}

func TestMultiRefRemove(t *testing.T) {
	m, err := NewMultiRef(refs("escrow-2", "escrow-1", "escrow-3")...)
	assert.Nil(t, err)

	assert.Nil(t, m.Remove([]byte("escrow-2")))
	assert.Equal(t, refs("escrow-1", "escrow-3"), m.GetRefs())

	assert.IsErr(t, errors.ErrNotFound, m.Remove([]byte("escrow-2")))
	assert.Nil(t, m.Remove([]byte("escrow-1")))
	assert.Nil(t, m.Remove([]byte("escrow-3")))
	assert.Equal(t, 0, len(m.GetRefs()))
}

func TestMultiRefRejectsDuplicatesOnCreate(t *testing.T) {
	_, err := NewMultiRef(refs("a", "b", "a")...)
	if err == nil {
		t.Fatal("duplicate reference accepted")
	}
}

func TestMultiRefSerialization(t *testing.T) {
	m, err := NewMultiRef(refs("zeta", "alpha", "mid")...)
	assert.Nil(t, err)
	raw, err := m.Marshal()
	assert.Nil(t, err)

	var back MultiRef
	assert.Nil(t, back.Unmarshal(raw))
	assert.Equal(t, m.Refs, back.Refs)
	assert.Equal(t, true, sorted(back.Refs))
}
