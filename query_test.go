package tokenswap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticQuery []Model

func (s staticQuery) Query(ReadOnlyKVStore, []byte) ([]Model, error) {
	return s, nil
}

func TestQueryRouter(t *testing.T) {
	r := NewQueryRouter()
	r.RegisterAll(
		func(qr QueryRouter) { qr.Register("/b", staticQuery{Pair([]byte("b"), nil)}) },
		func(qr QueryRouter) { qr.Register("/a", staticQuery{}) },
	)

	assert.Equal(t, []string{"/a", "/b"}, r.Paths())
	assert.Nil(t, r.Handler("/missing"))

	models, err := r.Handler("/b").Query(nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, []Model{Pair([]byte("b"), nil)}, models)

	assert.Panics(t, func() { r.Register("/a", staticQuery{}) })
	assert.Panics(t, func() { r.Register("relative", staticQuery{}) })
}
