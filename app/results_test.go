package app

import (
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultSetKeepsEmptyValues(t *testing.T) {
	models := []tokenswap.Model{
		tokenswap.Pair([]byte("a"), []byte("1")),
		tokenswap.Pair([]byte("b"), nil),
		tokenswap.Pair([]byte("c"), []byte("3")),
	}
	keys, err := ResultsFromKeys(models).Marshal()
	require.NoError(t, err)
	values, err := ResultsFromValues(models).Marshal()
	require.NoError(t, err)

	var k, v ResultSet
	require.NoError(t, k.Unmarshal(keys))
	require.NoError(t, v.Unmarshal(values))
	got, err := JoinResults(&k, &v)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []byte("c"), got[2].Key)
	assert.Empty(t, got[1].Value)

	_, err = JoinResults(&k, &ResultSet{})
	assert.Error(t, err)
}
