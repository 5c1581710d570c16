//nolint
package store

import "github.com/iov-one/tokenswap"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = tokenswap.ReadOnlyKVStore
type SetDeleter = tokenswap.SetDeleter
type KVStore = tokenswap.KVStore
type Batch = tokenswap.Batch
type CacheableKVStore = tokenswap.CacheableKVStore
type KVCacheWrap = tokenswap.KVCacheWrap
type CommitKVStore = tokenswap.CommitKVStore
type CommitID = tokenswap.CommitID
type Model = tokenswap.Model
