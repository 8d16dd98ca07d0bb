/*
Package store provides the key value store layers used by the application.

BTreeCacheWrap keeps uncommitted writes in memory on top of a backing store.
Wraps can be nested, which is how a single message gets its own savepoint
inside the block state. MemStore is an in-memory store for tests, and the
iavl subpackage provides the persistent merkle tree store used by a node.
*/
package store
