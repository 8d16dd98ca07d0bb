/*
Package orm provides typed, prefixed access to the key value store.

A ModelBucket stores models of a single type under keys prefixed with the
bucket name, so that different extensions never collide. A Sequence keeps a
monotonic counter in the store.
*/
package orm
