/*
Package zid defines the common interfaces that tie the ledger application
together, plus the small shared types (conditions, addresses, results)
that every extension uses.

A transaction enters through the ABCI application, is decoded into a Tx,
passes a chain of Decorators (logging, recovery, signature verification,
savepoint) and is finally routed by the path of its message to a Handler.
Handlers read and write state only through the KVStore they are given.

Data that lives for the duration of a block or a call is passed through the
context. For every value of type T there is a pair of functions

  WithXYZ(Context, T) Context
  GetXYZ(Context) (T, ...)

WithXYZ panics when the value is already set, so that lower level code
cannot overwrite what the application layer has established (height,
chain id, block time).
*/
package zid
