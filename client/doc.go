/*
Package client provides read and write access to a running zid node over
the tendermint RPC interface.

Reads go through ABCI queries and decode the returned result sets into
ledger types. Writes are signed transactions broadcast with
BroadcastTxCommit, so a call returns once the transaction is in a block.
*/
package client
