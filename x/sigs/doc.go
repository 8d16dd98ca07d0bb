/*
Package sigs provides the authentication middleware that verifies the
signatures on a transaction and maintains a nonce per signer for replay
protection. Verified signers are made available to handlers through the
Authenticate type.
*/
package sigs
