/*
Package sbt implements issuer-gated, non-transferable attestation tokens.

A single issuer is registered once, either at genesis or with an
InitializeMsg. Only the issuer can mint. Every mint binds a recipient
address to a metadata URI under the next sequential token id, starting at
1. Token records are written once and never modified or removed. Anybody
can read them, and every transfer attempt is rejected.

Stored data:

  _sbt:issuer           the issuer address
  _s.sbttoken:id        number of minted tokens, 8 bytes big endian
  sbttoken:<id>         token record, id is 8 bytes big endian
  _c:sbt                optional Configuration, see package gconf
*/
package sbt
