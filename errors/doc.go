/*
Package errors implements the error handling of zid.

Every error returned by the framework or by an extension is expected to wrap
one of the root errors created with Register. A root error carries an ABCI
code, which is what a client receives when a transaction is rejected. Any
error that does not wrap a root error is considered internal and its message
is hidden from the client unless the node is running in debug mode.

Create a new error instance with ErrXyz.New("...") or Wrap(err, "...") at the
point of failure so that a stack trace is attached. Only the innermost wrap
records the stack trace.

Test an error kind with the Is method of the root error:

	if ErrNotFound.Is(err) { ... }

Formatting with %+v prints the full stack trace.
*/
package errors
