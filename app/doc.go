/*
Package app contains the ABCI application plumbing: the router dispatching
messages to handlers, the decorator chain, the commit store managing check
and deliver state, and the StoreApp and BaseApp types implementing
abci.Application.
*/
package app
