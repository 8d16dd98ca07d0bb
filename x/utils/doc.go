/*
Package utils contains the generic decorators every application stack
needs: logging, panic recovery, savepoints that roll back failed messages
and prometheus metrics.
*/
package utils
