// Package zidtest provides mocks and helpers for testing handlers and
// decorators without a running node.
package zidtest
