// Package server implements the commands of a zid node binary: genesis
// initialization and validation, and serving the ABCI application.
package server
