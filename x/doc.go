/*
Package x contains the helpers shared by all extensions. Each subpackage of
x is an extension that registers handlers, queries and genesis
initializers with the application.
*/
package x
