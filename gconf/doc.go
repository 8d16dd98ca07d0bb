/*
Package gconf implements a configuration store intended to be used as a
global, in-database configuration.

Each extension owns a single configuration object, stored under the
"_c:<package>" key. It is loaded from the "conf" section of the genesis file:

	"conf": {
		"sbt": {"max_metadata_uri_length": 512}
	}

and read back by the extension whenever it needs it.
*/
package gconf
