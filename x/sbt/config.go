package sbt

import (
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
	"github.com/zeroid/zid/gconf"
)

const packageName = "sbt"

// Configuration holds the limits of the ledger that can be tuned in the
// genesis file.
type Configuration struct {
	// MaxMetadataURILength lowers the longest accepted metadata reference.
	// It cannot exceed MaxMetadataURILength.
	MaxMetadataURILength uint32 `json:"max_metadata_uri_length"`
}

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Marshal() ([]byte, error) {
	return zid.Marshal(c)
}

func (c *Configuration) Unmarshal(bz []byte) error {
	return zid.Unmarshal(bz, c)
}

func (c *Configuration) Validate() error {
	if c.MaxMetadataURILength == 0 || c.MaxMetadataURILength > MaxMetadataURILength {
		return errors.Field("MaxMetadataURILength", errors.ErrInput,
			"must be between 1 and %d", MaxMetadataURILength)
	}
	return nil
}

// DefaultConfiguration is used when the genesis does not configure the
// ledger.
func DefaultConfiguration() Configuration {
	return Configuration{MaxMetadataURILength: MaxMetadataURILength}
}

// loadConfiguration returns the stored configuration or the default one.
func loadConfiguration(db zid.ReadOnlyKVStore) (Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, packageName, &conf); {
	case err == nil:
		return conf, nil
	case errors.ErrNotFound.Is(err):
		return DefaultConfiguration(), nil
	default:
		return conf, errors.Wrap(err, "load configuration")
	}
}
