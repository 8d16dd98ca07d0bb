package zid

import (
	"reflect"

	amino "github.com/tendermint/go-amino"
	"github.com/zeroid/zid/errors"
)

// codec serializes all models, messages and transactions. Only concrete
// types are encoded, so nothing has to be registered.
var codec = amino.NewCodec()

// Marshal serializes given structure using the binary encoding shared by all
// persisted and transmitted data.
func Marshal(o interface{}) ([]byte, error) {
	bz, err := codec.MarshalBinaryBare(o)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrType, "marshal %T: %s", o, err)
	}
	return bz, nil
}

// MustMarshal is like Marshal but panics on error. Only use with values that
// are known to serialize.
func MustMarshal(o interface{}) []byte {
	bz, err := Marshal(o)
	if err != nil {
		panic(err)
	}
	return bz
}

// Unmarshal is the reverse of Marshal. Destination must be a pointer. Empty
// input resets the destination to its zero value.
func Unmarshal(bz []byte, dest interface{}) error {
	if len(bz) == 0 {
		v := reflect.ValueOf(dest).Elem()
		v.Set(reflect.Zero(v.Type()))
		return nil
	}
	if err := codec.UnmarshalBinaryBare(bz, dest); err != nil {
		return errors.Wrapf(errors.ErrInput, "unmarshal %T: %s", dest, err)
	}
	return nil
}
