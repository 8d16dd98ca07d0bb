package orm

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Model is implemented by any entity that can be stored using a ModelBucket.
type Model interface {
	zid.Persistent
	Validate() error
}

// ModelBucket stores models of one type under a common key prefix.
type ModelBucket struct {
	name   string
	prefix []byte
	model  reflect.Type
}

// NewModelBucket returns a bucket that stores instances of the prototype's
// type. It panics if the name is not a valid bucket name.
func NewModelBucket(name string, prototype Model) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket: %s", name))
	}
	t := reflect.TypeOf(prototype)
	if t.Kind() != reflect.Ptr {
		panic(fmt.Sprintf("model prototype must be a pointer, got %T", prototype))
	}
	return ModelBucket{
		name:   name,
		prefix: []byte(name + ":"),
		model:  t.Elem(),
	}
}

// Name returns the name of the bucket.
func (b ModelBucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including the prefix.
func (b ModelBucket) DBKey(key []byte) []byte {
	return append(append([]byte{}, b.prefix...), key...)
}

// Has returns true if an entity with given key exists.
func (b ModelBucket) Has(db zid.ReadOnlyKVStore, key []byte) (bool, error) {
	ok, err := db.Has(b.DBKey(key))
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return ok, nil
}

// One loads the entity with the given key into dest. It returns ErrNotFound
// if the entity does not exist and ErrType if dest is not of the bucket model
// type.
func (b ModelBucket) One(db zid.ReadOnlyKVStore, key []byte, dest Model) error {
	if reflect.TypeOf(dest) != reflect.PtrTo(b.model) {
		return errors.Wrapf(errors.ErrType, "%T cannot be loaded from %s bucket", dest, b.name)
	}
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "cannot load %T", dest)
	}
	return nil
}

// Put validates and saves the model under the given key, overwriting any
// existing value.
func (b ModelBucket) Put(db zid.KVStore, key []byte, m Model) error {
	if reflect.TypeOf(m) != reflect.PtrTo(b.model) {
		return errors.Wrapf(errors.ErrType, "%T cannot be stored in %s bucket", m, b.name)
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot serialize")
	}
	if err := db.Set(b.DBKey(key), raw); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Create is like Put, but fails with ErrDuplicate when the key is already
// taken. Use it for write-once records.
func (b ModelBucket) Create(db zid.KVStore, key []byte, m Model) error {
	switch exists, err := b.Has(db, key); {
	case err != nil:
		return err
	case exists:
		return errors.Wrapf(errors.ErrDuplicate, "%s key %X", b.name, key)
	}
	return b.Put(db, key, m)
}

// Delete removes the entity with the given key. It returns ErrNotFound if it
// does not exist.
func (b ModelBucket) Delete(db zid.KVStore, key []byte) error {
	switch exists, err := b.Has(db, key); {
	case err != nil:
		return err
	case !exists:
		return errors.Wrapf(errors.ErrNotFound, "%s key %X", b.name, key)
	}
	if err := db.Delete(b.DBKey(key)); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Register adds a key query handler for this bucket under /<path>.
func (b ModelBucket) Register(path string, r zid.QueryRouter) {
	r.Register("/"+path, b)
}

// Query implements zid.QueryHandler. Only key queries are supported. A
// missing key results in an empty result set.
func (b ModelBucket) Query(db zid.ReadOnlyKVStore, mod string, data []byte) ([]zid.Model, error) {
	if mod != zid.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod %q", mod)
	}
	key := b.DBKey(data)
	value, err := db.Get(key)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if value == nil {
		return nil, nil
	}
	return []zid.Model{zid.Pair(key, value)}, nil
}
