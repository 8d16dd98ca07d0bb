package app

import (
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
)

// ResultSet holds a list of keys or values returned by a query.
type ResultSet struct {
	Results [][]byte
}

func (r *ResultSet) Marshal() ([]byte, error) {
	return zid.Marshal(r)
}

func (r *ResultSet) Unmarshal(bz []byte) error {
	return zid.Unmarshal(bz, r)
}

// ResultsFromKeys returns a ResultSet of all keys given a set of models.
func ResultsFromKeys(models []zid.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Key
	}
	return &ResultSet{Results: res}
}

// ResultsFromValues returns a ResultSet of all values given a set of models.
func ResultsFromValues(models []zid.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Value
	}
	return &ResultSet{Results: res}
}

// JoinResults inverts ResultsFromKeys and ResultsFromValues and makes them a
// consistent whole again.
func JoinResults(keys, values *ResultSet) ([]zid.Model, error) {
	kref, vref := keys.Results, values.Results
	if len(kref) != len(vref) {
		return nil, errors.Wrapf(errors.ErrState, "result set size mismatch: %d keys, %d values", len(kref), len(vref))
	}
	models := make([]zid.Model, len(kref))
	for i := range models {
		models[i] = zid.Pair(kref[i], vref[i])
	}
	return models, nil
}

// UnmarshalOneResult parses a result set and, if it is not empty, unmarshals
// the first result into o. It returns false if the set is empty.
func UnmarshalOneResult(bz []byte, o zid.Persistent) (bool, error) {
	var res ResultSet
	if err := res.Unmarshal(bz); err != nil {
		return false, err
	}
	if len(res.Results) == 0 {
		return false, nil
	}
	if err := o.Unmarshal(res.Results[0]); err != nil {
		return false, err
	}
	return true, nil
}
