package zidtest

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/zeroid/zid"
	"github.com/zeroid/zid/store/iavl"
)

// CommitKVStore returns a store that is using the same filesystem backed
// engine as a running node. Call cleanup when done.
func CommitKVStore(t testing.TB) (db zid.CommitKVStore, cleanup func()) {
	t.Helper()

	dir, err := ioutil.TempDir("", "zidtest")
	if err != nil {
		t.Fatalf("cannot create a temporary directory: %s", err)
	}
	db, err = iavl.NewCommitStore(dir, "state")
	if err != nil {
		os.RemoveAll(dir)
		t.Fatalf("cannot create commit store: %s", err)
	}
	return db, func() { os.RemoveAll(dir) }
}
