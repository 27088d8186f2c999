package ldb

import (
	"bytes"
	"testing"

	"github.com/kaspanet/forkledger/infrastructure/db/database"
)

func prepareDatabaseForTest(t *testing.T) (ldb *LevelDB, teardownFunc func()) {
	ldb, err := NewLevelDB(t.TempDir(), 8)
	if err != nil {
		t.Fatalf("NewLevelDB unexpectedly failed: %s", err)
	}
	teardownFunc = func() {
		err = ldb.Close()
		if err != nil {
			t.Fatalf("Close unexpectedly failed: %s", err)
		}
	}
	return ldb, teardownFunc
}

func TestLevelDBSanity(t *testing.T) {
	ldb, teardownFunc := prepareDatabaseForTest(t)
	defer teardownFunc()

	key := database.MakeBucket([]byte("bucket")).Key([]byte("key"))
	_, err := ldb.Get(key)
	if !database.IsNotFoundError(err) {
		t.Fatalf("Get: expected ErrNotFound, got: %+v", err)
	}

	err = ldb.Put(key, []byte("value"))
	if err != nil {
		t.Fatalf("Put: %+v", err)
	}
	exists, err := ldb.Has(key)
	if err != nil || !exists {
		t.Fatalf("Has: expected the key to exist, got %t, %+v", exists, err)
	}
	value, err := ldb.Get(key)
	if err != nil || !bytes.Equal(value, []byte("value")) {
		t.Fatalf("Get: unexpected value %q, %+v", value, err)
	}

	err = ldb.Delete(key)
	if err != nil {
		t.Fatalf("Delete: %+v", err)
	}
	exists, err = ldb.Has(key)
	if err != nil || exists {
		t.Fatalf("Has: expected the key to be deleted, got %t, %+v", exists, err)
	}
}

// TestCursorStaysInBucket verifies that a cursor only visits the keys of its
// own bucket, in key order, and returns suffixes without the bucket prefix.
func TestCursorStaysInBucket(t *testing.T) {
	ldb, teardownFunc := prepareDatabaseForTest(t)
	defer teardownFunc()

	bucket := database.MakeBucket([]byte("blocks"))
	otherBucket := database.MakeBucket([]byte("blocksother"))
	for _, suffix := range []string{"c", "a", "b"} {
		err := ldb.Put(bucket.Key([]byte(suffix)), []byte("value-"+suffix))
		if err != nil {
			t.Fatalf("Put: %+v", err)
		}
	}
	err := ldb.Put(otherBucket.Key([]byte("a")), []byte("other"))
	if err != nil {
		t.Fatalf("Put: %+v", err)
	}

	cursor, err := ldb.Cursor(bucket)
	if err != nil {
		t.Fatalf("Cursor: %+v", err)
	}
	var visited []string
	for ok := cursor.First(); ok; ok = cursor.Next() {
		key, err := cursor.Key()
		if err != nil {
			t.Fatalf("Key: %+v", err)
		}
		value, err := cursor.Value()
		if err != nil {
			t.Fatalf("Value: %+v", err)
		}
		if string(value) != "value-"+string(key.Suffix()) {
			t.Fatalf("unexpected value %q for key %q", value, key.Suffix())
		}
		visited = append(visited, string(key.Suffix()))
	}
	if len(visited) != 3 || visited[0] != "a" || visited[1] != "b" || visited[2] != "c" {
		t.Fatalf("unexpected cursor order %v", visited)
	}

	err = cursor.Seek(bucket.Key([]byte("bb")))
	if err != nil {
		t.Fatalf("Seek: %+v", err)
	}
	key, err := cursor.Key()
	if err != nil || string(key.Suffix()) != "c" {
		t.Fatalf("Seek landed on the wrong key %v, %+v", key, err)
	}

	err = cursor.Close()
	if err != nil {
		t.Fatalf("Close: %+v", err)
	}
	if cursor.Next() {
		t.Fatalf("Next succeeded on a closed cursor")
	}
	if _, err := cursor.Key(); err == nil {
		t.Fatalf("Key succeeded on a closed cursor")
	}
	if cursor.Close() == nil {
		t.Fatalf("a second Close succeeded")
	}
}
