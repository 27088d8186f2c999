package blockarchive

import (
	"encoding/binary"
	"sync"

	"github.com/kaspanet/forkledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/forkledger/domain/consensus/utils/serialization"
	"github.com/kaspanet/forkledger/infrastructure/db/database"
	"github.com/pkg/errors"
)

var blocksBucket = database.MakeBucket([]byte("accepted-blocks"))

// Archive persists accepted blocks in acceptance order, so that replaying
// them through consensus rebuilds the same in-memory state
type Archive struct {
	mtx          sync.Mutex
	db           database.Database
	nextSequence uint64
}

// New opens an archive over db, resuming after the last stored block
func New(db database.Database) (*Archive, error) {
	archive := &Archive{db: db}
	count, err := archive.countStored()
	if err != nil {
		return nil, err
	}
	archive.nextSequence = count
	log.Infof("Opened block archive with %d blocks", count)
	return archive, nil
}

func sequenceKey(sequence uint64) *database.Key {
	var suffix [8]byte
	binary.BigEndian.PutUint64(suffix[:], sequence)
	return blocksBucket.Key(suffix[:])
}

// Store appends block to the archive
func (a *Archive) Store(block *externalapi.DomainBlock) error {
	serializedBlock, err := serialization.SerializeBlock(block)
	if err != nil {
		return err
	}

	a.mtx.Lock()
	defer a.mtx.Unlock()

	err = a.db.Put(sequenceKey(a.nextSequence), serializedBlock)
	if err != nil {
		return err
	}
	a.nextSequence++
	return nil
}

// Count returns the number of archived blocks
func (a *Archive) Count() uint64 {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	return a.nextSequence
}

// ForEach calls fn with every archived block in the order they were stored,
// stopping at the first error
func (a *Archive) ForEach(fn func(block *externalapi.DomainBlock) error) error {
	cursor, err := a.db.Cursor(blocksBucket)
	if err != nil {
		return err
	}
	defer cursor.Close()

	for ok := cursor.First(); ok; ok = cursor.Next() {
		key, err := cursor.Key()
		if err != nil {
			return err
		}
		serializedBlock, err := cursor.Value()
		if err != nil {
			return err
		}
		block, err := serialization.DeserializeBlock(serializedBlock)
		if err != nil {
			return errors.Wrapf(err, "archived block %s is corrupted", key)
		}
		err = fn(block)
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *Archive) countStored() (uint64, error) {
	cursor, err := a.db.Cursor(blocksBucket)
	if err != nil {
		return 0, err
	}
	defer cursor.Close()

	count := uint64(0)
	for ok := cursor.First(); ok; ok = cursor.Next() {
		count++
	}
	return count, nil
}
