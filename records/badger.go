package records

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	bestTimeKey   = []byte("best/time")
	resultsPrefix = []byte("result/")
	resultSeqKey  = []byte("seq/result")
)

// resultSeqBandwidth is how many sequence numbers are leased per disk write
const resultSeqBandwidth = 16

// BadgerStore keeps records in an embedded badger database. Result keys carry
// a big-endian save sequence, so key order is save order.
type BadgerStore struct {
	db  *badger.DB
	seq *badger.Sequence
}

// OpenBadger opens (or creates) a database at dir. An empty dir keeps the
// database in memory.
func OpenBadger(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}
	seq, err := db.GetSequence(resultSeqKey, resultSeqBandwidth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("lease result sequence: %w", err)
	}
	return &BadgerStore{db: db, seq: seq}, nil
}

func (b *BadgerStore) BestTime() (float64, bool, error) {
	var best float64
	found := false

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(bestTimeKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return msgpack.Unmarshal(val, &best)
		})
	})
	if err != nil {
		return 0, false, fmt.Errorf("failed to get best time: %w", err)
	}
	return best, found, nil
}

func (b *BadgerStore) SetBestTime(seconds float64) error {
	buf, err := msgpack.Marshal(seconds)
	if err != nil {
		return fmt.Errorf("failed to marshal best time: %w", err)
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(bestTimeKey, buf)
	})
}

// resultKey is the prefix, the big-endian sequence, then the result id.
func resultKey(seq uint64, id string) []byte {
	key := make([]byte, 0, len(resultsPrefix)+8+len(id))
	key = append(key, resultsPrefix...)
	key = binary.BigEndian.AppendUint64(key, seq)
	return append(key, id...)
}

func (b *BadgerStore) SaveResult(r Result) error {
	buf, err := msgpack.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	n, err := b.seq.Next()
	if err != nil {
		return fmt.Errorf("failed to number result: %w", err)
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(resultKey(n, r.ID), buf)
	})
}

func (b *BadgerStore) Results(limit int) ([]Result, error) {
	var results []Result

	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(resultsPrefix); it.ValidForPrefix(resultsPrefix); it.Next() {
			var r Result
			if err := it.Item().Value(func(val []byte) error {
				return msgpack.Unmarshal(val, &r)
			}); err != nil {
				return err
			}
			results = append(results, r)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get results list: %w", err)
	}

	return newestFirst(results, limit), nil
}

// Close compacts and closes the database.
func (b *BadgerStore) Close() error {
	if err := b.seq.Release(); err != nil {
		log.Debug().Err(err).Msg("release result sequence")
	}
	if err := b.db.RunValueLogGC(0.5); err != nil && !errors.Is(err, badger.ErrNoRewrite) {
		log.Debug().Err(err).Msg("run value log gc")
	}
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("failed to close badger db: %w", err)
	}
	return nil
}
