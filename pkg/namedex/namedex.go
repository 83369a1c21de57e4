// Package namedex maintains a persistent name lookup index over a symbol
// stream. Walking a large stream to find one symbol by name is linear; the
// index trades a one-time build for O(log n) lookups and prefix scans.
package namedex

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cockroachdb/pebble"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"

	"github.com/mkarlsen/cvsym/pkg/cvsym"
)

// Key layout:
//
//	n/<name>\x00<index be32>  ->  entry (kind u16 le, index u32 le)
//	m/build                   ->  ksuid of the last completed build
const (
	entryPrefix = "n/"
	metaBuild   = "m/build"
)

// Entry locates one named symbol in the stream.
type Entry struct {
	Index cvsym.SymbolIndex
	Kind  cvsym.SymbolKind
}

// Hit is a scan result: a name and one of its entries.
type Hit struct {
	Name  string
	Entry Entry
}

// BuildStats summarizes one index build.
type BuildStats struct {
	// BuildID identifies the build; it is persisted with the index.
	BuildID ksuid.KSUID
	// Symbols is the number of records walked.
	Symbols int
	// Named is the number of entries written.
	Named int
	// Skipped counts records that failed to decode, such as unknown kinds.
	Skipped int
}

// Index is a pebble-backed name index. It is safe for concurrent readers;
// Build must not run concurrently with other writers.
type Index struct {
	db *pebble.DB
}

// Open opens or creates an index database at path.
func Open(path string) (*Index, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrap(err, "opening name index")
	}
	return &Index{db: db}, nil
}

// Close closes the underlying database.
func (x *Index) Close() error {
	return x.db.Close()
}

func entryKey(name string, index cvsym.SymbolIndex) []byte {
	key := make([]byte, 0, len(entryPrefix)+len(name)+5)
	key = append(key, entryPrefix...)
	key = append(key, name...)
	key = append(key, 0)
	key = binary.BigEndian.AppendUint32(key, uint32(index))
	return key
}

func encodeEntry(e Entry) []byte {
	val := make([]byte, 6)
	binary.LittleEndian.PutUint16(val, uint16(e.Kind))
	binary.LittleEndian.PutUint32(val[2:], uint32(e.Index))
	return val
}

func decodeEntry(val []byte) (Entry, error) {
	if len(val) != 6 {
		return Entry{}, fmt.Errorf("malformed index entry of %d bytes", len(val))
	}
	return Entry{
		Kind:  cvsym.SymbolKind(binary.LittleEndian.Uint16(val)),
		Index: cvsym.SymbolIndex(binary.LittleEndian.Uint32(val[2:])),
	}, nil
}

// Put writes one entry. Entries are keyed by name and index, so a symbol
// indexed twice overwrites itself.
func (x *Index) Put(name string, e Entry) error {
	if err := x.db.Set(entryKey(name, e.Index), encodeEntry(e), pebble.NoSync); err != nil {
		return errors.Wrapf(err, "indexing %q", name)
	}
	return nil
}

// Get returns all entries recorded for an exact name, in stream order.
// A name with no entries yields an empty slice, not an error.
func (x *Index) Get(name string) ([]Entry, error) {
	prefix := entryKey(name, 0)[:len(entryPrefix)+len(name)+1]
	hits, err := x.scanRaw(prefix, 0)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(hits))
	for _, h := range hits {
		entries = append(entries, h.Entry)
	}
	return entries, nil
}

// Scan returns up to limit entries whose names start with prefix, in name
// order. A limit of 0 means no limit.
func (x *Index) Scan(prefix string, limit int) ([]Hit, error) {
	return x.scanRaw(append([]byte(entryPrefix), prefix...), limit)
}

func (x *Index) scanRaw(lower []byte, limit int) ([]Hit, error) {
	// Smallest key strictly greater than every key with this prefix. A lower
	// bound of all 0xff bytes has no such key; leave the scan unbounded.
	var upper []byte
	for i := len(lower) - 1; i >= 0; i-- {
		if lower[i] < 0xff {
			upper = make([]byte, i+1)
			copy(upper, lower[:i+1])
			upper[i]++
			break
		}
	}

	iter, err := x.db.NewIter(&pebble.IterOptions{
		LowerBound: lower,
		UpperBound: upper,
	})
	if err != nil {
		return nil, errors.Wrap(err, "scanning name index")
	}
	defer iter.Close()

	var hits []Hit
	for iter.First(); iter.Valid(); iter.Next() {
		key := iter.Key()
		sep := strings.IndexByte(string(key[len(entryPrefix):]), 0)
		if sep < 0 {
			continue
		}
		name := string(key[len(entryPrefix) : len(entryPrefix)+sep])

		entry, err := decodeEntry(iter.Value())
		if err != nil {
			return nil, err
		}
		hits = append(hits, Hit{Name: name, Entry: entry})

		if limit > 0 && len(hits) >= limit {
			break
		}
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "scanning name index")
	}
	return hits, nil
}

// Build walks the symbol stream and indexes every named record. Records that
// fail to decode are skipped and counted rather than aborting the build.
func (x *Index) Build(table *cvsym.SymbolTable) (*BuildStats, error) {
	stats := &BuildStats{BuildID: ksuid.New()}

	batch := x.db.NewBatch()
	defer batch.Close()

	iter := table.Iter()
	for iter.Next() {
		stats.Symbols++
		sym := iter.Symbol()

		parsed, err := sym.Parse()
		if err != nil {
			stats.Skipped++
			continue
		}
		name, ok := cvsym.SymbolName(parsed)
		if !ok {
			continue
		}

		entry := Entry{Index: sym.Index(), Kind: sym.RawKind()}
		if err := batch.Set(entryKey(name, entry.Index), encodeEntry(entry), nil); err != nil {
			return nil, errors.Wrapf(err, "indexing %q", name)
		}
		stats.Named++
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "walking symbol stream")
	}

	if err := batch.Set([]byte(metaBuild), stats.BuildID.Bytes(), nil); err != nil {
		return nil, errors.Wrap(err, "recording build id")
	}
	if err := x.db.Apply(batch, pebble.Sync); err != nil {
		return nil, errors.Wrap(err, "committing index build")
	}
	return stats, nil
}

// LastBuild returns the ID of the last completed build, or false if the
// index has never been built.
func (x *Index) LastBuild() (ksuid.KSUID, bool, error) {
	val, closer, err := x.db.Get([]byte(metaBuild))
	if err == pebble.ErrNotFound {
		return ksuid.Nil, false, nil
	}
	if err != nil {
		return ksuid.Nil, false, errors.Wrap(err, "reading build id")
	}
	defer closer.Close()

	id, err := ksuid.FromBytes(val)
	if err != nil {
		return ksuid.Nil, false, errors.Wrap(err, "decoding build id")
	}
	return id, true, nil
}
