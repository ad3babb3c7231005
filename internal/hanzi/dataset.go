package hanzi

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"

	"golang.org/x/text/unicode/norm"
)

//go:embed data/levels.json
var levelsJSON []byte

//go:embed data/stroke-count.json
var strokeCountsJSON []byte

var (
	loadEmbeddedOnce sync.Once
	embeddedDataset  Dataset
	embeddedLoadErr  error
)

// Table maps a level or stroke count to the characters filed under it.
// Repeated characters in one entry are kept and weight sampling.
type Table map[uint8][]rune

// Keys returns the table keys in ascending order.
func (t Table) Keys() []uint8 {
	keys := make([]uint8, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Len returns the number of characters across all entries.
func (t Table) Len() int {
	n := 0
	for _, chars := range t {
		n += len(chars)
	}
	return n
}

// UnnormalizedKeys returns, in ascending order, the keys whose characters
// are not in Unicode NFC form, for example compatibility ideographs such as
// U+F900. Such entries are kept as stored; a lookup with the unified form of
// the character will not match them.
func (t Table) UnnormalizedKeys() []uint8 {
	var keys []uint8
	for _, key := range t.Keys() {
		if !norm.NFC.IsNormalString(string(t[key])) {
			keys = append(keys, key)
		}
	}
	return keys
}

func (t Table) clone() Table {
	out := make(Table, len(t))
	for key, chars := range t {
		out[key] = append([]rune(nil), chars...)
	}
	return out
}

// Dataset holds the level and stroke-count tables.
type Dataset struct {
	Levels       Table
	StrokeCounts Table
}

// Clone returns a deep copy of the dataset.
func (d Dataset) Clone() Dataset {
	return Dataset{
		Levels:       d.Levels.clone(),
		StrokeCounts: d.StrokeCounts.clone(),
	}
}

// EmbeddedDataset returns the dataset compiled into the binary.
//
// The embedded JSON is decoded once; every call returns a fresh copy so
// callers cannot mutate cached package state.
func EmbeddedDataset() (Dataset, error) {
	loadEmbeddedOnce.Do(func() {
		embeddedDataset, embeddedLoadErr = LoadDataset(levelsJSON, strokeCountsJSON)
	})
	if embeddedLoadErr != nil {
		return Dataset{}, embeddedLoadErr
	}
	return embeddedDataset.Clone(), nil
}

// LoadDataset decodes the level and stroke-count documents.
func LoadDataset(levels, strokeCounts []byte) (Dataset, error) {
	levelTable, err := DecodeTable(levels)
	if err != nil {
		return Dataset{}, fmt.Errorf("decode levels: %w", err)
	}
	strokeTable, err := DecodeTable(strokeCounts)
	if err != nil {
		return Dataset{}, fmt.Errorf("decode stroke counts: %w", err)
	}
	return Dataset{Levels: levelTable, StrokeCounts: strokeTable}, nil
}

// LoadDatasetFiles reads and decodes the two table documents from disk.
func LoadDatasetFiles(levelsPath, strokeCountsPath string) (Dataset, error) {
	levels, err := os.ReadFile(levelsPath)
	if err != nil {
		return Dataset{}, fmt.Errorf("read levels: %w", err)
	}
	strokeCounts, err := os.ReadFile(strokeCountsPath)
	if err != nil {
		return Dataset{}, fmt.Errorf("read stroke counts: %w", err)
	}
	return LoadDataset(levels, strokeCounts)
}

// DecodeTable decodes a flat JSON object of integer keys to character
// strings, for example {"1": "一乙", "2": "二十"}.
//
// Values are split into runes as stored, keeping order and repeats. Any
// invalid key fails the whole table.
func DecodeTable(raw []byte) (Table, error) {
	var payload map[string]string
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: document is not an object", ErrInvalidDataset)
	}

	table := make(Table, len(payload))
	for rawKey, value := range payload {
		key, err := strconv.ParseUint(rawKey, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, rawKey)
		}
		table[uint8(key)] = []rune(value)
	}
	return table, nil
}
