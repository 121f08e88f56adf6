// Package record turns one parsed TOML fragment into one RDB record.
//
// A fragment is either a single `key = value` line or a bracketed table
// block, as grouped by the segment package. The top-level value shape picks
// one of exactly three on-disk representations: a TOML array becomes a set
// record, a TOML table becomes a hash record, and every other value becomes
// a string record. Values nested inside an array or table are always
// rendered through the scalar stringifier; there is no recursive structural
// encoding, so an array of tables (or a table of arrays) fails the pass.
package record

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/jo-migo/toml-to-rdb/errs"
	"github.com/jo-migo/toml-to-rdb/format"
)

// Field is one hash field in declaration order.
type Field struct {
	Key   string
	Value any
}

// Record is a keyed value classified into its on-disk shape. It is built
// transiently from one fragment, encoded once, and discarded.
type Record struct {
	// Key is the top-level TOML key the record is stored under.
	Key string
	// Type is the on-disk shape: TypeString, TypeSet or TypeHash.
	Type format.RecordType

	scalar any     // TypeString
	elems  []any   // TypeSet, source order
	fields []Field // TypeHash, declaration order
}

// Parse decodes fragment as TOML and classifies its first top-level key's
// value into a Record.
//
// Field order for hash records comes from toml.MetaData, which reports keys
// in document order; Go map iteration would lose it.
func Parse(fragment string) (*Record, error) {
	var doc map[string]any

	md, err := toml.Decode(fragment, &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMalformedFragment, err)
	}

	keys := md.Keys()
	if len(keys) == 0 {
		return nil, errs.ErrMissingKey
	}

	key := keys[0][0]
	value, ok := doc[key]
	if !ok {
		return nil, errs.ErrMissingKey
	}

	switch v := value.(type) {
	case []any:
		return &Record{Key: key, Type: format.TypeSet, elems: v}, nil
	case map[string]any:
		return &Record{Key: key, Type: format.TypeHash, fields: orderedFields(key, v, md)}, nil
	default:
		return &Record{Key: key, Type: format.TypeString, scalar: v}, nil
	}
}

// orderedFields lists the direct fields of the table under key in the order
// they appear in the document.
func orderedFields(key string, table map[string]any, md toml.MetaData) []Field {
	fields := make([]Field, 0, len(table))
	for _, k := range md.Keys() {
		if len(k) != 2 || k[0] != key {
			continue
		}

		fields = append(fields, Field{Key: k[1], Value: table[k[1]]})
	}

	return fields
}
