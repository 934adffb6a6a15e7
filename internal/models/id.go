// Tableside - Restaurant Table Ordering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tableside

package models

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned when a string is not a well-formed identifier.
var ErrInvalidID = errors.New("invalid identifier")

// ID is the opaque identifier of a stored record. Callers obtain one from
// ParseID or NewID and render it with String; the store representation is
// private to this type.
//
// In BSON an ID is a native ObjectID. In JSON it is a 24-character hex string.
type ID struct {
	oid primitive.ObjectID
}

// NewID mints a fresh identifier.
func NewID() ID {
	return ID{oid: primitive.NewObjectID()}
}

// ParseID parses the string form produced by String. Any other input,
// including the empty string, fails with an error wrapping ErrInvalidID.
func ParseID(s string) (ID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ID{oid: oid}, nil
}

// String returns the canonical lowercase hex form, or "" for the zero ID.
func (id ID) String() string {
	if id.IsZero() {
		return ""
	}
	return id.oid.Hex()
}

// IsZero reports whether id is unset. The BSON encoder consults this for
// omitempty fields, so a zero _id lets the store assign one.
func (id ID) IsZero() bool {
	return id.oid.IsZero()
}

// MarshalJSON encodes the ID as a hex string, or null when unset.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(id.oid.Hex())
}

// UnmarshalJSON accepts a hex string or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ID{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, string(data))
	}
	parsed, err := ParseID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBSONValue stores the ID as an ObjectID.
func (id ID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(id.oid)
}

// UnmarshalBSONValue reads an ObjectID. Hex strings are accepted as well,
// since older order documents carry table_id as a plain string.
func (id *ID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bson.TypeObjectID:
		if len(data) != 12 {
			return fmt.Errorf("%w: objectid of %d bytes", ErrInvalidID, len(data))
		}
		var oid primitive.ObjectID
		copy(oid[:], data)
		*id = ID{oid: oid}
		return nil
	case bson.TypeString:
		s, ok := bson.RawValue{Type: t, Value: data}.StringValueOK()
		if !ok {
			return fmt.Errorf("%w: malformed string value", ErrInvalidID)
		}
		parsed, err := ParseID(s)
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	case bson.TypeNull, bson.TypeUndefined:
		*id = ID{}
		return nil
	default:
		return fmt.Errorf("%w: cannot decode BSON %s", ErrInvalidID, t)
	}
}
