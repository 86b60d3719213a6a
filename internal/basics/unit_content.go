// Copyright 2026 The ImmuxDB Authors
// This file is part of ImmuxDB.
//
// ImmuxDB is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ImmuxDB is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with ImmuxDB. If not, see <http://www.gnu.org/licenses/>.

package basics

import (
	"fmt"
	"math"

	json "github.com/goccy/go-json"
)

// ContentKind identifies which variant a UnitContent holds.
type ContentKind uint8

// The in-memory kinds of content variant. These are not the on-disk tags;
// the wire-format tag bytes are the tag* constants below.
const (
	ContentKindNil ContentKind = iota
	ContentKindString
	ContentKindBool
	ContentKindFloat64
	ContentKindJSONString
	ContentKindBSONBytes
	ContentKindBytes
)

const (
	tagNil        byte = 0x00
	tagString     byte = 0x10
	tagBool       byte = 0x11
	tagFloat64    byte = 0x12
	tagJSONString byte = 0x21
	tagBSONBytes  byte = 0x22
	tagBytes      byte = 0xff
)

// ErrUnitContentMalformed is returned when a UnitContent cannot be decoded
// from bytes.
var ErrUnitContentMalformed = fmt.Errorf("malformed unit content")

// UnitContent is the tagged union held by every stored unit: a document
// body, a scalar used for indexing, or an opaque blob. Only one of the
// fields below is meaningful, selected by kind.
type UnitContent struct {
	kind    ContentKind
	str     string
	boolean bool
	float   float64
	bytes   []byte
}

// NilContent returns the nil/absent content value.
func NilContent() UnitContent { return UnitContent{kind: ContentKindNil} }

// StringContent wraps a plain UTF-8 string.
func StringContent(s string) UnitContent { return UnitContent{kind: ContentKindString, str: s} }

// BoolContent wraps a boolean scalar, used primarily as an indexed
// property value.
func BoolContent(b bool) UnitContent { return UnitContent{kind: ContentKindBool, boolean: b} }

// Float64Content wraps a numeric scalar.
func Float64Content(f float64) UnitContent { return UnitContent{kind: ContentKindFloat64, float: f} }

// JSONStringContent wraps a JSON-encoded document body.
func JSONStringContent(s string) UnitContent {
	return UnitContent{kind: ContentKindJSONString, str: s}
}

// BSONBytesContent wraps a BSON-encoded document body.
func BSONBytesContent(b []byte) UnitContent {
	return UnitContent{kind: ContentKindBSONBytes, bytes: append([]byte(nil), b...)}
}

// BytesContent wraps an opaque byte blob.
func BytesContent(b []byte) UnitContent {
	return UnitContent{kind: ContentKindBytes, bytes: append([]byte(nil), b...)}
}

// Kind reports which variant this content holds.
func (c UnitContent) Kind() ContentKind { return c.kind }

// IsNil reports whether this is the nil variant.
func (c UnitContent) IsNil() bool { return c.kind == ContentKindNil }

// AsString returns the string payload and true for String and JSONString
// variants, else ("", false).
func (c UnitContent) AsString() (string, bool) {
	if c.kind == ContentKindString || c.kind == ContentKindJSONString {
		return c.str, true
	}
	return "", false
}

// AsBool returns the bool payload and true for the Bool variant.
func (c UnitContent) AsBool() (bool, bool) {
	if c.kind == ContentKindBool {
		return c.boolean, true
	}
	return false, false
}

// AsFloat64 returns the float payload and true for the Float64 variant.
func (c UnitContent) AsFloat64() (float64, bool) {
	if c.kind == ContentKindFloat64 {
		return c.float, true
	}
	return 0, false
}

// AsBytes returns the raw bytes for Bytes/BSONBytes variants.
func (c UnitContent) AsBytes() ([]byte, bool) {
	if c.kind == ContentKindBytes || c.kind == ContentKindBSONBytes {
		return c.bytes, true
	}
	return nil, false
}

// Marshal encodes the content as a one-byte tag followed by its payload.
// Variable-length payloads (strings, blobs) are length-prefixed with a
// varint.
func (c UnitContent) Marshal() []byte {
	switch c.kind {
	case ContentKindNil:
		return []byte{tagNil}
	case ContentKindString:
		return marshalTaggedBytes(tagString, []byte(c.str))
	case ContentKindBool:
		if c.boolean {
			return []byte{tagBool, 0x01}
		}
		return []byte{tagBool, 0x00}
	case ContentKindFloat64:
		buf := make([]byte, 9)
		buf[0] = tagFloat64
		bits := math.Float64bits(c.float)
		for i := 0; i < 8; i++ {
			buf[1+i] = byte(bits >> (8 * i))
		}
		return buf
	case ContentKindJSONString:
		return marshalTaggedBytes(tagJSONString, []byte(c.str))
	case ContentKindBSONBytes:
		return marshalTaggedBytes(tagBSONBytes, c.bytes)
	case ContentKindBytes:
		return marshalTaggedBytes(tagBytes, c.bytes)
	default:
		return []byte{tagNil}
	}
}

func marshalTaggedBytes(tag byte, payload []byte) []byte {
	buf := []byte{tag}
	buf = EncodeVarint(buf, uint64(len(payload)))
	return append(buf, payload...)
}

// ParseUnitContent reads a UnitContent from its encoded form, returning the
// content and the number of bytes consumed.
func ParseUnitContent(data []byte) (UnitContent, int, error) {
	if len(data) < 1 {
		return UnitContent{}, 0, ErrUnitContentMalformed
	}
	tag := data[0]
	rest := data[1:]
	switch tag {
	case tagNil:
		return NilContent(), 1, nil
	case tagString:
		payload, n, err := parseTaggedBytes(rest)
		if err != nil {
			return UnitContent{}, 0, err
		}
		return StringContent(string(payload)), 1 + n, nil
	case tagBool:
		if len(rest) < 1 {
			return UnitContent{}, 0, ErrUnitContentMalformed
		}
		return BoolContent(rest[0] != 0), 2, nil
	case tagFloat64:
		if len(rest) < 8 {
			return UnitContent{}, 0, ErrUnitContentMalformed
		}
		var bits uint64
		for i := 0; i < 8; i++ {
			bits |= uint64(rest[i]) << (8 * i)
		}
		return Float64Content(math.Float64frombits(bits)), 9, nil
	case tagJSONString:
		payload, n, err := parseTaggedBytes(rest)
		if err != nil {
			return UnitContent{}, 0, err
		}
		return JSONStringContent(string(payload)), 1 + n, nil
	case tagBSONBytes:
		payload, n, err := parseTaggedBytes(rest)
		if err != nil {
			return UnitContent{}, 0, err
		}
		return BSONBytesContent(payload), 1 + n, nil
	case tagBytes:
		payload, n, err := parseTaggedBytes(rest)
		if err != nil {
			return UnitContent{}, 0, err
		}
		return BytesContent(payload), 1 + n, nil
	default:
		return UnitContent{}, 0, ErrUnitContentMalformed
	}
}

func parseTaggedBytes(data []byte) ([]byte, int, error) {
	length, consumed, err := DecodeVarint(data)
	if err != nil {
		return nil, 0, err
	}
	end := consumed + int(length)
	if len(data) < end {
		return nil, 0, ErrUnitContentMalformed
	}
	return data[consumed:end], end, nil
}

// EqualStrict reports bit-for-bit equality, matching the source engine's
// NameProperty fallback path: two Float64 contents compare equal only if
// their bit patterns match exactly, so a NaN equals a NaN with the same bit
// pattern and 0 never equals -0.
func (c UnitContent) EqualStrict(other UnitContent) bool {
	if c.kind != other.kind {
		return false
	}
	switch c.kind {
	case ContentKindNil:
		return true
	case ContentKindString, ContentKindJSONString:
		return c.str == other.str
	case ContentKindBool:
		return c.boolean == other.boolean
	case ContentKindFloat64:
		return math.Float64bits(c.float) == math.Float64bits(other.float)
	case ContentKindBSONBytes, ContentKindBytes:
		return bytesEqual(c.bytes, other.bytes)
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// EqualJSONValue reports whether this content, compared as a JSON scalar,
// equals the value decoded from rawJSON. This backs the NameProperty select
// condition's comparison against a document's decoded field value, which
// considers numeric types loosely (a stored Float64 content matches a JSON
// number) rather than requiring a matching UnitContent variant. Numbers
// compare by float64 bit pattern, as in EqualStrict, so 0 does not match
// -0; this is not the usual JSON-query notion of numeric equality.
func (c UnitContent) EqualJSONValue(rawJSON []byte) bool {
	var v interface{}
	if err := json.Unmarshal(rawJSON, &v); err != nil {
		return false
	}
	switch val := v.(type) {
	case nil:
		return c.kind == ContentKindNil
	case bool:
		b, ok := c.AsBool()
		return ok && b == val
	case float64:
		f, ok := c.AsFloat64()
		return ok && math.Float64bits(f) == math.Float64bits(val)
	case string:
		s, ok := c.AsString()
		return ok && s == val
	default:
		return false
	}
}
