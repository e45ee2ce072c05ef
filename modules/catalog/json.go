// Copyright 2026 The validate-i18n Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package catalog

import (
	"bytes"
	"encoding/json" //nolint:depguard // token scanning needs ordered keys and byte offsets
	"errors"
	"fmt"
	"io"
)

// DecodeJSON decodes data as a single JSON document, preserving the order of
// object keys. Malformed input is reported as a *SyntaxError carrying the
// failure position where the scanner provides one.
func DecodeJSON(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, jsonSyntaxError(data, dec, err)
	}

	doc := &Document{}
	if delim, ok := tok.(json.Delim); ok && delim == '{' {
		cat, err := decodeObject(dec)
		if err != nil {
			return nil, jsonSyntaxError(data, dec, err)
		}
		doc.kind = KindMapping
		doc.mapping = cat
	} else {
		value, err := decodeValue(dec, tok)
		if err != nil {
			return nil, jsonSyntaxError(data, dec, err)
		}
		doc.kind = value.Kind
	}

	// A catalog file holds exactly one document. json.Decoder happily reads
	// streams, so trailing content has to be rejected explicitly.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, jsonSyntaxError(data, dec, err)
		}
		line, col := lineColumn(data, dec.InputOffset())
		return nil, &SyntaxError{
			Msg:    "extra data after top-level value",
			Line:   line,
			Column: col,
		}
	}

	return doc, nil
}

// decodeObject consumes one object body, the opening '{' already read.
func decodeObject(dec *json.Decoder) (*Catalog, error) {
	cat := &Catalog{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			// the decoder guarantees string keys inside objects
			return nil, errors.New("object key is not a string")
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		value, err := decodeValue(dec, valTok)
		if err != nil {
			return nil, err
		}
		cat.set(key, value)
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return cat, nil
}

// decodeValue classifies the value starting at tok, consuming the rest of a
// nested object or array. Nested structure contents are not retained: the
// catalog model is flat and the checks only inspect string values.
func decodeValue(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			if err := skipCompound(dec); err != nil {
				return Value{}, err
			}
			return Value{Kind: KindMapping}, nil
		case '[':
			if err := skipCompound(dec); err != nil {
				return Value{}, err
			}
			return Value{Kind: KindSequence}, nil
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case string:
		return Value{Kind: KindString, Str: t}, nil
	case float64:
		return Value{Kind: KindNumber}, nil
	case json.Number:
		return Value{Kind: KindNumber}, nil
	case bool:
		return Value{Kind: KindBool}, nil
	case nil:
		return Value{Kind: KindNull}, nil
	default:
		return Value{}, errors.New("unrecognized JSON token")
	}
}

// skipCompound consumes tokens until the object or array opened by the
// previous token is balanced.
func skipCompound(dec *json.Decoder) error {
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

// jsonSyntaxError converts a decoder error into a *SyntaxError with a
// 1-based line/column derived from the failure's byte offset when known.
func jsonSyntaxError(data []byte, dec *json.Decoder, err error) error {
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &syntaxErr):
		// Offset points one past the offending byte
		line, col := lineColumn(data, syntaxErr.Offset-1)
		return &SyntaxError{Msg: syntaxErr.Error(), Line: line, Column: col}
	case errors.Is(err, io.ErrUnexpectedEOF):
		line, col := lineColumn(data, int64(len(data)))
		return &SyntaxError{Msg: "unexpected end of JSON input", Line: line, Column: col}
	case errors.Is(err, io.EOF):
		line, col := lineColumn(data, dec.InputOffset())
		return &SyntaxError{Msg: "unexpected end of JSON input", Line: line, Column: col}
	default:
		return &SyntaxError{Msg: err.Error()}
	}
}

// lineColumn converts a byte offset into 1-based line and column numbers.
func lineColumn(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	if offset < 0 {
		offset = 0
	}
	prefix := data[:offset]
	line = 1 + bytes.Count(prefix, []byte{'\n'})
	if i := bytes.LastIndexByte(prefix, '\n'); i >= 0 {
		col = int(offset) - i
	} else {
		col = int(offset) + 1
	}
	return line, col
}
