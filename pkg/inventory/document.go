// Package inventory defines the dealership inventory document and the
// identifier renumbering applied to it.
//
// The document is a JSON object with two collections: "cars" holds new stock
// whose identifiers this package rewrites, and "usedCars" holds used stock
// that is never modified. Vehicle fields other than id are opaque and carried
// through byte-for-byte.
package inventory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/lotworks/lotfix/pkg/errors"
)

// Vehicle is a single inventory record. Only the id field is interpreted;
// every other field is kept as raw JSON so its value survives a rewrite
// unchanged.
type Vehicle map[string]json.RawMessage

// ID returns the vehicle's numeric identifier. The second return value is
// false when the id field is absent or not an integer.
func (v Vehicle) ID() (int, bool) {
	raw, ok := v["id"]
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(string(bytes.TrimSpace(raw)))
	if err != nil {
		return 0, false
	}
	return id, true
}

// SetID overwrites the vehicle's id field.
func (v Vehicle) SetID(id int) {
	v["id"] = json.RawMessage(strconv.Itoa(id))
}

// Document is the top-level value persisted in the inventory file.
type Document struct {
	// Cars is the new-car collection. Order is semantically meaningful: it
	// determines the identifiers assigned by Renumber.
	Cars []Vehicle

	// UsedCars is the used-car collection, opaque to this tool. Entries are
	// kept as raw JSON and written back exactly as they were read.
	UsedCars []json.RawMessage

	// extra holds unrecognized top-level keys so they survive a round trip.
	extra map[string]json.RawMessage
}

// UnmarshalJSON parses a document and validates that both collections are
// present before any mutation can happen. A missing collection yields a
// MissingFieldError; a malformed one surfaces the underlying JSON error.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	carsRaw, ok := raw["cars"]
	if !ok {
		return errors.NewMissingFieldError("cars")
	}
	usedRaw, ok := raw["usedCars"]
	if !ok {
		return errors.NewMissingFieldError("usedCars")
	}

	if err := json.Unmarshal(carsRaw, &d.Cars); err != nil {
		return err
	}
	// A null array entry decodes into a nil map without error; reject it
	// here so mutation can never hit an entry that was not an object.
	for i, car := range d.Cars {
		if car == nil {
			return fmt.Errorf("cars entry %d: expected a JSON object, got null", i)
		}
	}
	if err := json.Unmarshal(usedRaw, &d.UsedCars); err != nil {
		return err
	}

	delete(raw, "cars")
	delete(raw, "usedCars")
	if len(raw) > 0 {
		d.extra = raw
	}
	return nil
}

// MarshalJSON serializes the document with both collections and any preserved
// top-level keys, emitted in sorted key order. Preserved raw values are
// written verbatim rather than re-marshaled, so json.Marshal never gets a
// chance to re-escape the bytes that were read from the file.
func (d *Document) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(d.extra)+2)
	keys = append(keys, "cars", "usedCars")
	for k := range d.extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeKey(&buf, k)
		switch k {
		case "cars":
			writeCars(&buf, d.Cars)
		case "usedCars":
			writeRawList(&buf, d.UsedCars)
		default:
			buf.Write(d.extra[k])
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeKey writes a quoted object key followed by a colon. Keys go through
// an escaping-off encoder so markup characters round-trip the same way
// preserved values do.
func writeKey(buf *bytes.Buffer, key string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(key)         // encoding a string cannot fail
	buf.Truncate(buf.Len() - 1) // drop the newline Encode appends
	buf.WriteByte(':')
}

// writeCars writes the new-car collection, each vehicle as an object with
// sorted keys and verbatim raw values.
func writeCars(buf *bytes.Buffer, cars []Vehicle) {
	buf.WriteByte('[')
	for i, car := range cars {
		if i > 0 {
			buf.WriteByte(',')
		}
		fields := make([]string, 0, len(car))
		for k := range car {
			fields = append(fields, k)
		}
		sort.Strings(fields)

		buf.WriteByte('{')
		for j, k := range fields {
			if j > 0 {
				buf.WriteByte(',')
			}
			writeKey(buf, k)
			buf.Write(car[k])
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
}

// writeRawList writes a collection of verbatim raw entries.
func writeRawList(buf *bytes.Buffer, entries []json.RawMessage) {
	buf.WriteByte('[')
	for i, entry := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(entry)
	}
	buf.WriteByte(']')
}
