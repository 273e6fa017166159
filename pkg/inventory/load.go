package inventory

import (
	"encoding/json"
	stderrors "errors"
	"os"

	"github.com/lotworks/lotfix/pkg/errors"
	"github.com/lotworks/lotfix/pkg/logging"
)

// Load reads and parses the inventory document at path. It fails with an
// IOError if the file cannot be read, a MissingFieldError if either
// collection is absent, and a ParseError for anything else that does not
// parse into the expected shape. Nothing is written.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	doc, err := Decode(data)
	if err != nil {
		var missing *errors.MissingFieldError
		if stderrors.As(err, &missing) {
			missing.File = path
			return nil, missing
		}
		return nil, errors.WrapParse("json", path, err)
	}

	logging.Debug().
		Str("path", path).
		Int("cars", len(doc.Cars)).
		Int("used_cars", len(doc.UsedCars)).
		Msg("Loaded inventory document")

	return doc, nil
}

// Decode parses raw bytes into a Document.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
