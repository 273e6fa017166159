package inventory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lotworks/lotfix/pkg/constants"
	"github.com/lotworks/lotfix/pkg/errors"
	"github.com/lotworks/lotfix/pkg/logging"
)

// Encode serializes a document with stable two-space indentation. HTML
// escaping is disabled so non-ASCII and markup characters round-trip
// faithfully. The output ends with a newline.
func Encode(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", constants.JSONIndent)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding inventory document: %w", err)
	}
	return buf.Bytes(), nil
}

// Save serializes the document and atomically replaces the file at path.
// The content is written to a temporary file in the same directory and
// renamed over the target only after the write fully succeeds, so a failed
// run never corrupts the original file.
func Save(doc *Document, path string) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.WrapIO("create", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.WrapIO("write", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("close", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("chmod", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("rename", path, err)
	}

	logging.Debug().
		Str("path", path).
		Int("bytes", len(data)).
		Msg("Saved inventory document")

	return nil
}
