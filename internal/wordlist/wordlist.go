// Package wordlist loads word datasets from TOML files.
package wordlist

import (
	"compress/bzip2"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/tokitype/internal/model"
)

//go:embed data/words.toml
var embeddedWords string

// EmbeddedSource names the built-in dataset in messages.
const EmbeddedSource = "<embedded>"

type document struct {
	Words []model.WordRecord `toml:"words"`
}

// LoadWords reads the dataset at path. An empty path selects the embedded
// dataset; paths ending in .bz2 are decompressed first.
func LoadWords(path string) ([]model.WordRecord, error) {
	if path == "" {
		return Decode(strings.NewReader(embeddedWords))
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only dataset.
			_ = cerr
		}
	}()

	var r io.Reader = file
	if strings.HasSuffix(path, ".bz2") {
		r = bzip2.NewReader(file)
	}
	return Decode(r)
}

// Decode parses a TOML dataset document. A document without records is
// valid and yields no words.
func Decode(r io.Reader) ([]model.WordRecord, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return doc.Words, nil
}

// SourceName returns a printable name for a dataset path.
func SourceName(path string) string {
	if path == "" {
		return EmbeddedSource
	}
	return path
}
