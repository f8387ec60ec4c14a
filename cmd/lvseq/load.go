package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var errUnknownFormat = errors.New("lvseq: unknown format")

// detectFormat resolves the input format from the flag or the file extension.
func detectFormat(path, flag string) (string, error) {
	f := strings.ToLower(flag)
	if f == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			f = formatYAML
		default:
			f = formatJSON
		}
	}
	if f == "yml" {
		f = formatYAML
	}
	if f != formatJSON && f != formatYAML {
		return "", errors.Wrapf(errUnknownFormat, "%q", flag)
	}
	return f, nil
}

// loadArray reads path and decodes a top-level array.
func loadArray(path, format string) ([]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	var items []any
	switch format {
	case formatYAML:
		err = yaml.Unmarshal(raw, &items)
	default:
		err = json.Unmarshal(raw, &items)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s array", format)
	}
	return items, nil
}
