// Package detect sniffs input to determine the data format.
package detect

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format represents a recognized input format.
type Format int

const (
	Unknown Format = iota
	JSON           // JSON array or object
	YAML           // YAML sequence or mapping
	SQLite         // SQLite 3 database file
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case SQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// sqliteMagic is the header every SQLite 3 database file starts with.
const sqliteMagic = "SQLite format 3\x00"

// Sniff examines input to determine its format. YAML detection parses the
// whole input, so pass complete documents.
func Sniff(data []byte) Format {
	if bytes.HasPrefix(data, []byte(sqliteMagic)) {
		return SQLite
	}
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return Unknown
	}
	if data[0] == '{' || data[0] == '[' {
		return JSON
	}
	if isYAML(data) {
		return YAML
	}
	return Unknown
}

// SniffFile reads the start of path and sniffs it.
func SniffFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, err
	}
	defer f.Close()

	head := make([]byte, len(sqliteMagic))
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return Unknown, err
	}
	if string(head[:n]) == sqliteMagic {
		return SQLite, nil
	}
	rest, err := io.ReadAll(f)
	if err != nil {
		return Unknown, err
	}
	return Sniff(append(head[:n], rest...)), nil
}

// isYAML reports whether data is a YAML sequence or mapping. A bare scalar
// (plain text) is not treated as data.
func isYAML(data []byte) bool {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return false
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return false
	}
	switch doc.Content[0].Kind {
	case yaml.SequenceNode, yaml.MappingNode:
		return true
	default:
		return false
	}
}
