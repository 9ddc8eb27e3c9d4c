// Package envfile reads and writes .env style key-value files.
package envfile

import (
	"bytes"
	"strings"

	I "github.com/compozed/stackdactyl/interfaces"
	S "github.com/compozed/stackdactyl/structs"
	"github.com/spf13/afero"
)

type Manager struct {
	FileSystem *afero.Afero
	Log        I.Logger
}

// Read parses a line-oriented KEY=value file. Blank lines and lines
// starting with # are skipped; any other line without an = fails the read.
func (m Manager) Read(path string) (map[string]string, error) {
	contents, err := m.FileSystem.ReadFile(path)
	if err != nil {
		return nil, ReadError{path, err}
	}

	vars := map[string]string{}
	for i, line := range strings.Split(string(contents), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, MalformedLineError{path, i + 1, line}
		}
		vars[key] = value
	}

	m.Log.Debugf("read %d variables from %s", len(vars), path)
	return vars, nil
}

// Write serializes pairs in the given order, overwriting any existing file.
func (m Manager) Write(path string, pairs []S.EnvPair) error {
	buffer := &bytes.Buffer{}
	for _, pair := range pairs {
		buffer.WriteString(pair.Key)
		buffer.WriteString("=")
		buffer.WriteString(pair.Value)
		buffer.WriteString("\n")
	}

	err := m.FileSystem.WriteFile(path, buffer.Bytes(), 0600)
	if err != nil {
		return WriteError{path, err}
	}

	m.Log.Debugf("wrote %d variables to %s", len(pairs), path)
	return nil
}
