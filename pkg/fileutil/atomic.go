package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/sklint/internal/errors"
)

// DefaultFilePerm is the default permission for written files.
const DefaultFilePerm = 0o644

// AtomicWriteFile writes data to a file atomically by writing to a temporary
// file in the same directory and renaming it into place. Readers never see a
// partially written file.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultFilePerm
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return errors.Wrapf(err, "creating temp file in %s", dir)
	}
	tmpName := tmp.Name()

	// Clean up the temp file on any failure path.
	defer func() {
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "writing temp file for %s", path)
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "setting permissions on temp file for %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "closing temp file for %s", path)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "renaming temp file to %s", path)
	}
	tmpName = ""

	return nil
}

// AtomicWriteJSON marshals v with two-space indentation and writes it
// atomically with the default permission.
func AtomicWriteJSON(path string, v any) error {
	return AtomicWriteJSONWithPerm(path, v, DefaultFilePerm)
}

// AtomicWriteJSONWithPerm marshals v and writes it atomically with perm.
func AtomicWriteJSONWithPerm(path string, v any, perm os.FileMode) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "marshaling JSON for %s", path)
	}
	return AtomicWriteFile(path, append(data, '\n'), perm)
}

// AtomicWriteYAML marshals v to YAML and writes it atomically with the
// default permission.
func AtomicWriteYAML(path string, v any) error {
	return AtomicWriteYAMLWithPerm(path, v, DefaultFilePerm)
}

// AtomicWriteYAMLWithPerm marshals v to YAML and writes it atomically with perm.
func AtomicWriteYAMLWithPerm(path string, v any, perm os.FileMode) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "marshaling YAML for %s", path)
	}
	return AtomicWriteFile(path, data, perm)
}
