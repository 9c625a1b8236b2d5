// Where: internal/envfile/envfile.go
// What: Local secrets file materialization and editing.
// Why: Centralize the never-overwrite invariant and .env parsing.
package envfile

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tahanili/pylaunch/internal/fileops"
)

// Status describes the outcome of Ensure.
type Status int

const (
	// StatusPresent: the local file already existed and was left untouched.
	StatusPresent Status = iota
	// StatusCreated: the local file was copied from the template.
	StatusCreated
	// StatusNoTemplate: neither local file nor template exists.
	StatusNoTemplate
)

// Ensure materializes the local secrets file from the template.
// An existing local file is never overwritten. A missing template with a
// missing local file is reported as StatusNoTemplate, not as an error.
func Ensure(templatePath, localPath string) (Status, error) {
	if fileops.FileExists(localPath) {
		return StatusPresent, nil
	}
	if !fileops.FileExists(templatePath) {
		return StatusNoTemplate, nil
	}
	if err := fileops.CopyFile(templatePath, localPath); err != nil {
		return StatusNoTemplate, fmt.Errorf("copy %s to %s: %w", templatePath, localPath, err)
	}
	return StatusCreated, nil
}

// Read parses an env file into a key/value map.
func Read(path string) (map[string]string, error) {
	return godotenv.Read(path)
}

// MissingKeys returns template keys that are absent from the local file,
// sorted. A missing local file means every template key is missing; a
// missing template means nothing is.
func MissingKeys(templatePath, localPath string) ([]string, error) {
	if !fileops.FileExists(templatePath) {
		return nil, nil
	}
	template, err := godotenv.Read(templatePath)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", templatePath, err)
	}

	local := map[string]string{}
	if fileops.FileExists(localPath) {
		local, err = godotenv.Read(localPath)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", localPath, err)
		}
	}

	var missing []string
	for key := range template {
		if _, ok := local[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing, nil
}

// Set writes key=value into the local secrets file, creating it if absent.
// Other entries are preserved. The template is never touched.
func Set(path, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("env key is required")
	}

	values := map[string]string{}
	if fileops.FileExists(path) {
		existing, err := godotenv.Read(path)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		values = existing
	}
	values[key] = value

	if err := godotenv.Write(values, path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return os.Chmod(path, 0o600)
}

// Mask hides a secret value for display, keeping a short prefix of long
// values so the user can tell entries apart.
func Mask(value string) string {
	if value == "" {
		return "(empty)"
	}
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	return value[:2] + strings.Repeat("*", len(value)-2)
}
