package dataproc

import (
	"encoding/json"
	"fmt"
	"os"
)

const filePerm = 0o644

// SaveToFile writes content to path, replacing any existing file.
func SaveToFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWritingFile, path, err)
	}

	return nil
}

// ReadJSONFile decodes the JSON document stored at path into a value of
// type T.
func ReadJSONFile[T any](path string) (T, error) {
	var result, zero T

	file, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("%w %q: %w", ErrReadingFile, path, err)
	}
	defer file.Close()

	if err = json.NewDecoder(file).Decode(&result); err != nil {
		return zero, fmt.Errorf("%w %q: %w", ErrDecodingJSON, path, err)
	}

	return result, nil
}
