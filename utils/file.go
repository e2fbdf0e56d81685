package utils

import (
	"encoding/base64"
	"fmt"
	"io"
)

// ErrFileRead marks an unreadable upload.
var ErrFileRead = fmt.Errorf("could not read file")

// ReadFileAsEncodedBytes drains an uploaded file and returns its
// contents base64 encoded, the form photos travel in everywhere else.
func ReadFileAsEncodedBytes(r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFileRead, err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
