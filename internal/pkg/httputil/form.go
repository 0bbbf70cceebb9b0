// Package httputil provides helpers for building multipart forms, shared by
// application code and tests.
package httputil

import (
	"bytes"
	"fmt"
	"mime/multipart"
)

// CreateForm builds a multipart form containing a single file under the
// "files" field.
func CreateForm(content []byte, fileName string) (*multipart.Form, error) {
	return CreateMultipleFilesForm([][]byte{content}, []string{fileName})
}

// CreateMultipleFilesForm builds a multipart form containing the given files
// under the "files" field. Contents and names must have the same length.
func CreateMultipleFilesForm(contents [][]byte, fileNames []string) (*multipart.Form, error) {
	if len(contents) != len(fileNames) {
		return nil, fmt.Errorf("contents and file names length mismatch: %d != %d", len(contents), len(fileNames))
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for i, content := range contents {
		part, err := writer.CreateFormFile("files", fileNames[i])
		if err != nil {
			return nil, fmt.Errorf("failed to create form file %s: %w", fileNames[i], err)
		}
		if _, err := part.Write(content); err != nil {
			return nil, fmt.Errorf("failed to write form file %s: %w", fileNames[i], err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close form writer: %w", err)
	}

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20) // 32 MB
	if err != nil {
		return nil, fmt.Errorf("failed to read form: %w", err)
	}

	// ReadForm keeps small files in memory and leaves Size unset
	if fileHeaders, ok := form.File["files"]; ok {
		for i, header := range fileHeaders {
			if i < len(contents) && header.Size == 0 {
				header.Size = int64(len(contents[i]))
			}
		}
	}

	return form, nil
}
