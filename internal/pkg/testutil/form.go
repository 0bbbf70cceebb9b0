// Package testutil provides helpers shared by unit and integration tests.
package testutil

import (
	"mime/multipart"
	"os"
	"testing"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/httputil"

	"github.com/stretchr/testify/require"
)

// CreateTestFileAndForm creates a test file and a multipart form containing it
func CreateTestFileAndForm(t *testing.T, fileName string, fileContent []byte) (*multipart.Form, error) {
	err := CreateTestFile(fileName, fileContent)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := os.Remove(fileName); err != nil {
			t.Logf("failed to remove temporary file %s: %v", fileName, err)
		}
	})

	form, err := httputil.CreateForm(fileContent, fileName)
	require.NoError(t, err)

	return form, nil
}

// CreateEmptyForm creates an empty multipart form for testing
func CreateEmptyForm() *multipart.Form {
	return &multipart.Form{
		File: make(map[string][]*multipart.FileHeader),
	}
}

// CreateMultipleTestFilesForm creates a multipart form with multiple test files
func CreateMultipleTestFilesForm(t *testing.T, files map[string][]byte) (*multipart.Form, error) {
	t.Helper()

	contents := make([][]byte, 0, len(files))
	names := make([]string, 0, len(files))
	for name, content := range files {
		names = append(names, name)
		contents = append(contents, content)
	}

	form, err := httputil.CreateMultipleFilesForm(contents, names)
	require.NoError(t, err)

	return form, nil
}
