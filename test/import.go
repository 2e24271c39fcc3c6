package test

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
)

// LoadTestFile wraps a fixture from the testdata directory into a
// multipart request body.
//
// It returns the body and the headers to send with it.
func LoadTestFile(t *testing.T, filePath string) (*bytes.Buffer, map[string]string) {
	file, err := os.Open(path.Join("../../../testdata", filePath))
	require.NoError(t, err)
	defer file.Close()

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", filePath)
	require.NoError(t, err)

	_, err = io.Copy(w, file)
	require.NoError(t, err)

	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
