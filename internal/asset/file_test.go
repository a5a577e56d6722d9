package asset

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n0000")

func formFile(t *testing.T, name, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="`+name+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	return form.File["image"][0]
}

func TestReadFormFile(t *testing.T) {
	f, err := ReadFormFile(formFile(t, "logo.png", "image/png", pngHeader), 0)
	require.NoError(t, err)
	assert.Equal(t, "logo.png", f.Name)
	assert.Equal(t, "image/png", f.ContentType)
	assert.Equal(t, pngHeader, f.Data)
}

func TestReadFormFile_Nil(t *testing.T) {
	f, err := ReadFormFile(nil, 0)
	assert.NoError(t, err)
	assert.Nil(t, f)
}

func TestReadFormFile_Rejects(t *testing.T) {
	_, err := ReadFormFile(formFile(t, "notes.txt", "text/plain", []byte("hello world")), 0)
	assert.ErrorIs(t, err, ErrInvalidMimeType)

	_, err = ReadFormFile(formFile(t, "big.png", "image/png", pngHeader), 4)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = ReadFormFile(formFile(t, "empty.png", "image/png", nil), 0)
	assert.ErrorIs(t, err, ErrFileRequired)
}

func TestReadFormFile_SVGByDeclaredType(t *testing.T) {
	svg := []byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"></svg>`)
	f, err := ReadFormFile(formFile(t, "logo.svg", "image/svg+xml", svg), 0)
	require.NoError(t, err)
	assert.Equal(t, "image/svg+xml", f.ContentType)
}
