package test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

// MultipartFile builds a multipart request body containing a file upload
// and additional form fields.
//
// File contents are returned as a buffer and a map for the HTTP request headers
func MultipartFile(t *testing.T, filename, contentType string, content []byte, fields map[string]string) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)

	w, err := mw.CreatePart(header)
	if err != nil {
		assert.FailNow(t, err.Error())
	}

	if _, err := w.Write(content); err != nil {
		assert.Fail(t, err.Error())
	}

	for field, value := range fields {
		if err := mw.WriteField(field, value); err != nil {
			assert.Fail(t, err.Error())
		}
	}

	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
