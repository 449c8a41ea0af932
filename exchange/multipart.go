package exchange

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"sort"
	"strings"
)

// FileParam is a file-typed form parameter. Place one in
// CallParams.FormParams under the field name and set the Content-Type
// header to multipart/form-data to upload it. Exactly one of Data and
// Reader supplies the content.
type FileParam struct {
	// Name is the filename reported to the server.
	Name string
	// ContentType of the part. Defaults to application/octet-stream.
	ContentType string
	// Data is the file content.
	Data []byte
	// Reader streams the file content when Data is nil.
	Reader io.Reader
}

// encodeMultipart renders form params as a multipart/form-data body
// and returns it with the boundary-qualified content type. Fields are
// written in sorted key order so request bodies are deterministic.
func encodeMultipart(form map[string]any) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := form[k].(type) {
		case FileParam:
			if err := writeFilePart(w, k, v); err != nil {
				return nil, "", err
			}
		case *FileParam:
			if v == nil {
				return nil, "", NewValidationError(fmt.Sprintf("form field %q holds a nil file", k))
			}
			if err := writeFilePart(w, k, *v); err != nil {
				return nil, "", err
			}
		default:
			if err := w.WriteField(k, paramToString(v)); err != nil {
				return nil, "", NewValidationError(fmt.Sprintf("write form field %q: %v", k, err))
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", NewValidationError(fmt.Sprintf("finalize multipart body: %v", err))
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// writeFilePart adds one file part under the given field name.
func writeFilePart(w *multipart.Writer, field string, file FileParam) error {
	name := file.Name
	if name == "" {
		name = field
	}
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, escapeQuotes(field), escapeQuotes(name)))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return NewValidationError(fmt.Sprintf("create file part %q: %v", field, err))
	}

	var src io.Reader
	switch {
	case file.Data != nil:
		src = bytes.NewReader(file.Data)
	case file.Reader != nil:
		src = file.Reader
	default:
		return NewValidationError(fmt.Sprintf("file part %q has no content", field))
	}
	if _, err := io.Copy(part, src); err != nil {
		return NewValidationError(fmt.Sprintf("write file part %q: %v", field, err))
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
