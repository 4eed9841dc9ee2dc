package api

import (
	"bytes"
	"fmt"
	"mime/multipart"
)

// FilePart is one image attached to a multipart upload.
type FilePart struct {
	Field string
	Name  string
	Data  []byte
}

// Form accumulates the parts of a multipart/form-data request: each scalar
// field becomes a named text part, each image a named file part.
type Form struct {
	fields [][2]string
	files  []FilePart
}

// AddField appends a named text part. Order of insertion is preserved.
func (f *Form) AddField(name, value string) *Form {
	f.fields = append(f.fields, [2]string{name, value})
	return f
}

// AddFile appends a named file part.
func (f *Form) AddFile(field, name string, data []byte) *Form {
	f.files = append(f.files, FilePart{Field: field, Name: name, Data: data})
	return f
}

// Encode renders the form body and returns it with its content type.
func (f *Form) Encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field[0], field[1]); err != nil {
			return nil, "", fmt.Errorf("failed to write field %q: %w", field[0], err)
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.Field, file.Name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part %q: %w", file.Field, err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, "", fmt.Errorf("failed to write file part %q: %w", file.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize form: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
