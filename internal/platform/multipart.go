package platform

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"

	"platra/internal/media"
)

// multipartForm accumulates fields and remembers the first write error.
type multipartForm struct {
	buf    *bytes.Buffer
	writer *multipart.Writer
	err    error
}

func newMultipartForm() *multipartForm {
	buf := &bytes.Buffer{}
	return &multipartForm{buf: buf, writer: multipart.NewWriter(buf)}
}

func (f *multipartForm) field(name, value string) {
	if f.err != nil {
		return
	}
	f.err = f.writer.WriteField(name, value)
}

func (f *multipartForm) file(name string, img *media.Image) {
	if f.err != nil {
		return
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, name, img.Name))
	header.Set("Content-Type", img.ContentType)
	part, err := f.writer.CreatePart(header)
	if err != nil {
		f.err = err
		return
	}
	_, f.err = part.Write(img.Data)
}

func (f *multipartForm) close() (io.Reader, string, error) {
	if f.err == nil {
		f.err = f.writer.Close()
	}
	if f.err != nil {
		return nil, "", fmt.Errorf("failed to build multipart body: %w", f.err)
	}
	return f.buf, f.writer.FormDataContentType(), nil
}
