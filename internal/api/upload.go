package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"zanara/pkg/apperrors"
)

// File is one file in an upload batch.
type File struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

// ProgressFunc receives upload progress as a 0-100 percentage. It is called
// from the uploading goroutine; implementations must be fast.
type ProgressFunc func(percent int)

// Upload sends a multipart batch to path under the given form field and
// decodes the response into out. Progress reflects bytes of the request
// body written to the wire, reaching 100 exactly once on completion.
func (c *Client) Upload(ctx context.Context, path, field string, files []File, progress ProgressFunc, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, f := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, field, f.Name))
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			return apperrors.UploadError("Failed to build upload request", err)
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return apperrors.UploadError("Failed to read file "+f.Name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return apperrors.UploadError("Failed to finalize upload request", err)
	}

	body := io.Reader(&buf)
	if progress != nil {
		body = &progressReader{r: &buf, total: int64(buf.Len()), fn: progress}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return apperrors.InternalError(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.attachToken(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.NetworkError(err)
	}
	defer resp.Body.Close()

	if err := c.decodeResponse(resp, out); err != nil {
		return err
	}
	if progress != nil {
		progress(100)
	}
	return nil
}

// progressReader counts bytes handed to the HTTP transport.
type progressReader struct {
	r       io.Reader
	total   int64
	written int64
	last    int
	fn      ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.written += int64(n)
	if p.total > 0 {
		pct := int(p.written * 100 / p.total)
		if pct > 99 {
			// 100 is reported by Upload after the response arrives.
			pct = 99
		}
		if pct != p.last {
			p.last = pct
			p.fn(pct)
		}
	}
	return n, err
}
