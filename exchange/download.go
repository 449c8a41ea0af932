package exchange

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/kbukum/tradekit/logger"
)

// File is the result of a call whose return type is File. The response
// body is written under a fresh temporary directory so concurrent
// downloads never collide. The caller owns the file and should move or
// remove it when done.
type File struct {
	// Path is the absolute location of the downloaded file.
	Path string
	// Name is the filename component, taken from the response
	// Content-Disposition when present.
	Name string
	// Size is the body length in bytes.
	Size int64
}

// saveDownload writes the response body to disk and returns its
// location.
func (c *Client) saveDownload(resp *Response) (*File, error) {
	dir, err := os.MkdirTemp(c.cfg.TempDir, "tradekit-download-*")
	if err != nil {
		return nil, NewDecodeError(fmt.Sprintf("create download directory: %v", err), err)
	}

	name := downloadFilename(resp.Header.Get("Content-Disposition"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, resp.Body, 0o600); err != nil {
		return nil, NewDecodeError(fmt.Sprintf("write download: %v", err), err)
	}

	c.log.Info("download saved to temporary file; move or remove it when done", logger.Fields(
		logger.FieldFile, path,
		"size", len(resp.Body),
	))

	return &File{Path: path, Name: name, Size: int64(len(resp.Body))}, nil
}

// downloadFilename extracts the filename advertised in a
// Content-Disposition header, falling back to a generated name.
func downloadFilename(contentDisposition string) string {
	if contentDisposition != "" {
		if _, params, err := mime.ParseMediaType(contentDisposition); err == nil {
			name := filepath.Base(params["filename"])
			if name != "." && name != ".." && name != string(filepath.Separator) {
				return name
			}
		}
	}
	return "download-" + uuid.NewString()
}
