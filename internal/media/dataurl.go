package media

import (
	"encoding/base64"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
)

var (
	ErrEmpty    = errors.New("media: empty file")
	ErrNotImage = errors.New("media: file is not an image")
	ErrTooLarge = errors.New("media: file too large")
)

// DefaultLimit caps a single upload before base64 expansion.
const DefaultLimit int64 = 2 << 20

// DataURL reads an image and returns it as "data:<mime>;base64,<...>".
// The mime type is sniffed from the content, not taken from the client.
func DataURL(r io.Reader, limit int64) (string, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", ErrEmpty
	}
	if int64(len(b)) > limit {
		return "", ErrTooLarge
	}

	ct, _, err := mime.ParseMediaType(http.DetectContentType(b))
	if err != nil || !strings.HasPrefix(ct, "image/") {
		return "", ErrNotImage
	}
	return "data:" + ct + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}

func FromFileHeader(fh *multipart.FileHeader, limit int64) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return DataURL(f, limit)
}
