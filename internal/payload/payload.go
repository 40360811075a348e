// Package payload converts file contents to and from the inline data URI
// representation stored in FileRecord.Data.
package payload

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vincent-petithory/dataurl"

	"github.com/iudanet/drfriend/internal/models"
)

// DefaultMime is used when the type of the content is unknown
const DefaultMime = "application/octet-stream"

// ErrInvalidPayload is returned when a stored payload is not a valid data URI
var ErrInvalidPayload = errors.New("invalid payload")

// Encode returns content as a base64 data URI with the given MIME type.
// An empty or unparsable type falls back to DefaultMime.
func Encode(content []byte, mimeType string) string {
	mediaType, params, err := mime.ParseMediaType(mimeType)
	if err != nil || !strings.Contains(mediaType, "/") {
		mediaType, params = DefaultMime, nil
	}

	// Параметры сортируются, чтобы результат был детерминированным
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(params)*2)
	for _, k := range keys {
		pairs = append(pairs, k, params[k])
	}

	return dataurl.New(content, mediaType, pairs...).String()
}

// Decode returns the raw content and the content type of a data URI
func Decode(uri string) ([]byte, string, error) {
	du, err := dataurl.DecodeString(uri)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return du.Data, du.MediaType.ContentType(), nil
}

// DetectMime guesses the MIME type of a file from its name and content.
// Returns an empty string when nothing better than DefaultMime is known.
func DetectMime(name string, content []byte) string {
	ext := strings.ToLower(filepath.Ext(name))
	mimeType := mime.TypeByExtension(ext)

	if mimeType == "" && len(content) > 0 {
		mimeType = http.DetectContentType(content)
	}

	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil || mediaType == DefaultMime {
		return ""
	}
	return mediaType
}

// DownloadName returns the file name offered when rec is downloaded:
// the last element of the record name, or "file.<subtype>" derived from
// the MIME type, or "file.bin" when the type is unknown.
// The result never contains a path separator.
func DownloadName(rec models.FileRecord) string {
	// Имена из старых документов могут содержать пути, в том числе с '\'
	name := filepath.Base(filepath.Clean(strings.ReplaceAll(rec.Name, "\\", "/")))
	switch name {
	case ".", "..", "/", "":
	default:
		return name
	}
	if rec.Mime == "" {
		return "file.bin"
	}
	parts := strings.Split(rec.Mime, "/")
	return "file." + parts[len(parts)-1]
}
