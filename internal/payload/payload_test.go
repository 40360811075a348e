package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/drfriend/internal/models"
)

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		name     string
		content  []byte
		mime     string
		wantURI  string
		wantType string
	}{
		{
			name:     "pdf",
			content:  []byte("%PDF-"),
			mime:     "application/pdf",
			wantURI:  "data:application/pdf;base64,JVBERi0=",
			wantType: "application/pdf",
		},
		{
			name:     "empty mime falls back to octet-stream",
			content:  []byte{0x01, 0x02},
			mime:     "",
			wantURI:  "data:application/octet-stream;base64,AQI=",
			wantType: "application/octet-stream",
		},
		{
			name:     "garbage mime falls back to octet-stream",
			content:  []byte("x"),
			mime:     "not a type",
			wantURI:  "data:application/octet-stream;base64,eA==",
			wantType: "application/octet-stream",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uri := Encode(tt.content, tt.mime)
			assert.Equal(t, tt.wantURI, uri)

			data, contentType, err := Decode(uri)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, contentType)
			assert.Equal(t, string(tt.content), string(data))
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	for _, uri := range []string{"", "hello", "http://example.com/a.pdf"} {
		_, _, err := Decode(uri)
		assert.ErrorIs(t, err, ErrInvalidPayload, uri)
	}
}

func TestDetectMime(t *testing.T) {
	assert.Equal(t, "application/pdf", DetectMime("report.PDF", nil))
	assert.Equal(t, "image/png", DetectMime("scan.png", nil))
	// Неизвестное расширение: определяем по содержимому
	assert.Equal(t, "image/png", DetectMime("scan.unknownext", []byte("\x89PNG\r\n\x1a\n0000")))
	assert.Equal(t, "text/plain", DetectMime("notes", []byte("hello world")))
	assert.Equal(t, "", DetectMime("blob", []byte{0x00, 0x01, 0x02, 0x03}))
	assert.Equal(t, "", DetectMime("blob", nil))
}

func TestDownloadName(t *testing.T) {
	tests := []struct {
		name string
		rec  models.FileRecord
		want string
	}{
		{name: "plain name", rec: models.FileRecord{Name: "x.pdf", Mime: "application/pdf"}, want: "x.pdf"},
		{name: "no name", rec: models.FileRecord{Mime: "application/pdf"}, want: "file.pdf"},
		{name: "compound subtype", rec: models.FileRecord{Mime: "image/svg+xml"}, want: "file.svg+xml"},
		{name: "nothing known", rec: models.FileRecord{}, want: "file.bin"},
		{name: "parent traversal", rec: models.FileRecord{Name: "../../outside.pdf"}, want: "outside.pdf"},
		{name: "absolute path", rec: models.FileRecord{Name: "/etc/passwd"}, want: "passwd"},
		{name: "backslashes", rec: models.FileRecord{Name: `..\docs\scan.png`}, want: "scan.png"},
		{name: "only dots", rec: models.FileRecord{Name: "..", Mime: "image/png"}, want: "file.png"},
		{name: "trailing slash", rec: models.FileRecord{Name: "reports/../", Mime: "text/plain"}, want: "file.plain"},
		{name: "root", rec: models.FileRecord{Name: "/"}, want: "file.bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DownloadName(tt.rec))
		})
	}
}
