package media

import (
	"encoding/base64"
	"image/color"
	"testing"

	"docmedia/internal/media/mediatest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayload(t *testing.T) {
	raw := []byte("hello world")
	encoded := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name    string
		payload string
		want    []byte
		wantErr error
	}{
		{
			name:    "raw base64",
			payload: encoded,
			want:    raw,
		},
		{
			name:    "data-URI prefix is stripped",
			payload: "data:image/png;base64," + encoded,
			want:    raw,
		},
		{
			name:    "pdf data-URI prefix is stripped",
			payload: "data:application/pdf;base64," + encoded,
			want:    raw,
		},
		{
			name:    "empty payload",
			payload: "",
			wantErr: ErrInvalidEncoding,
		},
		{
			name:    "data-URI prefix with empty body",
			payload: "data:image/png;base64,",
			wantErr: ErrInvalidEncoding,
		},
		{
			name:    "not base64",
			payload: "!!! definitely not base64 !!!",
			wantErr: ErrInvalidEncoding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePayload(tt.payload)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectKind(t *testing.T) {
	pdf := mediatest.PDF(1)
	png := mediatest.PNG(2, 2, color.NRGBA{R: 255, A: 255})

	assert.Equal(t, KindPDF, DetectKind(pdf))
	assert.Equal(t, KindImage, DetectKind(png))
	// Unrecognized bytes default to image; extraction rejects them later.
	assert.Equal(t, KindImage, DetectKind([]byte("plain text")))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("image")
	require.NoError(t, err)
	assert.Equal(t, KindImage, k)

	k, err = ParseKind("pdf")
	require.NoError(t, err)
	assert.Equal(t, KindPDF, k)

	_, err = ParseKind("spreadsheet")
	assert.Error(t, err)
}
