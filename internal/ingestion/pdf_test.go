package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTextRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "empty stream",
			data: nil,
		},
		{
			name: "plain text is not a PDF",
			data: []byte("just some resume text"),
		},
		{
			name: "truncated PDF header",
			data: []byte("%PDF-1.7\nthis is not a real document"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := ExtractText(tt.data)
			assert.Error(t, err)
			assert.Empty(t, text)
		})
	}
}
