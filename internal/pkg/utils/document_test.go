package utils

import (
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateIdentificationDocument(t *testing.T) {
	pdf := []byte("%PDF-1.4\n%fake body")

	tests := []struct {
		name     string
		document *models.IdentificationDocument
		wantErr  bool
	}{
		{"no document", nil, false},
		{"pdf sniffed", &models.IdentificationDocument{FileName: "id.pdf", Size: int64(len(pdf)), Content: pdf}, false},
		{"declared png", &models.IdentificationDocument{FileName: "id.png", ContentType: constvars.MIMEImagePNG, Size: 3, Content: []byte{1, 2, 3}}, false},
		{"too large", &models.IdentificationDocument{FileName: "id.pdf", ContentType: constvars.MIMEApplicationPDF, Size: 2048, Content: pdf}, true},
		{"empty", &models.IdentificationDocument{FileName: "id.pdf"}, true},
		{"text file", &models.IdentificationDocument{FileName: "id.txt", ContentType: "text/plain", Size: 5, Content: []byte("hello")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentificationDocument(tt.document, 1024)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
