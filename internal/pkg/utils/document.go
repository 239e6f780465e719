package utils

import (
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/exceptions"
	"fmt"
	"net/http"
	"slices"
)

var allowedDocumentContentTypes = []string{
	constvars.MIMEImageJPEG,
	constvars.MIMEImagePNG,
	constvars.MIMEApplicationPDF,
}

// ValidateIdentificationDocument sniffs the content type when the client sent
// none or a generic one.
func ValidateIdentificationDocument(document *models.IdentificationDocument, maxSize int64) error {
	if document == nil {
		return nil
	}
	if document.Size == 0 || len(document.Content) == 0 {
		return exceptions.ErrInvalidDocument(fmt.Errorf("document %q is empty", document.FileName))
	}
	if maxSize > 0 && document.Size > maxSize {
		return exceptions.ErrInvalidDocument(fmt.Errorf("document size %d exceeds limit %d", document.Size, maxSize))
	}

	if document.ContentType == "" || document.ContentType == constvars.MIMEOctetStream {
		document.ContentType = http.DetectContentType(document.Content)
	}
	if !slices.Contains(allowedDocumentContentTypes, document.ContentType) {
		return exceptions.ErrInvalidDocument(fmt.Errorf("content type %q is not allowed", document.ContentType))
	}
	return nil
}
