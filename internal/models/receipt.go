package models

import (
	"strings"

	"gorm.io/gorm"
)

// Receipt stores the output of the receipt extraction collaborator
// verbatim, next to the metadata of the uploaded image.
//
// The raw extraction is kept so that a transaction created from it can
// always be traced back to what the model actually returned.
type Receipt struct {
	DefaultModel
	OwnerID       string `gorm:"index"` // UID of the owner, issued by the identity provider
	Filename      string
	ContentType   string
	RawExtraction []byte // the extraction result, stored as returned
}

// BeforeSave validates the receipt.
func (r *Receipt) BeforeSave(_ *gorm.DB) error {
	r.Filename = strings.TrimSpace(r.Filename)

	if strings.TrimSpace(r.OwnerID) == "" {
		return ErrReceiptOwnerRequired
	}

	return nil
}
