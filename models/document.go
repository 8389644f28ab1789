package models

import (
	"time"
)

// DocumentType classifies a worker verification artifact
type DocumentType string

const (
	DocumentID              DocumentType = "id"
	DocumentCertificate     DocumentType = "certificate"
	DocumentPoliceClearance DocumentType = "police_clearance"
)

// WorkerDocument is a verification artifact uploaded by a worker. Its
// verification status is reviewed through the admin surface, independent of
// the booking and review lifecycle.
type WorkerDocument struct {
	ID                 uint               `json:"id" gorm:"primaryKey"`
	WorkerID           uint               `json:"worker_id" gorm:"not null;index"`
	DocumentType       DocumentType       `json:"document_type" gorm:"type:varchar(30);not null;check:document_type IN ('id','certificate','police_clearance')"`
	DocumentURL        string             `json:"document_url" gorm:"size:500;not null"`
	PublicID           string             `json:"-" gorm:"size:255"` // storage path, used for deletes
	VerificationStatus VerificationStatus `json:"verification_status" gorm:"type:varchar(20);not null;default:'pending'"`
	UploadedAt         time.Time          `json:"uploaded_at" gorm:"autoCreateTime"`

	// Relationships
	Worker User `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
}

// TableName specifies the table name for the WorkerDocument model
func (WorkerDocument) TableName() string {
	return "worker_documents"
}

// IsValidDocumentType checks whether t is a known document type
func IsValidDocumentType(t DocumentType) bool {
	switch t {
	case DocumentID, DocumentCertificate, DocumentPoliceClearance:
		return true
	default:
		return false
	}
}
