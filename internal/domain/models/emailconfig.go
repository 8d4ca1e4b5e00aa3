// internal/domain/models/emailconfig.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmailConfig is the singleton SMTP configuration document. When present it
// overrides the process-level mail settings, so staff can point the site at
// a new provider from the dashboard and verify it with a test send.
type EmailConfig struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	SMTPHost string `bson:"smtp_host,omitempty" json:"smtpHost,omitempty"`
	SMTPPort int    `bson:"smtp_port,omitempty" json:"smtpPort,omitempty"`
	SMTPUser string `bson:"smtp_user,omitempty" json:"smtpUser,omitempty"`
	SMTPPass string `bson:"smtp_pass,omitempty" json:"-"` // never in JSON
	From     string `bson:"from,omitempty" json:"from,omitempty"`
	FromName string `bson:"from_name,omitempty" json:"fromName,omitempty"`

	UpdatedAt     *time.Time          `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
	UpdatedByID   *primitive.ObjectID `bson:"updated_by_id,omitempty" json:"-"`
	UpdatedByName string              `bson:"updated_by_name,omitempty" json:"-"`
}

// IsConfigured reports whether the document carries enough to send mail.
func (c *EmailConfig) IsConfigured() bool {
	return c.SMTPHost != "" && c.From != ""
}
