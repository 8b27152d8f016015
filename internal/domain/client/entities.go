package client

import (
	"regexp"
	"strings"
	"time"

	"freelance-engagement-backend/internal/domain/errs"
)

var reEmail = regexp.MustCompile(`^[\w.+-]+@[\w-]+(\.[\w-]+)+$`)

type Client struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	ClientID  string    `gorm:"size:32;uniqueIndex:ux_clients_client_id" json:"client_id"`
	Name      string    `gorm:"size:120" json:"name"`
	Email     string    `gorm:"size:190;uniqueIndex:ux_clients_email" json:"email"`
	Phone     string    `gorm:"size:32" json:"phone"`
	Company   string    `gorm:"size:120" json:"company"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Client) TableName() string { return "clients" }

// Validate is pure; it reports every broken rule at once.
func (c *Client) Validate() []errs.Violation {
	var out []errs.Violation
	if strings.TrimSpace(c.Name) == "" {
		out = append(out, errs.Violation{Field: "name", Rule: "is required"})
	}
	if !reEmail.MatchString(c.Email) {
		out = append(out, errs.Violation{Field: "email", Rule: "must be a valid email address"})
	}
	if strings.TrimSpace(c.Phone) == "" {
		out = append(out, errs.Violation{Field: "phone", Rule: "is required"})
	}
	if strings.TrimSpace(c.Company) == "" {
		out = append(out, errs.Violation{Field: "company", Rule: "is required"})
	}
	return out
}
