package mysql

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	clientDomain "freelance-engagement-backend/internal/domain/client"
	contractDomain "freelance-engagement-backend/internal/domain/contract"
	deliverableDomain "freelance-engagement-backend/internal/domain/deliverable"
	ledgerDomain "freelance-engagement-backend/internal/domain/ledger"
	projectDomain "freelance-engagement-backend/internal/domain/project"
	proposalDomain "freelance-engagement-backend/internal/domain/proposal"
	"freelance-engagement-backend/pkg/id"
)

// openTestDB creates an in-memory sqlite DB with the full schema.
// TranslateError makes unique-key violations surface as
// gorm.ErrDuplicatedKey, same as the mysql driver in production.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&clientDomain.Client{},
		&proposalDomain.Proposal{},
		&projectDomain.Project{},
		&projectDomain.Advance{},
		&contractDomain.Contract{},
		&deliverableDomain.Deliverable{},
		&ledgerDomain.Entry{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedClient(t *testing.T, db *gorm.DB) *clientDomain.Client {
	t.Helper()
	c := &clientDomain.Client{
		ClientID: id.NewID32(),
		Name:     "Acme Studio",
		Email:    id.NewID32() + "@acme.example.com",
		Phone:    "+34 600 000 000",
		Company:  "Acme SL",
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return c
}

func seedProposal(t *testing.T, db *gorm.DB, clientID string) *proposalDomain.Proposal {
	t.Helper()
	p := &proposalDomain.Proposal{
		ProposalID:  id.NewID32(),
		Number:      id.NewRef("PROP", time.Now().UTC()),
		ClientID:    clientID,
		Title:       "Website redesign",
		Description: "Full redesign",
		Price:       decimal.NewFromInt(2500),
		Terms:       "50/50",
		Deadline:    time.Now().UTC().AddDate(0, 1, 0),
		Status:      proposalDomain.StatusPending,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed proposal: %v", err)
	}
	return p
}

func seedProject(t *testing.T, db *gorm.DB, clientID string) *projectDomain.Project {
	t.Helper()
	start := time.Now().UTC().AddDate(0, 0, -10)
	end := start.AddDate(0, 0, 30)
	p := &projectDomain.Project{
		ProjectID: id.NewID32(),
		Code:      id.NewRef("PRJ", time.Now().UTC()),
		ClientID:  clientID,
		Name:      "Mobile app",
		StartDate: start,
		EndDate:   &end,
		Value:     decimal.NewFromInt(9000),
		Status:    projectDomain.StatusActive,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return p
}
