package project

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	clientDomain "freelance-engagement-backend/internal/domain/client"
	contractDomain "freelance-engagement-backend/internal/domain/contract"
	deliverableDomain "freelance-engagement-backend/internal/domain/deliverable"
	"freelance-engagement-backend/internal/domain/errs"
	projectDomain "freelance-engagement-backend/internal/domain/project"
	"freelance-engagement-backend/internal/domain/uow"
	"freelance-engagement-backend/internal/testutil/cachemock"
	"freelance-engagement-backend/internal/testutil/clientmock"
	"freelance-engagement-backend/internal/testutil/contractmock"
	"freelance-engagement-backend/internal/testutil/deliverablemock"
	"freelance-engagement-backend/internal/testutil/projectmock"
	"freelance-engagement-backend/internal/testutil/uowmock"
)

func activeProject() *projectDomain.Project {
	start := time.Now().UTC().AddDate(0, 0, -10)
	end := start.AddDate(0, 0, 20)
	return &projectDomain.Project{
		ProjectID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Code:      "PRJ-20260801-1a2b",
		ClientID:  "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		Name:      "Mobile app",
		StartDate: start,
		EndDate:   &end,
		Value:     decimal.NewFromInt(9000),
		Status:    projectDomain.StatusActive,
	}
}

func TestGet_RecomputesProgressOnColdCache(t *testing.T) {
	p := activeProject()
	projects := &projectmock.Repo{
		GetByProjectIDFn: func(context.Context, string) (*projectDomain.Project, error) {
			return p, nil
		},
	}
	deliverables := &deliverablemock.Repo{
		ListByProjectFn: func(context.Context, string) ([]deliverableDomain.Deliverable, error) {
			return []deliverableDomain.Deliverable{
				{Status: deliverableDomain.StatusApproved},
				{Status: deliverableDomain.StatusPending},
			}, nil
		},
	}
	var cached int
	cache := &cachemock.Progress{
		SetFn: func(_ context.Context, _ string, progress int) error {
			cached = progress
			return nil
		},
	}

	uc := NewUsecase(projects, &clientmock.Repo{}, deliverables, uowmock.New(), cache)
	dto, err := uc.Get(context.Background(), p.ProjectID)
	if err != nil {
		t.Fatal(err)
	}
	// tf = 0.5, df = 0.5: round(50*0.4 + 50*0.6) = 50
	if dto.Progress != 50 {
		t.Fatalf("Progress = %d, want 50", dto.Progress)
	}
	if cached != 50 {
		t.Fatalf("computed progress must be written back to the cache, got %d", cached)
	}
}

func TestGet_UsesCacheWhenFresh(t *testing.T) {
	p := activeProject()
	projects := &projectmock.Repo{
		GetByProjectIDFn: func(context.Context, string) (*projectDomain.Project, error) {
			return p, nil
		},
	}
	deliverables := &deliverablemock.Repo{
		ListByProjectFn: func(context.Context, string) ([]deliverableDomain.Deliverable, error) {
			t.Fatalf("fresh cache hit must not hit the repository")
			return nil, nil
		},
	}
	cache := &cachemock.Progress{
		GetFn: func(context.Context, string) (int, bool, error) {
			return 42, true, nil
		},
	}

	uc := NewUsecase(projects, &clientmock.Repo{}, deliverables, uowmock.New(), cache)
	dto, err := uc.Get(context.Background(), p.ProjectID)
	if err != nil {
		t.Fatal(err)
	}
	if dto.Progress != 42 {
		t.Fatalf("Progress = %d, want cached 42", dto.Progress)
	}
}

func TestGet_FinishedAlways100(t *testing.T) {
	p := activeProject()
	p.Status = projectDomain.StatusFinished
	p.Progress = 73
	projects := &projectmock.Repo{
		GetByProjectIDFn: func(context.Context, string) (*projectDomain.Project, error) {
			return p, nil
		},
	}

	uc := NewUsecase(projects, &clientmock.Repo{}, &deliverablemock.Repo{}, uowmock.New(), nil)
	dto, err := uc.Get(context.Background(), p.ProjectID)
	if err != nil {
		t.Fatal(err)
	}
	if dto.Progress != 100 {
		t.Fatalf("finished project Progress = %d, want 100", dto.Progress)
	}
}

func TestGet_CancelledFrozen(t *testing.T) {
	p := activeProject()
	p.Status = projectDomain.StatusCancelled
	p.Progress = 61
	projects := &projectmock.Repo{
		GetByProjectIDFn: func(context.Context, string) (*projectDomain.Project, error) {
			return p, nil
		},
	}
	deliverables := &deliverablemock.Repo{
		ListByProjectFn: func(context.Context, string) ([]deliverableDomain.Deliverable, error) {
			t.Fatalf("cancelled project must not recompute")
			return nil, nil
		},
	}

	uc := NewUsecase(projects, &clientmock.Repo{}, deliverables, uowmock.New(), nil)
	dto, err := uc.Get(context.Background(), p.ProjectID)
	if err != nil {
		t.Fatal(err)
	}
	if dto.Progress != 61 {
		t.Fatalf("cancelled project Progress = %d, want frozen 61", dto.Progress)
	}
}

func TestChangeStatus_FinishForces100(t *testing.T) {
	p := activeProject()
	var saved *projectDomain.Project
	projects := &projectmock.Repo{
		GetByProjectIDForUpdateFn: func(context.Context, string) (*projectDomain.Project, error) {
			return p, nil
		},
		SaveFn: func(_ context.Context, got *projectDomain.Project) error {
			saved = got
			return nil
		},
	}
	deliverables := &deliverablemock.Repo{}
	tx := uowmock.Passthrough(uow.Repos{Projects: projects, Deliverables: deliverables})

	invalidated := false
	cache := &cachemock.Progress{
		InvalidateFn: func(context.Context, string) error {
			invalidated = true
			return nil
		},
	}

	uc := NewUsecase(projects, &clientmock.Repo{}, deliverables, tx, cache)
	dto, err := uc.ChangeStatus(context.Background(), p.ProjectID, projectDomain.StatusFinished)
	if err != nil {
		t.Fatal(err)
	}
	if saved.Status != projectDomain.StatusFinished || saved.Progress != 100 {
		t.Fatalf("finish must store status=finished progress=100, got %+v", saved)
	}
	if dto.Progress != 100 {
		t.Fatalf("dto Progress = %d, want 100", dto.Progress)
	}
	if !invalidated {
		t.Fatalf("status change must invalidate the progress cache")
	}
}

func TestChangeStatus_CancelFreezesCurrentValue(t *testing.T) {
	p := activeProject()
	var saved *projectDomain.Project
	projects := &projectmock.Repo{
		GetByProjectIDForUpdateFn: func(context.Context, string) (*projectDomain.Project, error) {
			return p, nil
		},
		SaveFn: func(_ context.Context, got *projectDomain.Project) error {
			saved = got
			return nil
		},
	}
	deliverables := &deliverablemock.Repo{
		ListByProjectFn: func(context.Context, string) ([]deliverableDomain.Deliverable, error) {
			return []deliverableDomain.Deliverable{
				{Status: deliverableDomain.StatusApproved},
				{Status: deliverableDomain.StatusApproved},
			}, nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{Projects: projects, Deliverables: deliverables})

	uc := NewUsecase(projects, &clientmock.Repo{}, deliverables, tx, nil)
	if _, err := uc.ChangeStatus(context.Background(), p.ProjectID, projectDomain.StatusCancelled); err != nil {
		t.Fatal(err)
	}
	if saved.Status != projectDomain.StatusCancelled {
		t.Fatalf("status = %s, want cancelled", saved.Status)
	}
	// tf = 0.5, df = 1: round(50*0.4 + 100*0.6) = 80, computed before the
	// status flip and stored as the frozen value.
	if saved.Progress != 80 {
		t.Fatalf("frozen progress = %d, want 80", saved.Progress)
	}
}

func TestChangeStatus_CancelFinishedKeepsHundred(t *testing.T) {
	p := activeProject()
	p.Status = projectDomain.StatusFinished
	p.Progress = 100
	var saved *projectDomain.Project
	projects := &projectmock.Repo{
		GetByProjectIDForUpdateFn: func(context.Context, string) (*projectDomain.Project, error) {
			return p, nil
		},
		SaveFn: func(_ context.Context, got *projectDomain.Project) error {
			saved = got
			return nil
		},
	}
	deliverables := &deliverablemock.Repo{
		ListByProjectFn: func(context.Context, string) ([]deliverableDomain.Deliverable, error) {
			t.Fatalf("cancelling a finished project must not recompute progress")
			return nil, nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{Projects: projects, Deliverables: deliverables})

	uc := NewUsecase(projects, &clientmock.Repo{}, deliverables, tx, nil)
	dto, err := uc.ChangeStatus(context.Background(), p.ProjectID, projectDomain.StatusCancelled)
	if err != nil {
		t.Fatal(err)
	}
	if saved.Status != projectDomain.StatusCancelled || saved.Progress != 100 {
		t.Fatalf("saved = %s/%d, want cancelled/100", saved.Status, saved.Progress)
	}
	if dto.Progress != 100 {
		t.Fatalf("dto progress = %d, want 100", dto.Progress)
	}
}

func TestChangeStatus_IllegalTransition(t *testing.T) {
	p := activeProject()
	p.Status = projectDomain.StatusFinished
	projects := &projectmock.Repo{
		GetByProjectIDForUpdateFn: func(context.Context, string) (*projectDomain.Project, error) {
			return p, nil
		},
		SaveFn: func(context.Context, *projectDomain.Project) error {
			t.Fatalf("illegal transition must not save")
			return nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{Projects: projects, Deliverables: &deliverablemock.Repo{}})

	uc := NewUsecase(projects, &clientmock.Repo{}, &deliverablemock.Repo{}, tx, nil)
	_, err := uc.ChangeStatus(context.Background(), p.ProjectID, projectDomain.StatusActive)
	var ite *errs.InvalidTransitionError
	if !errors.As(err, &ite) {
		t.Fatalf("want InvalidTransitionError, got %v", err)
	}
}

func TestRegisterAdvance(t *testing.T) {
	p := activeProject()
	var added *projectDomain.Advance
	projects := &projectmock.Repo{
		GetByProjectIDFn: func(context.Context, string) (*projectDomain.Project, error) {
			return p, nil
		},
		AddAdvanceFn: func(_ context.Context, a *projectDomain.Advance) error {
			added = a
			return nil
		},
	}
	uc := NewUsecase(projects, &clientmock.Repo{}, &deliverablemock.Repo{}, uowmock.New(), nil)

	dto, err := uc.RegisterAdvance(context.Background(), p.ProjectID, "kickoff call done")
	if err != nil {
		t.Fatal(err)
	}
	if added == nil || added.Note != "kickoff call done" {
		t.Fatalf("advance not stored: %+v", added)
	}
	if dto.Note != "kickoff call done" {
		t.Fatalf("dto note mismatch: %q", dto.Note)
	}
}

func TestRegisterAdvance_EmptyNote(t *testing.T) {
	uc := NewUsecase(&projectmock.Repo{}, &clientmock.Repo{}, &deliverablemock.Repo{}, uowmock.New(), nil)
	_, err := uc.RegisterAdvance(context.Background(), "x", "")
	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestUpdateDates_SignedContractBlocksNarrowing(t *testing.T) {
	p := activeProject()
	cStart := p.StartDate.AddDate(0, 0, 2)
	cEnd := p.EndDate.AddDate(0, 0, -2)
	contracts := &contractmock.Repo{
		GetByProjectIDFn: func(context.Context, string) (*contractDomain.Contract, error) {
			return &contractDomain.Contract{
				ProjectID: p.ProjectID,
				Status:    contractDomain.StatusSigned,
				StartDate: cStart,
				EndDate:   cEnd,
			}, nil
		},
	}
	projects := &projectmock.Repo{
		GetByProjectIDForUpdateFn: func(context.Context, string) (*projectDomain.Project, error) {
			return p, nil
		},
		SaveFn: func(context.Context, *projectDomain.Project) error {
			t.Fatalf("narrowing past a signed contract must not save")
			return nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{
		Projects:     projects,
		Contracts:    contracts,
		Deliverables: &deliverablemock.Repo{},
	})
	uc := NewUsecase(projects, &clientmock.Repo{}, &deliverablemock.Repo{}, tx, nil)

	// Move the start past the contract's start date.
	newStart := cStart.AddDate(0, 0, 1)
	_, err := uc.UpdateDates(context.Background(), p.ProjectID, UpdateDatesInput{
		StartDate: newStart,
		EndDate:   p.EndDate,
	})
	var iv *errs.InvariantViolationError
	if !errors.As(err, &iv) {
		t.Fatalf("want InvariantViolationError, got %v", err)
	}
}

func TestUpdateDates_DeliverableDueDateBlocksNarrowing(t *testing.T) {
	p := activeProject()
	due := p.EndDate.AddDate(0, 0, -1)
	deliverables := &deliverablemock.Repo{
		ListByProjectFn: func(context.Context, string) ([]deliverableDomain.Deliverable, error) {
			return []deliverableDomain.Deliverable{{DueDate: due}}, nil
		},
	}
	contracts := &contractmock.Repo{
		GetByProjectIDFn: func(context.Context, string) (*contractDomain.Contract, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	projects := &projectmock.Repo{
		GetByProjectIDForUpdateFn: func(context.Context, string) (*projectDomain.Project, error) {
			return p, nil
		},
		SaveFn: func(context.Context, *projectDomain.Project) error {
			t.Fatalf("narrowing past a due date must not save")
			return nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{
		Projects:     projects,
		Contracts:    contracts,
		Deliverables: deliverables,
	})
	uc := NewUsecase(projects, &clientmock.Repo{}, deliverables, tx, nil)

	// New end before the deliverable's due date.
	newEnd := due.AddDate(0, 0, -3)
	_, err := uc.UpdateDates(context.Background(), p.ProjectID, UpdateDatesInput{
		StartDate: p.StartDate,
		EndDate:   &newEnd,
	})
	var iv *errs.InvariantViolationError
	if !errors.As(err, &iv) {
		t.Fatalf("want InvariantViolationError, got %v", err)
	}
}

func TestUpdateDates_WideningAllowed(t *testing.T) {
	p := activeProject()
	var saved *projectDomain.Project
	projects := &projectmock.Repo{
		GetByProjectIDForUpdateFn: func(context.Context, string) (*projectDomain.Project, error) {
			return p, nil
		},
		SaveFn: func(_ context.Context, got *projectDomain.Project) error {
			saved = got
			return nil
		},
	}
	contracts := &contractmock.Repo{
		GetByProjectIDFn: func(context.Context, string) (*contractDomain.Contract, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	tx := uowmock.Passthrough(uow.Repos{
		Projects:     projects,
		Contracts:    contracts,
		Deliverables: &deliverablemock.Repo{},
	})
	uc := NewUsecase(projects, &clientmock.Repo{}, &deliverablemock.Repo{}, tx, nil)

	newEnd := p.EndDate.AddDate(0, 1, 0)
	dto, err := uc.UpdateDates(context.Background(), p.ProjectID, UpdateDatesInput{
		StartDate: p.StartDate,
		EndDate:   &newEnd,
	})
	if err != nil {
		t.Fatal(err)
	}
	if saved == nil || !saved.EndDate.Equal(newEnd) {
		t.Fatalf("end date not widened: %+v", saved)
	}
	if dto == nil {
		t.Fatalf("nil dto")
	}
}

func TestCreate_UnknownClient(t *testing.T) {
	clients := &clientmock.Repo{
		GetByClientIDFn: func(context.Context, string) (*clientDomain.Client, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(&projectmock.Repo{}, clients, &deliverablemock.Repo{}, uowmock.New(), nil)

	start := time.Now().UTC()
	_, err := uc.Create(context.Background(), CreateInput{
		ClientID:  "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		Name:      "x",
		StartDate: start,
		Value:     decimal.NewFromInt(1),
	})
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "client" {
		t.Fatalf("want client NotFoundError, got %v", err)
	}
}
