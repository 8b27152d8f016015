package deliverable

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	deliverableDomain "freelance-engagement-backend/internal/domain/deliverable"
	"freelance-engagement-backend/internal/domain/errs"
	projectDomain "freelance-engagement-backend/internal/domain/project"
	"freelance-engagement-backend/internal/domain/uow"
	"freelance-engagement-backend/internal/testutil/cachemock"
	"freelance-engagement-backend/internal/testutil/deliverablemock"
	"freelance-engagement-backend/internal/testutil/projectmock"
	"freelance-engagement-backend/internal/testutil/uowmock"
)

func owningProject() *projectDomain.Project {
	start := time.Now().UTC().AddDate(0, 0, -10)
	end := start.AddDate(0, 0, 20)
	return &projectDomain.Project{
		ProjectID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		ClientID:  "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		Name:      "Mobile app",
		StartDate: start,
		EndDate:   &end,
		Status:    projectDomain.StatusActive,
	}
}

func TestCreate_AssignsNextOrderIndexAndRecomputes(t *testing.T) {
	p := owningProject()
	var created *deliverableDomain.Deliverable
	var savedProject *projectDomain.Project

	deliverables := &deliverablemock.Repo{
		MaxOrderIndexFn: func(context.Context, string) (int, error) { return 2, nil },
		CreateFn: func(_ context.Context, d *deliverableDomain.Deliverable) error {
			created = d
			return nil
		},
		ListByProjectFn: func(context.Context, string) ([]deliverableDomain.Deliverable, error) {
			return []deliverableDomain.Deliverable{
				{Status: deliverableDomain.StatusApproved},
				{Status: deliverableDomain.StatusApproved},
				{Status: deliverableDomain.StatusPending},
			}, nil
		},
	}
	projects := &projectmock.Repo{
		GetByProjectIDForUpdateFn: func(context.Context, string) (*projectDomain.Project, error) {
			return p, nil
		},
		SaveFn: func(_ context.Context, got *projectDomain.Project) error {
			savedProject = got
			return nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{Deliverables: deliverables, Projects: projects})

	invalidated := false
	cache := &cachemock.Progress{
		InvalidateFn: func(context.Context, string) error {
			invalidated = true
			return nil
		},
	}

	uc := NewUsecase(deliverables, tx, cache)
	dto, err := uc.Create(context.Background(), CreateInput{
		ProjectID:   p.ProjectID,
		Title:       "Wireframes",
		Description: "All screens",
		DueDate:     p.StartDate.AddDate(0, 0, 15),
	})
	if err != nil {
		t.Fatalf("Create: unexpected err %v", err)
	}
	if created.OrderIndex != 3 {
		t.Fatalf("OrderIndex = %d, want max+1 = 3", created.OrderIndex)
	}
	if created.Status != deliverableDomain.StatusPending {
		t.Fatalf("new deliverable status = %s, want pending", created.Status)
	}
	// tf = 0.5, df = 2/3: round(50*0.4 + 66.66*0.6) = 60
	if savedProject == nil || savedProject.Progress != 60 {
		t.Fatalf("project progress not refreshed in the same unit: %+v", savedProject)
	}
	if dto.ProjectProgress != 60 {
		t.Fatalf("dto ProjectProgress = %d, want 60", dto.ProjectProgress)
	}
	if !invalidated {
		t.Fatalf("create must invalidate the cached progress")
	}
}

func TestCreate_DueDateOutsideSpan(t *testing.T) {
	p := owningProject()
	deliverables := &deliverablemock.Repo{
		CreateFn: func(context.Context, *deliverableDomain.Deliverable) error {
			t.Fatalf("out-of-span deliverable must not be created")
			return nil
		},
	}
	projects := &projectmock.Repo{
		GetByProjectIDForUpdateFn: func(context.Context, string) (*projectDomain.Project, error) {
			return p, nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{Deliverables: deliverables, Projects: projects})
	uc := NewUsecase(deliverables, tx, nil)

	_, err := uc.Create(context.Background(), CreateInput{
		ProjectID:   p.ProjectID,
		Title:       "Late",
		Description: "x",
		DueDate:     p.EndDate.AddDate(0, 0, 5),
	})
	var iv *errs.InvariantViolationError
	if !errors.As(err, &iv) {
		t.Fatalf("want InvariantViolationError, got %v", err)
	}
}

func TestCreate_UnknownProject(t *testing.T) {
	projects := &projectmock.Repo{
		GetByProjectIDForUpdateFn: func(context.Context, string) (*projectDomain.Project, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	tx := uowmock.Passthrough(uow.Repos{Deliverables: &deliverablemock.Repo{}, Projects: projects})
	uc := NewUsecase(&deliverablemock.Repo{}, tx, nil)

	_, err := uc.Create(context.Background(), CreateInput{
		ProjectID:   "missing",
		Title:       "x",
		Description: "y",
		DueDate:     time.Now().UTC(),
	})
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "project" {
		t.Fatalf("want project NotFoundError, got %v", err)
	}
}

func TestChangeStatus_DeliveredStampsDate(t *testing.T) {
	p := owningProject()
	d := &deliverableDomain.Deliverable{
		DeliverableID: "dddddddddddddddddddddddddddddddd",
		ProjectID:     p.ProjectID,
		Title:         "Wireframes",
		Description:   "x",
		DueDate:       p.StartDate.AddDate(0, 0, 15),
		Status:        deliverableDomain.StatusInProgress,
	}

	var savedDeliverable *deliverableDomain.Deliverable
	var savedProject *projectDomain.Project
	deliverables := &deliverablemock.Repo{
		GetByDeliverableIDForUpdateFn: func(context.Context, string) (*deliverableDomain.Deliverable, error) {
			return d, nil
		},
		SaveFn: func(_ context.Context, got *deliverableDomain.Deliverable) error {
			savedDeliverable = got
			return nil
		},
		ListByProjectFn: func(context.Context, string) ([]deliverableDomain.Deliverable, error) {
			return []deliverableDomain.Deliverable{*d}, nil
		},
	}
	projects := &projectmock.Repo{
		GetByProjectIDForUpdateFn: func(context.Context, string) (*projectDomain.Project, error) {
			return p, nil
		},
		SaveFn: func(_ context.Context, got *projectDomain.Project) error {
			savedProject = got
			return nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{Deliverables: deliverables, Projects: projects})
	uc := NewUsecase(deliverables, tx, nil)

	dto, err := uc.ChangeStatus(context.Background(), d.DeliverableID, deliverableDomain.StatusDelivered, "handed over")
	if err != nil {
		t.Fatalf("ChangeStatus: unexpected err %v", err)
	}
	if savedDeliverable.Status != deliverableDomain.StatusDelivered || savedDeliverable.DeliveredAt == nil {
		t.Fatalf("delivered must stamp the delivery date: %+v", savedDeliverable)
	}
	if savedDeliverable.Notes != "handed over" {
		t.Fatalf("note not stored: %q", savedDeliverable.Notes)
	}
	// One deliverable, delivered: tf = 0.5, df = 1: round(20 + 60) = 80.
	if savedProject == nil || savedProject.Progress != 80 {
		t.Fatalf("project progress not recomputed in the same unit: %+v", savedProject)
	}
	if dto.ProjectProgress != 80 {
		t.Fatalf("dto ProjectProgress = %d, want 80", dto.ProjectProgress)
	}
}

func TestChangeStatus_ApprovedIsFrozen(t *testing.T) {
	d := &deliverableDomain.Deliverable{
		DeliverableID: "dddddddddddddddddddddddddddddddd",
		ProjectID:     "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Status:        deliverableDomain.StatusApproved,
	}
	deliverables := &deliverablemock.Repo{
		GetByDeliverableIDForUpdateFn: func(context.Context, string) (*deliverableDomain.Deliverable, error) {
			return d, nil
		},
		SaveFn: func(context.Context, *deliverableDomain.Deliverable) error {
			t.Fatalf("approved deliverable must never be saved again")
			return nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{Deliverables: deliverables, Projects: &projectmock.Repo{}})
	uc := NewUsecase(deliverables, tx, nil)

	for _, target := range []deliverableDomain.Status{
		deliverableDomain.StatusPending,
		deliverableDomain.StatusInProgress,
		deliverableDomain.StatusDelivered,
		deliverableDomain.StatusRejected,
	} {
		_, err := uc.ChangeStatus(context.Background(), d.DeliverableID, target, "")
		var ite *errs.InvalidTransitionError
		if !errors.As(err, &ite) {
			t.Fatalf("approved -> %s: want InvalidTransitionError, got %v", target, err)
		}
	}
}

func TestChangeStatus_SkippingStatesRejected(t *testing.T) {
	d := &deliverableDomain.Deliverable{
		DeliverableID: "dddddddddddddddddddddddddddddddd",
		ProjectID:     "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Status:        deliverableDomain.StatusPending,
	}
	deliverables := &deliverablemock.Repo{
		GetByDeliverableIDForUpdateFn: func(context.Context, string) (*deliverableDomain.Deliverable, error) {
			return d, nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{Deliverables: deliverables, Projects: &projectmock.Repo{}})
	uc := NewUsecase(deliverables, tx, nil)

	_, err := uc.ChangeStatus(context.Background(), d.DeliverableID, deliverableDomain.StatusApproved, "")
	var ite *errs.InvalidTransitionError
	if !errors.As(err, &ite) {
		t.Fatalf("pending -> approved: want InvalidTransitionError, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	deliverables := &deliverablemock.Repo{
		GetByDeliverableIDFn: func(context.Context, string) (*deliverableDomain.Deliverable, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(deliverables, uowmock.New(), nil)
	_, err := uc.Get(context.Background(), "missing")
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
}
