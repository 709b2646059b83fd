package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"aventura_tours/internal/domain/entities"
	"aventura_tours/internal/domain/finance"
	mock_interfaces "aventura_tours/internal/usecase/interfaces/mocks"
)

func newInstallmentUseCase(t *testing.T) (*InstallmentUseCase, *mock_interfaces.MockIInstallmentRepository, *mock_interfaces.MockIPaymentGateway, *mock_interfaces.MockIReminderNotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mock_interfaces.NewMockIInstallmentRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	notifier := mock_interfaces.NewMockIReminderNotifier(ctrl)
	uc := NewInstallmentUseCase(finance.DefaultConfig(), repo, gateway, notifier)
	return uc, repo, gateway, notifier
}

func futureDate(days int) *time.Time {
	d := time.Now().UTC().AddDate(0, 0, days)
	return &d
}

func TestInstallmentUseCase_Create(t *testing.T) {
	t.Run("validation failures accumulate", func(t *testing.T) {
		uc, _, _, _ := newInstallmentUseCase(t)

		_, err := uc.Create(context.Background(), CreateInstallmentCommand{
			Amount: decimal.Zero,
			Status: "WEIRD",
		})
		if !errors.Is(err, ErrValidationFailed) {
			t.Fatalf("expected ErrValidationFailed, got %v", err)
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %T", err)
		}
		if len(ve.Violations) < 3 {
			t.Fatalf("expected accumulated violations, got %v", ve.Violations)
		}
	})

	t.Run("create success defaults to pending", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PaymentInstallment{})).DoAndReturn(
			func(_ context.Context, inst entities.PaymentInstallment) (entities.PaymentInstallment, error) {
				if inst.ID == "" {
					t.Fatalf("expected generated id")
				}
				if inst.Status != entities.InstallmentStatusPending {
					t.Fatalf("expected PENDING, got %s", inst.Status)
				}
				if inst.CreatedAt.IsZero() {
					t.Fatalf("expected created_at")
				}
				if inst.ReminderSent {
					t.Fatalf("reminder flag must start false")
				}
				return inst, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateInstallmentCommand{
			ReservationID: " res-1 ",
			Amount:        decimal.RequireFromString("150.00"),
			DueDate:       futureDate(14),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ReservationID != "res-1" {
			t.Fatalf("expected trimmed reservation id, got %q", res.ReservationID)
		}
	})

	t.Run("explicit status token is normalized", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inst entities.PaymentInstallment) (entities.PaymentInstallment, error) {
				if inst.Status != entities.InstallmentStatusPending {
					t.Fatalf("expected PENDING, got %s", inst.Status)
				}
				return inst, nil
			},
		)

		_, err := uc.Create(context.Background(), CreateInstallmentCommand{
			ReservationID: "res-1",
			Amount:        decimal.RequireFromString("80.00"),
			DueDate:       futureDate(7),
			Status:        "pending",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentInstallment{}, errors.New("db"))

		_, err := uc.Create(context.Background(), CreateInstallmentCommand{
			ReservationID: "res-1",
			Amount:        decimal.RequireFromString("80.00"),
			DueDate:       futureDate(7),
		})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestInstallmentUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _, _, _ := newInstallmentUseCase(t)
		if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidInstallmentID) {
			t.Fatalf("expected ErrInvalidInstallmentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "inst-1").Return(entities.PaymentInstallment{}, nil)
		if _, err := uc.GetByID(context.Background(), "inst-1"); !errors.Is(err, ErrInstallmentNotFound) {
			t.Fatalf("expected ErrInstallmentNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "inst-1").Return(entities.PaymentInstallment{ID: "inst-1"}, nil)
		res, err := uc.GetByID(context.Background(), " inst-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "inst-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestInstallmentUseCase_MarkAsPaid(t *testing.T) {
	t.Run("terminal status rejected", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "inst-1").Return(entities.PaymentInstallment{
			ID:     "inst-1",
			Status: entities.InstallmentStatusPaid,
		}, nil)

		_, err := uc.MarkAsPaid(context.Background(), "inst-1", nil)
		if !errors.Is(err, ErrInstallmentClosed) {
			t.Fatalf("expected ErrInstallmentClosed, got %v", err)
		}
	})

	t.Run("gateway failure leaves status untouched", func(t *testing.T) {
		uc, repo, gateway, _ := newInstallmentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "inst-1").Return(entities.PaymentInstallment{
			ID:            "inst-1",
			ReservationID: "res-1",
			Amount:        decimal.RequireFromString("100.00"),
			Status:        entities.InstallmentStatusPending,
		}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("gateway down"))

		_, err := uc.MarkAsPaid(context.Background(), "inst-1", nil)
		if err == nil || err.Error() != "gateway down" {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})

	t.Run("overdue installment can still be paid", func(t *testing.T) {
		uc, repo, gateway, _ := newInstallmentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "inst-1").Return(entities.PaymentInstallment{
			ID:            "inst-1",
			ReservationID: "res-1",
			Amount:        decimal.RequireFromString("100.00"),
			Status:        entities.InstallmentStatusOverdue,
		}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload must be json: %v", err)
				}
				if m["external_reference"] != "inst-1" {
					t.Fatalf("expected external_reference, got %v", m["external_reference"])
				}
				if m["transaction_amount"] != 100.0 {
					t.Fatalf("expected installment amount as source of truth, got %v", m["transaction_amount"])
				}
				return "mp-777", "approved", json.RawMessage(`{}`), nil
			},
		)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inst entities.PaymentInstallment) (entities.PaymentInstallment, error) {
				if inst.Status != entities.InstallmentStatusPaid {
					t.Fatalf("expected PAID, got %s", inst.Status)
				}
				if inst.PaymentID != "mp-777" {
					t.Fatalf("expected payment link, got %q", inst.PaymentID)
				}
				return inst, nil
			},
		)

		res, err := uc.MarkAsPaid(context.Background(), "inst-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.InstallmentStatusPaid {
			t.Fatalf("expected PAID, got %s", res.Status)
		}
	})

	t.Run("row deleted during persist reports not found", func(t *testing.T) {
		uc, repo, gateway, _ := newInstallmentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "inst-1").Return(entities.PaymentInstallment{
			ID:            "inst-1",
			ReservationID: "res-1",
			Amount:        decimal.RequireFromString("100.00"),
			Status:        entities.InstallmentStatusPending,
		}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-777", "approved", json.RawMessage(`{}`), nil)
		// Conditional put lost the race: the repo signals it with a zero value.
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.PaymentInstallment{}, nil)

		res, err := uc.MarkAsPaid(context.Background(), "inst-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInstallmentNotFound) {
			t.Fatalf("expected ErrInstallmentNotFound, got %v", err)
		}
		if res.ID != "" {
			t.Fatalf("expected zero-value result, got %+v", res)
		}
	})
}

func TestInstallmentUseCase_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "inst-1").Return(entities.PaymentInstallment{
			ID:            "inst-1",
			ReservationID: "res-1",
			Amount:        decimal.RequireFromString("100.00"),
			DueDate:       futureDate(10),
			Status:        entities.InstallmentStatusPending,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inst entities.PaymentInstallment) (entities.PaymentInstallment, error) {
				if inst.Amount.String() != "220" {
					t.Fatalf("expected new amount, got %s", inst.Amount)
				}
				return inst, nil
			},
		)

		updated, err := uc.Update(context.Background(), UpdateInstallmentCommand{
			ID:      "inst-1",
			Amount:  decimal.RequireFromString("220.00"),
			DueDate: futureDate(20),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.ID != "inst-1" {
			t.Fatalf("unexpected result %+v", updated)
		}
	})

	t.Run("row deleted during persist reports not found", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "inst-1").Return(entities.PaymentInstallment{
			ID:            "inst-1",
			ReservationID: "res-1",
			Amount:        decimal.RequireFromString("100.00"),
			DueDate:       futureDate(10),
			Status:        entities.InstallmentStatusPending,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.PaymentInstallment{}, nil)

		_, err := uc.Update(context.Background(), UpdateInstallmentCommand{
			ID:      "inst-1",
			Amount:  decimal.RequireFromString("220.00"),
			DueDate: futureDate(20),
		})
		if !errors.Is(err, ErrInstallmentNotFound) {
			t.Fatalf("expected ErrInstallmentNotFound, got %v", err)
		}
	})
}

func TestInstallmentUseCase_Cancel(t *testing.T) {
	t.Run("cancelled installment stays cancelled", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "inst-1").Return(entities.PaymentInstallment{
			ID:     "inst-1",
			Status: entities.InstallmentStatusCancelled,
		}, nil)

		if _, err := uc.Cancel(context.Background(), "inst-1"); !errors.Is(err, ErrInstallmentClosed) {
			t.Fatalf("expected ErrInstallmentClosed, got %v", err)
		}
	})

	t.Run("pending installment cancels", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "inst-1").Return(entities.PaymentInstallment{
			ID:     "inst-1",
			Status: entities.InstallmentStatusPending,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inst entities.PaymentInstallment) (entities.PaymentInstallment, error) {
				if inst.Status != entities.InstallmentStatusCancelled {
					t.Fatalf("expected CANCELLED, got %s", inst.Status)
				}
				return inst, nil
			},
		)

		res, err := uc.Cancel(context.Background(), "inst-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.InstallmentStatusCancelled {
			t.Fatalf("expected CANCELLED, got %s", res.Status)
		}
	})

	t.Run("row deleted during persist reports not found", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "inst-1").Return(entities.PaymentInstallment{
			ID:     "inst-1",
			Status: entities.InstallmentStatusPending,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.PaymentInstallment{}, nil)

		if _, err := uc.Cancel(context.Background(), "inst-1"); !errors.Is(err, ErrInstallmentNotFound) {
			t.Fatalf("expected ErrInstallmentNotFound, got %v", err)
		}
	})
}

func TestInstallmentUseCase_Delete(t *testing.T) {
	t.Run("paid rows are retained", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "inst-1").Return(entities.PaymentInstallment{
			ID:     "inst-1",
			Status: entities.InstallmentStatusPaid,
		}, nil)

		if err := uc.Delete(context.Background(), "inst-1"); !errors.Is(err, ErrValidationFailed) {
			t.Fatalf("expected ErrValidationFailed, got %v", err)
		}
	})

	t.Run("pending row deletes", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "inst-1").Return(entities.PaymentInstallment{
			ID:     "inst-1",
			Status: entities.InstallmentStatusPending,
		}, nil)
		repo.EXPECT().Delete(gomock.Any(), "inst-1").Return(nil)

		if err := uc.Delete(context.Background(), "inst-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInstallmentUseCase_SweepOverdue(t *testing.T) {
	today := time.Date(2024, time.June, 10, 8, 0, 0, 0, time.UTC)
	past := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	t.Run("flags pending rows past due", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().ListOpenDueBefore(gomock.Any(), today).Return([]entities.PaymentInstallment{
			{ID: "late", Status: entities.InstallmentStatusPending, DueDate: &past},
			{ID: "already", Status: entities.InstallmentStatusOverdue, DueDate: &past},
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inst entities.PaymentInstallment) (entities.PaymentInstallment, error) {
				if inst.ID != "late" || inst.Status != entities.InstallmentStatusOverdue {
					t.Fatalf("unexpected update: %+v", inst)
				}
				return inst, nil
			},
		)

		flagged, err := uc.SweepOverdue(context.Background(), today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if flagged != 1 {
			t.Fatalf("expected 1 flagged, got %d", flagged)
		}
	})

	t.Run("re-run is a no-op", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().ListOpenDueBefore(gomock.Any(), today).Return([]entities.PaymentInstallment{
			{ID: "already", Status: entities.InstallmentStatusOverdue, DueDate: &past},
		}, nil)

		flagged, err := uc.SweepOverdue(context.Background(), today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if flagged != 0 {
			t.Fatalf("expected 0 flagged, got %d", flagged)
		}
	})

	t.Run("list failure aborts", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().ListOpenDueBefore(gomock.Any(), today).Return(nil, errors.New("db"))

		if _, err := uc.SweepOverdue(context.Background(), today); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("row lost during persist is not counted", func(t *testing.T) {
		uc, repo, _, _ := newInstallmentUseCase(t)
		repo.EXPECT().ListOpenDueBefore(gomock.Any(), today).Return([]entities.PaymentInstallment{
			{ID: "late", Status: entities.InstallmentStatusPending, DueDate: &past},
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.PaymentInstallment{}, nil)

		flagged, err := uc.SweepOverdue(context.Background(), today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if flagged != 0 {
			t.Fatalf("expected 0 flagged, got %d", flagged)
		}
	})
}

func TestInstallmentUseCase_SendDueReminders(t *testing.T) {
	today := time.Date(2024, time.June, 10, 8, 0, 0, 0, time.UTC)
	dueSoon := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)
	dueLater := time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC)

	t.Run("sends inside the window and flags the row", func(t *testing.T) {
		uc, repo, _, notifier := newInstallmentUseCase(t)
		amount := decimal.RequireFromString("200.00")
		repo.EXPECT().ListOpen(gomock.Any()).Return([]entities.PaymentInstallment{
			{ID: "soon", Status: entities.InstallmentStatusPending, DueDate: &dueSoon, Amount: amount},
			{ID: "later", Status: entities.InstallmentStatusPending, DueDate: &dueLater, Amount: amount},
			{ID: "sent", Status: entities.InstallmentStatusPending, DueDate: &dueSoon, Amount: amount, ReminderSent: true},
		}, nil)
		notifier.EXPECT().SendDueReminder(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inst entities.PaymentInstallment, totalDue decimal.Decimal) error {
				if inst.ID != "soon" {
					t.Fatalf("unexpected reminder for %s", inst.ID)
				}
				if !totalDue.Equal(amount) {
					t.Fatalf("expected no late fee before due date, got %s", totalDue)
				}
				return nil
			},
		)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inst entities.PaymentInstallment) (entities.PaymentInstallment, error) {
				if inst.ID != "soon" || !inst.ReminderSent {
					t.Fatalf("expected flagged reminder, got %+v", inst)
				}
				return inst, nil
			},
		)

		sent, err := uc.SendDueReminders(context.Background(), today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sent != 1 {
			t.Fatalf("expected 1 sent, got %d", sent)
		}
	})

	t.Run("failed dispatch is not flagged", func(t *testing.T) {
		uc, repo, _, notifier := newInstallmentUseCase(t)
		repo.EXPECT().ListOpen(gomock.Any()).Return([]entities.PaymentInstallment{
			{ID: "soon", Status: entities.InstallmentStatusPending, DueDate: &dueSoon, Amount: decimal.RequireFromString("200.00")},
		}, nil)
		notifier.EXPECT().SendDueReminder(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		sent, err := uc.SendDueReminders(context.Background(), today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sent != 0 {
			t.Fatalf("expected 0 sent, got %d", sent)
		}
	})

	t.Run("row lost during persist is not counted", func(t *testing.T) {
		uc, repo, _, notifier := newInstallmentUseCase(t)
		repo.EXPECT().ListOpen(gomock.Any()).Return([]entities.PaymentInstallment{
			{ID: "soon", Status: entities.InstallmentStatusPending, DueDate: &dueSoon, Amount: decimal.RequireFromString("200.00")},
		}, nil)
		notifier.EXPECT().SendDueReminder(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.PaymentInstallment{}, nil)

		sent, err := uc.SendDueReminders(context.Background(), today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sent != 0 {
			t.Fatalf("expected 0 sent, got %d", sent)
		}
	})
}

func TestInstallmentUseCase_TotalDue(t *testing.T) {
	uc, repo, _, _ := newInstallmentUseCase(t)
	due := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().GetByID(gomock.Any(), "inst-1").Return(entities.PaymentInstallment{
		ID:      "inst-1",
		Status:  entities.InstallmentStatusOverdue,
		Amount:  decimal.RequireFromString("1000.00"),
		DueDate: &due,
	}, nil)

	total, err := uc.TotalDue(context.Background(), "inst-1", time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !total.Equal(decimal.RequireFromString("1017.00")) {
		t.Fatalf("expected 1017.00, got %s", total)
	}
}
