package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"aventura_tours/internal/domain/entities"
	"aventura_tours/internal/domain/finance"
	"aventura_tours/internal/usecase/interfaces"
)

// CreateInstallmentCommand is the input for scheduling a new installment.
type CreateInstallmentCommand struct {
	ReservationID string
	Amount        decimal.Decimal
	DueDate       *time.Time
	Status        string
}

// UpdateInstallmentCommand carries the mutable fields of an installment.
// Status changes never go through Update; they flow through the pay/cancel
// operations and the overdue sweep so the transition table stays in charge.
type UpdateInstallmentCommand struct {
	ID      string
	Amount  decimal.Decimal
	DueDate *time.Time
}

// IInstallmentUseCase exposes the installment lifecycle operations.
//
// The pure rules live in internal/domain/finance; this layer wires them to
// persistence, the payment gateway and the reminder notifier.
type IInstallmentUseCase interface {
	Create(ctx context.Context, cmd CreateInstallmentCommand) (entities.PaymentInstallment, error)
	GetByID(ctx context.Context, id string) (entities.PaymentInstallment, error)
	ListByReservationID(ctx context.Context, reservationID string) ([]entities.PaymentInstallment, error)
	Update(ctx context.Context, cmd UpdateInstallmentCommand) (entities.PaymentInstallment, error)
	Delete(ctx context.Context, id string) error
	MarkAsPaid(ctx context.Context, id string, paymentPayload json.RawMessage) (entities.PaymentInstallment, error)
	Cancel(ctx context.Context, id string) (entities.PaymentInstallment, error)
	TotalDue(ctx context.Context, id string, today time.Time) (decimal.Decimal, error)
	SweepOverdue(ctx context.Context, today time.Time) (int, error)
	SendDueReminders(ctx context.Context, today time.Time) (int, error)
}

type InstallmentUseCase struct {
	cfg      finance.Config
	repo     interfaces.IInstallmentRepository
	gateway  interfaces.IPaymentGateway
	notifier interfaces.IReminderNotifier
}

var _ IInstallmentUseCase = (*InstallmentUseCase)(nil)

func NewInstallmentUseCase(
	cfg finance.Config,
	repo interfaces.IInstallmentRepository,
	gateway interfaces.IPaymentGateway,
	notifier interfaces.IReminderNotifier,
) *InstallmentUseCase {
	return &InstallmentUseCase{cfg: cfg, repo: repo, gateway: gateway, notifier: notifier}
}

func (u *InstallmentUseCase) Create(ctx context.Context, cmd CreateInstallmentCommand) (entities.PaymentInstallment, error) {
	inst := entities.PaymentInstallment{
		ReservationID: strings.TrimSpace(cmd.ReservationID),
		Amount:        cmd.Amount,
		DueDate:       cmd.DueDate,
	}
	if s := strings.TrimSpace(cmd.Status); s != "" {
		inst.Status = entities.InstallmentStatus(strings.ToUpper(s))
	}

	if violations := finance.ValidateForCreation(u.cfg, &inst, time.Now().UTC()); len(violations) > 0 {
		log.Printf("[installment][usecase] create rejected reservation_id=%s violations=%d", cmd.ReservationID, len(violations))
		return entities.PaymentInstallment{}, newValidationError(violations)
	}

	if inst.Status == "" {
		inst.Status = entities.InstallmentStatusPending
	} else {
		// Already validated above; normalize the casing.
		status, _ := entities.ParseInstallmentStatus(string(inst.Status))
		inst.Status = status
	}
	inst.ID = uuid.NewString()
	inst.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, inst)
	if err != nil {
		log.Printf("[installment][usecase] create failed reservation_id=%s err=%v", inst.ReservationID, err)
		return entities.PaymentInstallment{}, err
	}
	log.Printf("[installment][usecase] create success id=%s reservation_id=%s amount=%s", created.ID, created.ReservationID, created.Amount.StringFixed(2))
	return created, nil
}

func (u *InstallmentUseCase) GetByID(ctx context.Context, id string) (entities.PaymentInstallment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentInstallment{}, ErrInvalidInstallmentID
	}

	inst, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentInstallment{}, err
	}
	if inst.ID == "" {
		return entities.PaymentInstallment{}, ErrInstallmentNotFound
	}
	return inst, nil
}

func (u *InstallmentUseCase) ListByReservationID(ctx context.Context, reservationID string) ([]entities.PaymentInstallment, error) {
	reservationID = strings.TrimSpace(reservationID)
	if reservationID == "" {
		return nil, ErrInvalidReservationID
	}
	return u.repo.ListByReservationID(ctx, reservationID)
}

func (u *InstallmentUseCase) Update(ctx context.Context, cmd UpdateInstallmentCommand) (entities.PaymentInstallment, error) {
	existing, err := u.GetByID(ctx, cmd.ID)
	if err != nil {
		return entities.PaymentInstallment{}, err
	}

	existing.Amount = cmd.Amount
	existing.DueDate = cmd.DueDate
	if violations := finance.ValidateForUpdate(u.cfg, &existing, time.Now().UTC()); len(violations) > 0 {
		return entities.PaymentInstallment{}, newValidationError(violations)
	}

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		log.Printf("[installment][usecase] update failed id=%s err=%v", existing.ID, err)
		return entities.PaymentInstallment{}, err
	}
	if updated.ID == "" {
		return entities.PaymentInstallment{}, ErrInstallmentNotFound
	}
	log.Printf("[installment][usecase] update success id=%s", updated.ID)
	return updated, nil
}

func (u *InstallmentUseCase) Delete(ctx context.Context, id string) error {
	inst, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if violations := finance.ValidateForDeletion(&inst); len(violations) > 0 {
		return newValidationError(violations)
	}
	if err := u.repo.Delete(ctx, inst.ID); err != nil {
		log.Printf("[installment][usecase] delete failed id=%s err=%v", inst.ID, err)
		return err
	}
	log.Printf("[installment][usecase] delete success id=%s", inst.ID)
	return nil
}

func (u *InstallmentUseCase) MarkAsPaid(ctx context.Context, id string, paymentPayload json.RawMessage) (entities.PaymentInstallment, error) {
	inst, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentInstallment{}, err
	}
	if !finance.CanBeMarkedAsPaid(&inst) {
		log.Printf("[installment][usecase] pay rejected id=%s status=%s", inst.ID, inst.Status)
		return entities.PaymentInstallment{}, fmt.Errorf("%w: %s", ErrInstallmentClosed, inst.Status)
	}
	if u.gateway == nil {
		return entities.PaymentInstallment{}, ErrPaymentGatewayNotConfigured
	}

	payload := u.enrichPaymentPayload(inst, paymentPayload)
	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[installment][usecase] payment gateway failed id=%s err=%v", inst.ID, err)
		return entities.PaymentInstallment{}, err
	}
	log.Printf("[installment][usecase] payment gateway success id=%s provider_payment_id=%s provider_status=%s", inst.ID, providerPaymentID, providerStatus)

	if err := finance.Transition(&inst, string(entities.InstallmentStatusPaid)); err != nil {
		return entities.PaymentInstallment{}, err
	}
	inst.PaymentID = providerPaymentID

	updated, err := u.repo.Update(ctx, inst)
	if err != nil {
		log.Printf("[installment][usecase] pay persist failed id=%s err=%v", inst.ID, err)
		return entities.PaymentInstallment{}, err
	}
	if updated.ID == "" {
		log.Printf("[installment][usecase] pay persist lost row id=%s payment_id=%s", inst.ID, inst.PaymentID)
		return entities.PaymentInstallment{}, ErrInstallmentNotFound
	}
	log.Printf("[installment][usecase] pay success id=%s payment_id=%s", updated.ID, updated.PaymentID)
	return updated, nil
}

func (u *InstallmentUseCase) Cancel(ctx context.Context, id string) (entities.PaymentInstallment, error) {
	inst, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentInstallment{}, err
	}
	if !finance.CanBeCancelled(&inst) {
		log.Printf("[installment][usecase] cancel rejected id=%s status=%s", inst.ID, inst.Status)
		return entities.PaymentInstallment{}, fmt.Errorf("%w: %s", ErrInstallmentClosed, inst.Status)
	}
	if err := finance.Transition(&inst, string(entities.InstallmentStatusCancelled)); err != nil {
		return entities.PaymentInstallment{}, err
	}

	updated, err := u.repo.Update(ctx, inst)
	if err != nil {
		log.Printf("[installment][usecase] cancel persist failed id=%s err=%v", inst.ID, err)
		return entities.PaymentInstallment{}, err
	}
	if updated.ID == "" {
		return entities.PaymentInstallment{}, ErrInstallmentNotFound
	}
	log.Printf("[installment][usecase] cancel success id=%s", updated.ID)
	return updated, nil
}

func (u *InstallmentUseCase) TotalDue(ctx context.Context, id string, today time.Time) (decimal.Decimal, error) {
	inst, err := u.GetByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return finance.TotalAmountDue(u.cfg, &inst, today), nil
}

// SweepOverdue flags open installments whose due date has passed. Re-running
// the sweep is safe: rows already OVERDUE are skipped before the transition
// is attempted, since OVERDUE -> OVERDUE is not in the table.
func (u *InstallmentUseCase) SweepOverdue(ctx context.Context, today time.Time) (int, error) {
	log.Printf("[installment][job] overdue sweep start today=%s", today.Format("2006-01-02"))
	open, err := u.repo.ListOpenDueBefore(ctx, today)
	if err != nil {
		log.Printf("[installment][job] overdue sweep list failed err=%v", err)
		return 0, err
	}

	flagged := 0
	for _, inst := range open {
		if inst.Status == entities.InstallmentStatusOverdue {
			continue
		}
		if finance.DaysOverdue(inst.DueDate, today) == 0 {
			continue
		}
		if err := finance.Transition(&inst, string(entities.InstallmentStatusOverdue)); err != nil {
			log.Printf("[installment][job] overdue transition skipped id=%s status=%s err=%v", inst.ID, inst.Status, err)
			continue
		}
		persisted, err := u.repo.Update(ctx, inst)
		if err != nil {
			log.Printf("[installment][job] overdue persist failed id=%s err=%v", inst.ID, err)
			continue
		}
		if persisted.ID == "" {
			log.Printf("[installment][job] overdue persist lost row id=%s", inst.ID)
			continue
		}
		flagged++
	}
	log.Printf("[installment][job] overdue sweep done scanned=%d flagged=%d", len(open), flagged)
	return flagged, nil
}

// SendDueReminders dispatches payment reminders for installments entering the
// reminder window. ReminderSent only flips after a successful send, so a
// failed dispatch is retried on the next run and a sent one never repeats.
func (u *InstallmentUseCase) SendDueReminders(ctx context.Context, today time.Time) (int, error) {
	log.Printf("[installment][job] reminder run start today=%s", today.Format("2006-01-02"))
	open, err := u.repo.ListOpen(ctx)
	if err != nil {
		log.Printf("[installment][job] reminder run list failed err=%v", err)
		return 0, err
	}

	sent := 0
	for _, inst := range open {
		if !finance.ShouldSendReminder(u.cfg, &inst, today) {
			continue
		}
		totalDue := finance.TotalAmountDue(u.cfg, &inst, today)
		if err := u.notifier.SendDueReminder(ctx, inst, totalDue); err != nil {
			log.Printf("[installment][job] reminder send failed id=%s err=%v", inst.ID, err)
			continue
		}
		inst.ReminderSent = true
		persisted, err := u.repo.Update(ctx, inst)
		if err != nil {
			log.Printf("[installment][job] reminder persist failed id=%s err=%v", inst.ID, err)
			continue
		}
		if persisted.ID == "" {
			log.Printf("[installment][job] reminder persist lost row id=%s", inst.ID)
			continue
		}
		sent++
	}
	log.Printf("[installment][job] reminder run done scanned=%d sent=%d", len(open), sent)
	return sent, nil
}

// enrichPaymentPayload fills the reconciliation fields Mercado Pago expects
// when the caller did not provide them. The installment amount in the
// database is the source of truth for the charge.
func (u *InstallmentUseCase) enrichPaymentPayload(inst entities.PaymentInstallment, payload json.RawMessage) json.RawMessage {
	if len(payload) == 0 || !json.Valid(payload) {
		payload = json.RawMessage("{}")
	}
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return payload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = inst.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Installment %s for reservation %s", inst.ID, inst.ReservationID)
	}
	reqMap["transaction_amount"] = inst.Amount.InexactFloat64()
	if b, err := json.Marshal(reqMap); err == nil {
		return b
	}
	return payload
}
