package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/piresc/campusride/internal/pkg/access"
	"github.com/piresc/campusride/internal/pkg/apperror"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
)

// Checkout verifies a payment made by the caller and records it together with
// the seat it pays for. Replaying the same reference returns the first result.
func (uc *transactionUC) Checkout(ctx context.Context, s *models.Session, req models.CheckoutRequest) (*models.CheckoutResult, error) {
	if err := access.RequireSession(s); err != nil {
		return nil, err
	}
	if err := uc.validator.Validate(req); err != nil {
		return nil, err
	}
	student, err := uc.userRepo.GetUser(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	return uc.settle(ctx, req.TripID, student, req.Reference)
}

// HandlePaymentWebhook completes reservations for charges whose client never
// reached Checkout. Deliveries that can never succeed are acknowledged and
// logged so the provider stops retrying them.
func (uc *transactionUC) HandlePaymentWebhook(ctx context.Context, signature string, body []byte) error {
	if !uc.paymentGW.ValidSignature(signature, body) {
		logger.WarnCtx(ctx, "Rejected payment webhook with invalid signature")
		return apperror.Unauthenticated()
	}

	var event models.PaymentWebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return apperror.Validation("invalid webhook payload")
	}
	if event.Event != models.PaymentEventChargeSuccess {
		logger.Debug("Ignoring payment webhook", logger.String("event", event.Event))
		return nil
	}

	meta := event.Data.Metadata
	if meta.Trip == "" || meta.Student == "" {
		logger.WarnCtx(ctx, "Ignoring charge without trip metadata", logger.String("reference", event.Data.Reference))
		return nil
	}

	err := uc.completeFromWebhook(ctx, meta, event.Data.Reference)
	if err == nil {
		return nil
	}
	switch apperror.KindOf(err) {
	case apperror.KindNotFound, apperror.KindForbidden, apperror.KindValidation, apperror.KindConflict:
		logger.WarnCtx(ctx, "Payment webhook could not be applied",
			logger.String("reference", event.Data.Reference),
			logger.String("trip_id", meta.Trip),
			logger.String("reason", apperror.Message(err)))
		return nil
	default:
		return err
	}
}

func (uc *transactionUC) completeFromWebhook(ctx context.Context, meta models.PaymentMetadata, reference string) error {
	student, err := uc.userRepo.GetUser(ctx, meta.Student)
	if err != nil {
		return err
	}
	result, err := uc.settle(ctx, meta.Trip, student, reference)
	if err != nil {
		return err
	}
	if result.Created {
		logger.InfoCtx(ctx, "Checkout completed from payment webhook",
			logger.String("transaction_id", result.Transaction.ID),
			logger.String("student_id", student.ID))
	}
	return nil
}

// settle is the shared path of Checkout and the webhook
func (uc *transactionUC) settle(ctx context.Context, tripID string, student *models.User, reference string) (*models.CheckoutResult, error) {
	if student.Role != models.RoleStudent {
		return nil, apperror.Forbidden("only students can join trips")
	}

	trips, err := uc.tripUC.GetTripsByIDs(ctx, []string{tripID})
	if err != nil {
		return nil, err
	}
	t, ok := trips[tripID]
	if !ok {
		return nil, apperror.NotFound("trip")
	}

	// a recorded reference is answered from its record, not the current fare
	id := CheckoutTransactionID(reference)
	prior, err := uc.txnRepo.GetTransaction(ctx, id)
	switch {
	case err == nil:
		if prior.StudentID != student.ID || prior.TripID != tripID {
			logger.WarnCtx(ctx, "Payment reference reused",
				logger.String("reference", reference),
				logger.String("trip_id", tripID),
				logger.String("student_id", student.ID))
			return nil, apperror.Conflict(apperror.MsgReferenceUsed)
		}
		return checkoutResult(prior, &t, student, false), nil
	case !apperror.IsNotFound(err):
		return nil, err
	}

	payment, err := uc.paymentGW.VerifyPayment(ctx, reference)
	if err != nil {
		return nil, err
	}
	if err := uc.checkPayment(payment, &t, student.ID); err != nil {
		logger.WarnCtx(ctx, "Payment does not cover the seat",
			logger.String("reference", reference),
			logger.String("trip_id", tripID),
			logger.String("reason", apperror.Message(err)))
		return nil, err
	}

	out, err := uc.txnRepo.RecordCheckout(ctx, models.TransactionRecord{
		ID:        id,
		DriverID:  t.Driver.ID,
		StudentID: student.ID,
		TripID:    tripID,
		Amount:    t.Destination.Cost,
		Reference: reference,
	}, uc.cfg.Trip.EnforceCapacity)
	if err != nil {
		return nil, err
	}

	if out.Created {
		logger.InfoCtx(ctx, "Checkout recorded",
			logger.String("transaction_id", out.Transaction.ID),
			logger.String("trip_id", tripID),
			logger.String("student_id", student.ID),
			logger.Bool("joined", out.Joined))
		uc.publishRecorded(ctx, &out.Transaction)
	}
	if out.Joined {
		t.Occupants = append(t.Occupants, *student)
		uc.announceSeat(ctx, &t, student, out.Occupants)
	}

	return checkoutResult(&out.Transaction, &t, student, out.Created), nil
}

func checkoutResult(rec *models.TransactionRecord, t *models.Trip, student *models.User, created bool) *models.CheckoutResult {
	return &models.CheckoutResult{
		Transaction: models.Transaction{
			ID:        rec.ID,
			Driver:    t.Driver,
			Student:   *student,
			Trip:      *t,
			Amount:    rec.Amount,
			Reference: rec.Reference,
			CreatedAt: rec.CreatedAt,
			UpdatedAt: rec.UpdatedAt,
		},
		Created: created,
	}
}

// checkPayment requires a settled charge for exactly the fare, tagged with
// this trip and student
func (uc *transactionUC) checkPayment(p *models.PaymentVerification, t *models.Trip, studentID string) error {
	if !p.Succeeded() {
		return apperror.Validation("payment was not successful")
	}
	subunit := uc.cfg.Paystack.Subunit
	if subunit <= 0 {
		subunit = 100
	}
	if want := t.Destination.Cost * subunit; p.Amount != want {
		return apperror.Validation(fmt.Sprintf("payment amount %d does not match the fare %d", p.Amount, want))
	}
	if p.Metadata.Trip == "" || p.Metadata.Student == "" {
		return apperror.Validation("payment is not tagged with a trip and student")
	}
	if p.Metadata.Trip != t.ID {
		return apperror.Validation("payment was made for another trip")
	}
	if p.Metadata.Student != studentID {
		return apperror.Validation("payment was made by another student")
	}
	return nil
}

// announceSeat publishes the join and notifies the driver. Failures are logged only.
func (uc *transactionUC) announceSeat(ctx context.Context, t *models.Trip, student *models.User, occupants int) {
	if err := uc.tripGW.PublishTripJoined(ctx, &models.TripJoinedEvent{
		TripID:    t.ID,
		DriverID:  t.Driver.ID,
		StudentID: student.ID,
		Occupants: occupants,
		JoinedAt:  time.Now().UTC(),
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to publish trip joined event", logger.String("trip_id", t.ID), logger.Err(err))
	}

	if t.Driver.FCMToken == "" {
		return
	}
	if err := uc.tripGW.Notify(ctx, &models.Notification{
		Token: t.Driver.FCMToken,
		Title: "New paid passenger",
		Body:  fmt.Sprintf("%s paid for your trip to %s", displayName(student), t.Destination.Route),
		Data:  map[string]string{"tripId": t.ID, "studentId": student.ID},
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to notify driver", logger.String("trip_id", t.ID), logger.Err(err))
	}
}

func displayName(u *models.User) string {
	if u.Name == "" {
		return "A student"
	}
	return u.Name
}
