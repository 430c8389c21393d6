package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	scheduleRepo "medibook/database/repository/schedule"
	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeScheduleRepo struct {
	claimErr error
	claims   int
}

func (f *fakeScheduleRepo) OpenSlots(ctx context.Context, doctorID string, from time.Time) ([]models.DoctorSchedule, error) {
	return nil, nil
}

func (f *fakeScheduleRepo) ClaimSlot(ctx context.Context, doctorID, scheduleID string) error {
	f.claims++
	return f.claimErr
}

func (f *fakeScheduleRepo) GetOpen(ctx context.Context, doctorID, scheduleID string) (*models.DoctorSchedule, error) {
	return nil, nil
}

func (f *fakeScheduleRepo) Assign(ctx context.Context, ds models.DoctorSchedule) error {
	return nil
}

type fakeAppointmentRepo struct {
	created []models.Appointment
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appt models.Appointment) error {
	f.created = append(f.created, appt)
	return nil
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return nil, errors.New("not found")
}

func (f *fakeAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return nil
}

func (f *fakeAppointmentRepo) UpdatePaymentStatus(ctx context.Context, id, paymentStatus string) error {
	return nil
}

type fakePayments struct {
	url string
	err error
}

func (f *fakePayments) CheckoutURL(ctx context.Context, appt models.Appointment, doctor models.Doctor) (string, error) {
	return f.url, f.err
}

type fakeReminders struct {
	payloads []models.ReminderPayload
}

func (f *fakeReminders) ScheduleReminder(payload models.ReminderPayload) error {
	f.payloads = append(f.payloads, payload)
	return nil
}

func confirmableSession() *models.WizardSession {
	return &models.WizardSession{
		SessionID: "sess-1",
		Step:      models.StepConfirm,
		Doctor: &models.Doctor{
			ID:             "doc-1",
			Name:           "Dr. Achieng",
			AppointmentFee: 50,
		},
		Schedule: &models.DoctorSchedule{
			DoctorID:   "doc-1",
			ScheduleID: "slot-1",
			Schedule: models.Schedule{
				ID:            "slot-1",
				StartDateTime: "2024-05-01T09:00:00Z",
				EndDateTime:   "2024-05-01T09:30:00Z",
			},
		},
	}
}

func patientActor() Actor {
	return Actor{Resolved: true, Authenticated: true, UserID: "patient-1", Role: models.RolePatient}
}

func newTestSubmission() (*DefaultSubmissionService, *fakeScheduleRepo, *fakeAppointmentRepo, *fakePayments, *fakeReminders) {
	schedules := &fakeScheduleRepo{}
	appointments := &fakeAppointmentRepo{}
	payments := &fakePayments{url: "https://checkout.example/pay"}
	reminders := &fakeReminders{}
	svc := &DefaultSubmissionService{
		ScheduleRepo:    schedules,
		AppointmentRepo: appointments,
		Payments:        payments,
		Reminders:       reminders,
		Logger:          zap.NewNop(),
	}
	return svc, schedules, appointments, payments, reminders
}

func TestSubmitNothingSelected(t *testing.T) {
	svc, schedules, _, _, _ := newTestSubmission()

	sess := confirmableSession()
	sess.Schedule = nil

	_, err := svc.Submit(context.Background(), sess, patientActor())
	assert.ErrorIs(t, err, ErrNothingSelected)
	assert.Zero(t, schedules.claims)
}

func TestSubmitAuthPending(t *testing.T) {
	svc, schedules, appointments, _, _ := newTestSubmission()

	_, err := svc.Submit(context.Background(), confirmableSession(), Actor{Resolved: false})
	assert.ErrorIs(t, err, ErrAuthPending)
	assert.Zero(t, schedules.claims)
	assert.Empty(t, appointments.created)
}

func TestSubmitUnauthenticatedRedirectsToLogin(t *testing.T) {
	svc, schedules, appointments, _, _ := newTestSubmission()

	_, err := svc.Submit(context.Background(), confirmableSession(), Actor{Resolved: true})

	var redirect *RedirectError
	require.ErrorAs(t, err, &redirect)
	assert.Equal(t, LoginPath, redirect.Path)
	assert.Zero(t, schedules.claims)
	assert.Empty(t, appointments.created)
}

func TestSubmitNonPatientRedirectsToDashboard(t *testing.T) {
	svc, schedules, appointments, _, _ := newTestSubmission()

	actor := Actor{Resolved: true, Authenticated: true, UserID: "doc-9", Role: models.RoleDoctor}
	_, err := svc.Submit(context.Background(), confirmableSession(), actor)

	var redirect *RedirectError
	require.ErrorAs(t, err, &redirect)
	assert.Equal(t, "/doctor/dashboard", redirect.Path)
	assert.Zero(t, schedules.claims, "no slot may be claimed for a non-patient")
	assert.Empty(t, appointments.created)
}

func TestSubmitSlotRace(t *testing.T) {
	svc, schedules, appointments, _, _ := newTestSubmission()
	schedules.claimErr = scheduleRepo.ErrSlotTaken

	result, err := svc.Submit(context.Background(), confirmableSession(), patientActor())

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "just been booked")
	assert.Empty(t, appointments.created, "losing the race must not create an appointment")
}

func TestSubmitSuccess(t *testing.T) {
	svc, schedules, appointments, _, reminders := newTestSubmission()

	result, err := svc.Submit(context.Background(), confirmableSession(), patientActor())

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "https://checkout.example/pay", result.PaymentURL)
	assert.Equal(t, 1, schedules.claims)

	require.Len(t, appointments.created, 1)
	appt := appointments.created[0]
	assert.Equal(t, "patient-1", appt.PatientID)
	assert.Equal(t, "doc-1", appt.DoctorID)
	assert.Equal(t, "slot-1", appt.ScheduleID)
	assert.Equal(t, models.AppointmentScheduled, appt.Status)
	assert.Equal(t, models.PaymentUnpaid, appt.PaymentStatus)

	require.Len(t, reminders.payloads, 1)
	assert.Equal(t, appt.ID, reminders.payloads[0].AppointmentID)
}

func TestSubmitPaymentFailureStillBooks(t *testing.T) {
	svc, _, appointments, payments, _ := newTestSubmission()
	payments.url = ""
	payments.err = errors.New("stripe unavailable")

	result, err := svc.Submit(context.Background(), confirmableSession(), patientActor())

	require.NoError(t, err)
	assert.True(t, result.Success, "the appointment exists even when payment handoff fails")
	assert.Empty(t, result.PaymentURL)
	assert.Equal(t, "failed to start payment session", result.Message)
	require.NotNil(t, result.Appointment)
	require.Len(t, appointments.created, 1)
}
