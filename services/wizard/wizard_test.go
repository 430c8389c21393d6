package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"medibook/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDoctorRepo struct {
	doctors map[string]models.Doctor
}

func (f *fakeDoctorRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	d, ok := f.doctors[id]
	if !ok {
		return nil, errors.New("doctor not found")
	}
	return &d, nil
}

func (f *fakeDoctorRepo) List(ctx context.Context) ([]models.Doctor, error) {
	out := []models.Doctor{}
	for _, d := range f.doctors {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDoctorRepo) ListBySpecialty(ctx context.Context, specialtyID string) ([]models.Doctor, error) {
	out := []models.Doctor{}
	for _, d := range f.doctors {
		if d.HasSpecialty(specialtyID) {
			out = append(out, d)
		}
	}
	return out, nil
}

type aggregatorFunc func(ctx context.Context, doctorID string) ([]models.DaySlots, error)

func (f aggregatorFunc) OpenSlots(ctx context.Context, doctorID string) ([]models.DaySlots, error) {
	return f(ctx, doctorID)
}

func testDays(doctorID string) []models.DaySlots {
	return []models.DaySlots{
		{
			Date: "2024-05-01",
			Slots: []models.DoctorSchedule{
				{
					DoctorID:   doctorID,
					ScheduleID: "slot-1",
					Schedule: models.Schedule{
						ID:            "slot-1",
						StartDateTime: "2024-05-01T09:00:00Z",
						EndDateTime:   "2024-05-01T09:30:00Z",
					},
				},
			},
		},
	}
}

func newTestService(t *testing.T) (*DefaultWizardService, *fakeDoctorRepo) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := &fakeDoctorRepo{
		doctors: map[string]models.Doctor{
			"doc-1": {
				ID:   "doc-1",
				Name: "Dr. Achieng",
				Specialties: []models.DoctorSpecialty{
					{SpecialtyID: "cardio"},
				},
			},
		},
	}

	svc := &DefaultWizardService{
		Store:      NewStore(client, 10*time.Minute),
		DoctorRepo: repo,
		Aggregator: aggregatorFunc(func(ctx context.Context, doctorID string) ([]models.DaySlots, error) {
			return testDays(doctorID), nil
		}),
	}
	return svc, repo
}

func TestFullFlowToConfirm(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "patient-1", "")
	require.NoError(t, err)
	assert.Equal(t, models.StepSpecialty, sess.Step)

	sess, doctors, err := svc.SelectSpecialty(ctx, sess.SessionID, "cardio")
	require.NoError(t, err)
	assert.Equal(t, models.StepDoctor, sess.Step)
	require.Len(t, doctors, 1)

	sess, err = svc.SelectDoctor(ctx, sess.SessionID, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, models.StepSchedule, sess.Step)
	require.NotEmpty(t, sess.Days)

	sess, err = svc.SelectSchedule(ctx, sess.SessionID, "slot-1")
	require.NoError(t, err)
	assert.Equal(t, models.StepConfirm, sess.Step)
	require.NotNil(t, sess.Schedule)
	assert.Equal(t, "slot-1", sess.Schedule.ScheduleID)
}

func TestBackPreservesSelections(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "patient-1", "")
	require.NoError(t, err)
	sess, _, err = svc.SelectSpecialty(ctx, sess.SessionID, "cardio")
	require.NoError(t, err)
	sess, err = svc.SelectDoctor(ctx, sess.SessionID, "doc-1")
	require.NoError(t, err)

	sess, err = svc.Back(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepDoctor, sess.Step)

	sess, err = svc.Back(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepSpecialty, sess.Step)
	assert.Equal(t, "cardio", sess.SpecialtyID, "going back must not erase the specialty")

	_, err = svc.Back(ctx, sess.SessionID)
	assert.ErrorIs(t, err, ErrAtFirstStep)
}

func TestDeepLinkStartsAtSchedule(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "patient-1", "doc-1")
	require.NoError(t, err)
	assert.Equal(t, models.StepSchedule, sess.Step)
	assert.True(t, sess.DeepLinked)
	require.NotNil(t, sess.Doctor)
	assert.Equal(t, "doc-1", sess.Doctor.ID)
	require.NotEmpty(t, sess.Days)

	// Back from a deep link skips the doctor list that was never shown.
	sess, err = svc.Back(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepSpecialty, sess.Step)
}

func TestSelectSpecialtyClearsDownstreamSelections(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "patient-1", "")
	require.NoError(t, err)
	sess, _, err = svc.SelectSpecialty(ctx, sess.SessionID, "cardio")
	require.NoError(t, err)
	sess, err = svc.SelectDoctor(ctx, sess.SessionID, "doc-1")
	require.NoError(t, err)
	sess, err = svc.SelectSchedule(ctx, sess.SessionID, "slot-1")
	require.NoError(t, err)
	require.NotNil(t, sess.Schedule)

	sess, _, err = svc.SelectSpecialty(ctx, sess.SessionID, "cardio")
	require.NoError(t, err)
	assert.Nil(t, sess.Doctor)
	assert.Nil(t, sess.Schedule)
	assert.Empty(t, sess.Days)
}

func TestSelectDoctorWithoutSpecialtyRejected(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "patient-1", "")
	require.NoError(t, err)

	_, err = svc.SelectDoctor(ctx, sess.SessionID, "doc-1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSelectScheduleUnknownSlotRejected(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "patient-1", "doc-1")
	require.NoError(t, err)

	_, err = svc.SelectSchedule(ctx, sess.SessionID, "slot-nope")
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestStaleSlotFetchDiscarded(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "patient-1", "")
	require.NoError(t, err)
	sess, _, err = svc.SelectSpecialty(ctx, sess.SessionID, "cardio")
	require.NoError(t, err)
	sessionID := sess.SessionID

	// While the slot fetch for doc-1 is in flight, the stored session moves to
	// a newer generation, as if the user had already picked another doctor.
	svc.Aggregator = aggregatorFunc(func(ctx context.Context, doctorID string) ([]models.DaySlots, error) {
		stored, err := svc.Store.Get(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		stored.Generation++
		stored.Days = []models.DaySlots{{Date: "2024-06-01"}}
		if err := svc.Store.Save(ctx, stored); err != nil {
			return nil, err
		}
		return testDays(doctorID), nil
	})

	sess, err = svc.SelectDoctor(ctx, sessionID, "doc-1")
	require.NoError(t, err)

	// The late result must not overwrite the newer state.
	require.Len(t, sess.Days, 1)
	assert.Equal(t, "2024-06-01", sess.Days[0].Date)

	stored, err := svc.Store.Get(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, stored.Days, 1)
	assert.Equal(t, "2024-06-01", stored.Days[0].Date)
}

func TestSessionNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.GetSession(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCancelSessionRemovesIt(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "patient-1", "")
	require.NoError(t, err)
	require.NoError(t, svc.CancelSession(ctx, sess.SessionID))

	_, err = svc.GetSession(ctx, sess.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
