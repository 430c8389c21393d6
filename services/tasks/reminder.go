package tasks

import (
	"encoding/json"
	"time"

	"medibook/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// Reminders fire one hour before the consultation starts.
const reminderLead = time.Hour

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues consultation reminders.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

func (s *AsynqReminderScheduler) ScheduleReminder(payload models.ReminderPayload) error {
	start, err := time.Parse(time.RFC3339, payload.StartDateTime)
	if err != nil {
		return err
	}
	fireAt := start.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.Client.Enqueue(task, opts...)
	return err
}
