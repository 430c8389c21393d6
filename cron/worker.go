package cron

import (
	"context"
	"encoding/json"
	"log"

	"medibook/config"
	"medibook/models"
	"medibook/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask)

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ReminderWorker] worker stopped: %v", err)
		}
	}()
}

func handleReminderTask(ctx context.Context, task *asynq.Task) error {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[ReminderHandler] invalid payload: %v", err)
		return err
	}

	log.Printf("[ReminderHandler] consultation reminder for patient %s with Dr. %s at %s (appointment %s)",
		p.PatientID, p.DoctorName, p.StartDateTime, p.AppointmentID)
	return nil
}
