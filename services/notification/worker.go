package notification

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"fixify/config"
	"fixify/database/repository"

	"github.com/hibiken/asynq"
)

const TypeNotificationCreate = "notification:create"

// NewQueueClient returns an asynq client on the configured Redis queue DB.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}

// InitNotificationWorker runs the async worker in background. It drains
// queued notification tasks and persists the rows.
func InitNotificationWorker(repo repository.NotificationRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(TypeNotificationCreate, handleNotificationTask(repo))

	go func() {
		log.Println("[NotificationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotificationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Println("[NotificationWorker] max retry attempts reached; queued notifications will not be drained")
					return
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleNotificationTask(repo repository.NotificationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var in NotifyInput
		if err := json.Unmarshal(task.Payload(), &in); err != nil {
			log.Printf("[NotificationWorker] invalid payload: %v", err)
			return err
		}

		if err := repo.Create(ctx, in.toRow()); err != nil {
			log.Printf("[NotificationWorker] insert failed for recipient %s: %v", in.RecipientID, err)
			return err
		}
		return nil
	}
}
