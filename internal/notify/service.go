package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikededo/hubbl-sub000/internal/calendar"
	"github.com/mikededo/hubbl-sub000/internal/logger"
	"github.com/mikededo/hubbl-sub000/internal/metrics"
)

const (
	queueKey  = "emails"
	failedKey = "emails:failed"
	maxTries  = 3
	popWait   = 2 * time.Second
)

const (
	TypeConfirmation = "appointment_confirmation"
	TypeCancellation = "appointment_cancellation"
)

type Job struct {
	Type    string    `json:"type"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

// Appointment is what a client is told about a booking.
type Appointment struct {
	Email     string
	Name      string
	Title     string
	Date      calendar.Date
	StartTime calendar.TimeOfDay
	EndTime   calendar.TimeOfDay
}

// Sender delivers a single email.
type Sender interface {
	Send(job Job) error
}

type Service struct {
	redis      *redis.Client
	sender     Sender
	retryDelay time.Duration
}

func New(rdb *redis.Client, sender Sender) *Service {
	return &Service{redis: rdb, sender: sender, retryDelay: 5 * time.Second}
}

func (s *Service) Enqueue(ctx context.Context, job Job) error {
	if job.Created.IsZero() {
		job.Created = time.Now()
	}

	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encode email job: %w", err)
	}

	if err := s.redis.LPush(ctx, queueKey, string(data)).Err(); err != nil {
		logger.Errorf("Failed to queue email to %s: %v", job.To, err)
		metrics.RecordEmail(job.Type, "queue_error")
		return err
	}

	metrics.RecordEmail(job.Type, "queued")
	logger.Debugf("Email queued: %s to %s", job.Subject, job.To)
	return nil
}

func (s *Service) AppointmentConfirmed(ctx context.Context, a Appointment) error {
	body := fmt.Sprintf(`Hi %s,

Your appointment is confirmed.

%s
Date: %s
Time: %s - %s

See you at the gym!

- Hubbl`, a.Name, a.Title, a.Date, a.StartTime, a.EndTime)

	return s.Enqueue(ctx, Job{
		Type:    TypeConfirmation,
		To:      a.Email,
		Name:    a.Name,
		Subject: "Appointment confirmed - " + a.Title,
		Body:    body,
	})
}

func (s *Service) AppointmentCancelled(ctx context.Context, a Appointment) error {
	body := fmt.Sprintf(`Hi %s,

Your appointment has been cancelled.

%s
Date: %s
Time: %s - %s

- Hubbl`, a.Name, a.Title, a.Date, a.StartTime, a.EndTime)

	return s.Enqueue(ctx, Job{
		Type:    TypeCancellation,
		To:      a.Email,
		Name:    a.Name,
		Subject: "Appointment cancelled - " + a.Title,
		Body:    body,
	})
}

// Start drains the queue until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	logger.Info("Notification worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Notification worker stopped")
			return
		default:
			s.ProcessNext(ctx)
		}
	}
}

// ProcessNext sends one queued email, requeueing it on failure until
// maxTries is reached. It reports whether a job was taken.
func (s *Service) ProcessNext(ctx context.Context) bool {
	result, err := s.redis.BRPop(ctx, popWait, queueKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
			logger.Errorf("Failed to pop email job: %v", err)
		}
		return false
	}

	var job Job
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad email data: %v", err)
		return true
	}

	job.Tries++
	if err := s.sender.Send(job); err != nil {
		logger.Errorf("Failed to send email to %s (attempt %d): %v", job.To, job.Tries, err)
		if job.Tries < maxTries {
			s.retry(ctx, job)
		} else {
			s.saveFailed(ctx, job, err)
		}
		return true
	}

	metrics.RecordEmail(job.Type, "sent")
	s.QueueLength(ctx)
	return true
}

func (s *Service) retry(ctx context.Context, job Job) {
	select {
	case <-ctx.Done():
	case <-time.After(s.retryDelay):
	}

	data, _ := json.Marshal(job)
	if err := s.redis.LPush(context.WithoutCancel(ctx), queueKey, string(data)).Err(); err != nil {
		logger.Errorf("Failed to requeue email to %s: %v", job.To, err)
		return
	}
	metrics.RecordEmail(job.Type, "retry")
}

func (s *Service) saveFailed(ctx context.Context, job Job, sendErr error) {
	data, _ := json.Marshal(map[string]any{
		"job":   job,
		"error": sendErr.Error(),
		"time":  time.Now(),
	})
	if err := s.redis.LPush(context.WithoutCancel(ctx), failedKey, string(data)).Err(); err != nil {
		logger.Errorf("Failed to store failed email to %s: %v", job.To, err)
	}
	metrics.RecordEmail(job.Type, "failed")
	logger.Errorf("Email moved to failed queue: %s", job.To)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, err := s.redis.LLen(ctx, queueKey).Result()
	if err != nil {
		return 0
	}
	metrics.EmailQueueLength.Set(float64(length))
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}
