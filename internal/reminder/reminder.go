package reminder

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/robfig/cron/v3"

	"github.com/russelescultura/sk-barangay-sub001/internal/calendar"
	"github.com/russelescultura/sk-barangay-sub001/internal/config"
	"github.com/russelescultura/sk-barangay-sub001/internal/domain"
	"github.com/russelescultura/sk-barangay-sub001/internal/repository"
)

// Reminder runs a scheduled sweep over published forms and emails council
// officials about deadlines closing within the configured lead time.
type Reminder struct {
	cfg         *config.Config
	repository  *repository.Repository
	mailChannel *amqp.Channel
	location    *time.Location
	cron        *cron.Cron
}

func NewReminder(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, loc *time.Location) *Reminder {
	return &Reminder{
		cfg:         cfg,
		repository:  repo,
		mailChannel: mailCh,
		location:    loc,
		cron:        cron.New(cron.WithLocation(loc)),
	}
}

func (r *Reminder) Start() error {
	if _, err := r.cron.AddFunc(r.cfg.Reminder.CronSpec, r.sweep); err != nil {
		return err
	}
	r.cron.Start()
	slog.Info("deadline reminder started", "cronSpec", r.cfg.Reminder.CronSpec, "daysAhead", r.cfg.Reminder.DaysAhead)
	return nil
}

func (r *Reminder) Stop() {
	<-r.cron.Stop().Done()
}

func (r *Reminder) sweep() {
	today := calendar.DateOf(time.Now().In(r.location))
	from := today.Midnight(r.location)
	to := today.AddDays(r.cfg.Reminder.DaysAhead + 1).Midnight(r.location)

	forms, err := r.repository.GetFormsDueBetween(from, to)
	if err != nil {
		slog.Error("deadline sweep failed to read forms", "error", err)
		return
	}
	if len(forms) == 0 {
		return
	}

	users, err := r.repository.GetAllUsers()
	if err != nil {
		slog.Error("deadline sweep failed to read users", "error", err)
		return
	}

	sent := 0
	for _, form := range forms {
		due := calendar.DateOf(form.SubmissionDeadline.In(r.location))
		daysLeft := calendar.DaysBetween(today, due)

		for _, user := range users {
			// Only active officials act on closing forms; members are not
			// spammed.
			if !user.IsActive || user.Role == domain.RoleMember {
				continue
			}

			if err := r.publish(domain.MailMessage{
				Type: "deadline_reminder",
				To:   user.Email,
				Data: domain.DeadlineReminderMailData{
					FullName:  user.FullName,
					FormTitle: form.Title,
					Deadline:  due.String(),
					DaysLeft:  daysLeft,
				},
			}); err != nil {
				slog.Error("deadline reminder publish failed", "form", form.ID, "to", user.Email, "error", err)
				continue
			}
			sent++
		}
	}

	slog.Info("deadline sweep completed", "forms", len(forms), "mailsQueued", sent)
}

func (r *Reminder) publish(msg domain.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return r.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
