package scheduler

import (
	"context"
	"fmt"
	"log"

	"portfolio-go-backend/config"
	"portfolio-go-backend/pkg/infrastructure/email"
	"portfolio-go-backend/pkg/usecase/repository"

	"github.com/robfig/cron/v3"
)

// Scheduler manages cron jobs
type Scheduler struct {
	cron         *cron.Cron
	contactRepo  repository.Contact
	emailService *email.EmailService
}

// NewScheduler creates a new scheduler
func NewScheduler(contactRepo repository.Contact, emailService *email.EmailService) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		contactRepo:  contactRepo,
		emailService: emailService,
	}
}

// Start registers and starts all cron jobs
func (s *Scheduler) Start() error {
	log.Println("Starting cron scheduler...")

	schedule := config.C.Cron.ContactDigestSchedule
	if _, err := s.cron.AddFunc(schedule, func() {
		s.runContactDigestJob(context.Background())
	}); err != nil {
		return fmt.Errorf("failed to add contact digest job: %w", err)
	}
	log.Printf("Registered job: contact_digest with schedule: %s", schedule)

	s.cron.Start()
	log.Println("Cron scheduler started successfully")

	return nil
}

// Stop stops the cron scheduler
func (s *Scheduler) Stop() {
	log.Println("Stopping cron scheduler...")
	cronCtx := s.cron.Stop()
	<-cronCtx.Done()
	log.Println("Cron scheduler stopped")
}

// runContactDigestJob mails the operator a summary of unread messages.
// Nothing is sent when the inbox is empty.
func (s *Scheduler) runContactDigestJob(ctx context.Context) {
	log.Println("Running contact digest job...")

	contacts, err := s.contactRepo.ListUnread(ctx)
	if err != nil {
		log.Printf("Contact digest job failed: %v", err)
		return
	}
	if len(contacts) == 0 {
		log.Println("Contact digest job skipped: no unread messages")
		return
	}

	if err := s.emailService.SendUnreadContactDigest(contacts); err != nil {
		log.Printf("Contact digest job failed to send email: %v", err)
		return
	}

	log.Printf("Contact digest job completed: %d unread message(s)", len(contacts))
}
