package main

import (
	"context"
	"log"

	"portfolio-go-backend/config"
	"portfolio-go-backend/ent"
	_ "portfolio-go-backend/ent/runtime"
	"portfolio-go-backend/pkg/adapter/controller"
	"portfolio-go-backend/pkg/adapter/repository/contactrepository"
	"portfolio-go-backend/pkg/infrastructure/datastore"
	"portfolio-go-backend/pkg/infrastructure/email"
	"portfolio-go-backend/pkg/infrastructure/router"
	"portfolio-go-backend/pkg/infrastructure/scheduler"
	"portfolio-go-backend/pkg/infrastructure/storage"
	"portfolio-go-backend/pkg/registry"
)

func main() {
	config.ReadConfig(config.ReadConfigOption{})

	client := newDBClient()
	emailService := email.NewEmailService()
	ctrl := newController(client, emailService)

	sched := scheduler.NewScheduler(
		contactrepository.NewContactRepository(client),
		emailService,
	)
	if err := sched.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	var s3 *storage.S3Service
	if config.C.AWS.S3Bucket != "" {
		var err error
		s3, err = storage.NewS3Service(context.Background())
		if err != nil {
			log.Fatalf("Failed to create S3 service: %v", err)
		}
	}

	e, err := router.New(ctrl, router.Options{Storage: s3})
	if err != nil {
		log.Fatalf("Failed to create router: %v", err)
	}

	e.Logger.Fatal(e.Start(":" + config.C.Server.Address))
}

func newDBClient() *ent.Client {
	client, err := datastore.NewClient()
	if err != nil {
		log.Fatalf("Failed to open db connection: %v", err)
	}
	return client
}

func newController(client *ent.Client, emailService *email.EmailService) controller.Controller {
	r := registry.New(client, emailService, config.C.Site.BaseURL)
	return r.NewController()
}
