package main

import (
	"log"

	"github.com/Eursukkul/meetapp-service/config"
	"github.com/Eursukkul/meetapp-service/internal/consumer"
	"github.com/Eursukkul/meetapp-service/internal/mail"
	"github.com/Eursukkul/meetapp-service/internal/service"
	"github.com/Eursukkul/meetapp-service/pkg/database"
	"github.com/Eursukkul/meetapp-service/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ: subscription notifications mailed to organizers
	var publisher service.Publisher
	if cfg.RabbitURL != "" {
		mqPublisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer mqPublisher.Close()
		publisher = mqPublisher

		mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer mqConsumer.Close()

		msgs, err := mqConsumer.Consume()
		if err != nil {
			log.Fatalf("failed to start consuming: %v", err)
		}
		consumer.NewSubscriptionConsumer(mail.LogMailer{}).Start(msgs)
	} else {
		log.Println("RABBITMQ_URL not set, organizer notifications disabled")
	}

	e := newServer(cfg, db, publisher)

	log.Printf("Meetapp Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
