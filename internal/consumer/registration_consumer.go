package consumer

import (
	"encoding/json"
	"log"

	"github.com/MarianaKely/drivent-booking-service/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegistrationConsumer keeps the local read models (hotels, rooms,
// enrollments, tickets, ticket types) in sync with the registration
// platform. Upserts are idempotent by primary key, so redeliveries and
// out-of-order duplicates are harmless.
type RegistrationConsumer struct {
	db *gorm.DB
}

func NewRegistrationConsumer(db *gorm.DB) *RegistrationConsumer {
	return &RegistrationConsumer{db: db}
}

func (rc *RegistrationConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			rc.handleMessage(msg)
		}
		log.Println("[RegistrationConsumer] channel closed, stopping consumer")
	}()
}

func (rc *RegistrationConsumer) handleMessage(msg amqp.Delivery) {
	var target any
	switch msg.RoutingKey {
	case "registration.hotel":
		target = &models.Hotel{}
	case "registration.room":
		target = &models.Room{}
	case "registration.enrollment":
		target = &models.Enrollment{}
	case "registration.ticket_type":
		target = &models.TicketType{}
	case "registration.ticket":
		target = &models.Ticket{}
	default:
		log.Printf("[RegistrationConsumer] unknown routing key %q, dropping", msg.RoutingKey)
		msg.Nack(false, false)
		return
	}

	if err := json.Unmarshal(msg.Body, target); err != nil {
		log.Printf("[RegistrationConsumer] failed to unmarshal %s: %v", msg.RoutingKey, err)
		msg.Nack(false, false)
		return
	}

	// Upsert: insert or overwrite the row the platform sent us
	result := rc.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Omit(clause.Associations).Create(target)

	if result.Error != nil {
		log.Printf("[RegistrationConsumer] failed to upsert %s: %v", msg.RoutingKey, result.Error)
		msg.Nack(false, true) // requeue
		return
	}

	log.Printf("[RegistrationConsumer] synced %s", msg.RoutingKey)
	msg.Ack(false)
}
