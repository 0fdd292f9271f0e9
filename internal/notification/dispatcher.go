package notification

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"autofixpro/internal/domain/entities"
	"autofixpro/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// EmailSender delivers a single email message.
type EmailSender interface {
	SendEmail(ctx context.Context, address, subject, message string) error
}

// SMSProvider delivers a single SMS to an E.164 phone number and returns the
// provider message id (synthetic in simulated mode).
type SMSProvider interface {
	SendSMS(ctx context.Context, phoneNumber, message string) (string, error)
}

// TopicPublisher announces workshop events on the staff topic.
type TopicPublisher interface {
	PublishToTopic(ctx context.Context, subject, message string) (string, error)
}

const defaultCountryCode = "+1"

// Dispatcher fans status messages out to a customer over email and SMS, and
// announces new repair requests on the staff topic.
//
// Contract: best-effort, non-blocking, no retry. Every send runs on its own
// goroutine decoupled from the caller's request; a failed channel is logged
// and never surfaces to the business operation. SMS provider failures fall
// back to a local simulated-send log entry.
type Dispatcher struct {
	email       EmailSender
	sms         SMSProvider
	topic       TopicPublisher
	countryCode string

	wg sync.WaitGroup
}

var _ interfaces.INotificationDispatcher = (*Dispatcher)(nil)

// NewDispatcher builds a dispatcher. topic may be nil when no staff topic is
// wired; intake announcements are then skipped.
func NewDispatcher(email EmailSender, sms SMSProvider, topic TopicPublisher, countryCode string) *Dispatcher {
	if countryCode == "" {
		countryCode = defaultCountryCode
	}
	return &Dispatcher{email: email, sms: sms, topic: topic, countryCode: countryCode}
}

// Wait blocks until all in-flight sends finish. Used by graceful shutdown
// and by tests; regular callers never wait.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) NotifyIntake(ctx context.Context, order entities.ServiceOrder, vehicle entities.Vehicle) {
	msg := fmt.Sprintf("Your vehicle %s has been admitted to the workshop. Order: %s. Status: %s",
		vehicle.Plate, order.ID, order.State.Description())

	d.sendEmail(ctx, vehicle.Owner.Email, "Vehicle admitted", msg)
	d.sendSMS(ctx, vehicle.Owner.Phone, msg)

	staffMsg := fmt.Sprintf("New repair request: order %s, vehicle %s. %s",
		order.ID, vehicle.Plate, order.ProblemDescription)
	d.publishTopic(ctx, "New repair request", staffMsg)
}

func (d *Dispatcher) NotifyStateChange(ctx context.Context, order entities.ServiceOrder, vehicle entities.Vehicle, previous entities.OrderState) {
	msg := fmt.Sprintf("Update for your vehicle %s: %s -> %s. Order %s",
		vehicle.Plate, previous.Description(), order.State.Description(), order.ID)

	d.sendEmail(ctx, vehicle.Owner.Email, "Service order updated", msg)

	// SMS only for the states customers most want immediate word of.
	if order.State.SMSWorthy() {
		d.sendSMS(ctx, vehicle.Owner.Phone, msg)
	}
}

func (d *Dispatcher) NotifyCompletion(ctx context.Context, order entities.ServiceOrder, vehicle entities.Vehicle) {
	msg := fmt.Sprintf("Your vehicle %s is ready! You can pick it up during business hours. Order %s",
		vehicle.Plate, order.ID)

	d.sendEmail(ctx, vehicle.Owner.Email, "Repair completed", msg)
	d.sendSMS(ctx, vehicle.Owner.Phone, msg)
}

func (d *Dispatcher) sendEmail(ctx context.Context, address, subject, message string) {
	if strings.TrimSpace(address) == "" {
		log.Warn("[notify][email] no address, skipping")
		return
	}

	ctx = context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := d.email.SendEmail(ctx, address, subject, message); err != nil {
			log.WithError(err).Errorf("[notify][email] send to %s failed", address)
			return
		}
		log.Infof("[notify][email] sent to %s", address)
	}()
}

func (d *Dispatcher) sendSMS(ctx context.Context, phone, message string) {
	if strings.TrimSpace(phone) == "" {
		log.Warn("[notify][sms] no phone number, skipping")
		return
	}
	number := NormalizePhone(phone, d.countryCode)

	ctx = context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		id, err := d.sms.SendSMS(ctx, number, message)
		if err != nil {
			// Fallback: record a simulated send instead of propagating.
			log.WithError(err).Warnf("[notify][sms] provider failed, simulated send to %s - %s", number, message)
			return
		}
		log.Infof("[notify][sms] sent to %s message_id=%s", number, id)
	}()
}

func (d *Dispatcher) publishTopic(ctx context.Context, subject, message string) {
	if d.topic == nil {
		return
	}

	ctx = context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		id, err := d.topic.PublishToTopic(ctx, subject, message)
		if err != nil {
			log.WithError(err).Warn("[notify][topic] staff publish failed")
			return
		}
		log.Infof("[notify][topic] staff notified message_id=%s", id)
	}()
}

// NormalizePhone strips everything except digits and a leading plus, then
// prefixes the default country code when the number has none.
func NormalizePhone(phone, countryCode string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && b.Len() == 0 {
			b.WriteRune(r)
		}
	}
	normalized := b.String()
	if normalized == "" {
		return normalized
	}
	if !strings.HasPrefix(normalized, "+") {
		normalized = countryCode + normalized
	}
	return normalized
}
