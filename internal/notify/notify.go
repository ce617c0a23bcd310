package notify

import (
	"context"
	"fmt"

	"github.com/drizz21/rental-tes/internal/kafka"
)

// Sender turns booking events into renter notifications. Delivery is a
// stdout stub; the rental desk follows up over WhatsApp manually.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	contact := event.Phone
	if event.Email != "" {
		contact = event.Email
	}
	fmt.Printf("notify %s (%s) about %s for kendaraan %s, status %s\n", event.RenterName, contact, event.Type, event.VehicleID, event.Status)
	return nil
}
