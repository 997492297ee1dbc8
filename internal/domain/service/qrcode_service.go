package service

import "github.com/google/uuid"

// QRCodeService generates QR codes that open an event's page inside the LINE
// client, used by organizers to share events offline.
type QRCodeService interface {
	// GenerateEventQR renders a PNG QR code pointing at the event's page.
	GenerateEventQR(eventID uuid.UUID) ([]byte, error)
}
