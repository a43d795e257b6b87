package model

import "time"

// BusinessType labels what kind of venue a QR code belongs to.
type BusinessType string

const (
	BusinessRestaurant BusinessType = "restaurant"
	BusinessHotel      BusinessType = "hotel"
	BusinessOther      BusinessType = "other"
)

// Valid reports whether b is a known business type.
func (b BusinessType) Valid() bool {
	switch b {
	case BusinessRestaurant, BusinessHotel, BusinessOther:
		return true
	}
	return false
}

// QRCode is a scan point (table, room) that starts a customer session.
type QRCode struct {
	ID             string       `json:"id"`
	ScanPoint      string       `json:"scan_point"`
	RedirectURL    string       `json:"redirect_url"`
	QRImageBase64  string       `json:"qr_image_base64,omitempty"`
	BusinessType   BusinessType `json:"business_type,omitempty"`
	Capacity       int          `json:"capacity"`
	IsActive       bool         `json:"is_active"`
	ExternalID     string       `json:"external_id,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	OrganizationID string       `json:"organization_id"`
}

// QRCodeRequest is the body for creating or updating a QR code. IsActive is ignored on create.
type QRCodeRequest struct {
	ScanPoint    string       `json:"scan_point"`
	Capacity     int          `json:"capacity"`
	BusinessType BusinessType `json:"business_type"`
	IsActive     *bool        `json:"is_active,omitempty"`
}
