package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeMissingField        = "MISSING_FIELD"
	ErrCodeInvalidOTP          = "INVALID_OTP"
	ErrCodeItemNotFound        = "ITEM_NOT_FOUND"
	ErrCodeItemUnavailable     = "ITEM_UNAVAILABLE"
	ErrCodeNoOpenItem          = "NO_OPEN_ITEM"
	ErrCodeEmptyCart           = "EMPTY_CART"
	ErrCodeCheckoutNotFound    = "CHECKOUT_NOT_FOUND"
	ErrCodeQRCodeNotFound      = "QR_CODE_NOT_FOUND"
	ErrCodeMissingCustomer     = "MISSING_CUSTOMER"
	ErrCodeNoOrganization      = "NO_ORGANIZATION"
	ErrCodeUnknownOrganization = "UNKNOWN_ORGANIZATION"
	ErrCodeInvalidRole         = "INVALID_ROLE"
	ErrCodeInvalidBusinessType = "INVALID_BUSINESS_TYPE"
	ErrCodeInvalidCapacity     = "INVALID_CAPACITY"
	ErrCodeInvalidPrice        = "INVALID_PRICE"
	ErrCodeInvalidImage        = "INVALID_IMAGE"
	ErrCodeImageTooLarge       = "IMAGE_TOO_LARGE"
	ErrCodeRequestTooLarge     = "REQUEST_TOO_LARGE"
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ErrCodeUnauthorised        = "UNAUTHORIZED"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidOTP          = NewDomainError(ErrCodeInvalidOTP, "Please enter all 6 digits")
	ErrItemNotFound        = NewDomainError(ErrCodeItemNotFound, "Menu item not found")
	ErrItemUnavailable     = NewDomainError(ErrCodeItemUnavailable, "Menu item is unavailable")
	ErrNoOpenItem          = NewDomainError(ErrCodeNoOpenItem, "No menu item is open")
	ErrEmptyCart           = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrCheckoutNotFound    = NewDomainError(ErrCodeCheckoutNotFound, "Checkout not found")
	ErrQRCodeNotFound      = NewDomainError(ErrCodeQRCodeNotFound, "QR code not found")
	ErrMissingCustomer     = NewDomainError(ErrCodeMissingCustomer, "Name and email are required")
	ErrNotAuthenticated    = NewDomainError(ErrCodeUnauthorised, "Not authenticated")
	ErrNoOrganization      = NewDomainError(ErrCodeNoOrganization, "No organization selected")
	ErrUnknownOrganization = NewDomainError(ErrCodeUnknownOrganization, "Organization not found")
	ErrInvalidRole         = NewDomainError(ErrCodeInvalidRole, "Role must be manager, service_staff, delivery_staff or kitchen_staff")
	ErrInvalidBusinessType = NewDomainError(ErrCodeInvalidBusinessType, "Business type must be restaurant, hotel or other")
	ErrInvalidCapacity     = NewDomainError(ErrCodeInvalidCapacity, "Capacity must be at least 1")
	ErrInvalidPrice        = NewDomainError(ErrCodeInvalidPrice, "Price cannot be negative")
	ErrInvalidImage        = NewDomainError(ErrCodeInvalidImage, "Please select an image file")
	ErrImageTooLarge       = NewDomainError(ErrCodeImageTooLarge, "Image size should be less than 5MB")
	ErrRequestTooLarge     = NewDomainError(ErrCodeRequestTooLarge, "Request body too large")
)

// Unavailable reports a failure to reach the platform with a fixed message.
func Unavailable(message string) *DomainError {
	return NewDomainError(ErrCodeUpstreamUnavailable, message)
}

// MissingField returns a domain error for a required field that was left empty.
func MissingField(message string) *DomainError {
	return NewDomainError(ErrCodeMissingField, message)
}
