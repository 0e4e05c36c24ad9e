package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"

	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Database table names
	TableCategory               = "category"
	TableAnnouncement           = "announcement"
	TableAnnouncementToCategory = "announcement_to_category"

	// Field limits
	MaxCategoryNameLength      = 255
	MaxAnnouncementTitleLength = 1000

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgEmptyCategories     = "Categories can not be empty"
)
