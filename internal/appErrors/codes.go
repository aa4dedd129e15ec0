package appErrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Resources
	CodeUserNotFound         ErrorCode = "USER_NOT_FOUND"
	CodeProjectNotFound      ErrorCode = "PROJECT_NOT_FOUND"
	CodeBidNotFound          ErrorCode = "BID_NOT_FOUND"
	CodeNotificationNotFound ErrorCode = "NOTIFICATION_NOT_FOUND"
	CodeTemplateNotFound     ErrorCode = "TEMPLATE_NOT_FOUND"

	// Business logic
	CodeEmailAlreadyExists      ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeUserNotVerified         ErrorCode = "USER_NOT_VERIFIED"
	CodeInsufficientPermissions ErrorCode = "INSUFFICIENT_PERMISSIONS"
	CodeInvalidProjectStatus    ErrorCode = "INVALID_PROJECT_STATUS"
	CodeInvalidBidStatus        ErrorCode = "INVALID_BID_STATUS"
	CodeBiddingClosed           ErrorCode = "BIDDING_CLOSED"
	CodeDuplicateBid            ErrorCode = "DUPLICATE_BID"
	CodeVerificationCode        ErrorCode = "INVALID_VERIFICATION_CODE"

	// System errors
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
