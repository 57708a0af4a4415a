package constants

// Redis key formats
const (
	KeyUserOTP     = "user:otp:%s"     // Format: user:otp:{msisdn}
	KeyUserSession = "user:session:%s" // Format: user:session:{user_id}
)

// Session record fields
const (
	FieldAccessToken = "access_token"
	FieldUser        = "user"
	FieldScreens     = "screens"
)
