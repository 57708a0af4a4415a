package constants

// NATS subjects
const (
	SubjectUserRegistered   = "user.registered"
	SubjectDonationRecorded = "donation.recorded"
	SubjectNotifyOTP        = "notify.otp"
)
