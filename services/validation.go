package services

import "regexp"

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe    = regexp.MustCompile(`^\d{10}$`)
	otpInputRe = regexp.MustCompile(`^\d?$`)
	otpFullRe  = regexp.MustCompile(`^\d{6}$`)
)

// ValidateEmail checks basic email format (e.g. abc@xyz.com).
func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidatePhone checks for a 10-digit phone number, numbers only.
func ValidatePhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

// ValidateOtpInput checks a single OTP field: one digit or empty.
func ValidateOtpInput(value string) bool {
	return otpInputRe.MatchString(value)
}

// IsOtpComplete checks that the concatenated OTP is exactly 6 digits.
func IsOtpComplete(otp string) bool {
	return otpFullRe.MatchString(otp)
}
