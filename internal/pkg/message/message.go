package message

const (
	InvalidCredentials = "invalid credentials"
	InvalidInput       = "invalid input"
	PasswordWasReset   = "Password was reset successfully."
	EnvErrFmt          = "environment variable is not set: %s"

	FmtErrStatusCode = "rec.Code = %d, want: %d"
)
