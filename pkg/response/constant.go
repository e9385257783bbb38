package response

const (
	MessageSuccess = "success"

	InternalServerErrorCode = 500
	DefaultErrorMessage     = "internal server error"
)
