package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"
	MessageInvalidBody  = "Invalid request body"
)
