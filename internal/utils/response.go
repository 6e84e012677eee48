package utils

// Response is the standard envelope for every JSON body the API returns.
// Data is always present, even if nil (serialized as null).
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// NewSuccessResponse creates a success Response with the given payload.
func NewSuccessResponse(message string, data interface{}) Response {
	return Response{
		Status:  200,
		Message: message,
		Data:    data,
	}
}

// NewCreatedResponse creates a Response for a newly created entity.
func NewCreatedResponse(message string, data interface{}) Response {
	return Response{
		Status:  201,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse creates an error Response. Data is explicitly nil.
func NewErrorResponse(status int, message string) Response {
	return Response{
		Status:  status,
		Message: message,
		Data:    nil,
	}
}
