package dto

// DataResponse is the success envelope.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// ErrorResponse represents an error response
// @Description Error response
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

// Data wraps payload in the success envelope.
func Data(payload interface{}) DataResponse {
	return DataResponse{Data: payload}
}
