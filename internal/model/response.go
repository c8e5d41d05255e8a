package model

// APIResponse is the message envelope returned by the service root and by deletes.
// Version is omitted from the JSON when unset.
type APIResponse struct {
	Message string  `json:"message"`
	Version *string `json:"version,omitempty"`
}

// NewAPIResponse creates an APIResponse carrying a version.
func NewAPIResponse(message, version string) APIResponse {
	return APIResponse{
		Message: message,
		Version: &version,
	}
}

// NewMessageResponse creates an APIResponse without a version.
func NewMessageResponse(message string) APIResponse {
	return APIResponse{Message: message}
}

// ErrorResponse represents an error response structure.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
