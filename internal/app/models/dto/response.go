package dto

// APIResponse is the standard success envelope for API endpoints.
type APIResponse struct {
	Data  interface{}  `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// SuccessResponse represents a bare success acknowledgement, used by the
// schedule replace endpoint.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}
