package dto

// APIResponse is the success envelope shared by every endpoint:
// {"success":true, "token"?, "count"?, "data"?}
type APIResponse struct {
	Success bool        `json:"success" example:"true"`
	Token   string      `json:"token,omitempty"`
	Count   *int        `json:"count,omitempty" example:"3"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the error envelope: {"success":false, "error":"..."}
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"resource not found"`
}

// NewSuccessResponse wraps data in the success envelope
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
	}
}

// NewListResponse wraps a list in the success envelope with its count
func NewListResponse(count int, data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Count:   &count,
		Data:    data,
	}
}

// NewTokenResponse wraps data in the success envelope with a bearer token
func NewTokenResponse(token string, data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Token:   token,
		Data:    data,
	}
}

// NewErrorResponse builds the error envelope
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   message,
	}
}
