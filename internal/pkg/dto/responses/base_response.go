package responses

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// CallbackResponse is the bare body returned on the scheduler callback route.
type CallbackResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
