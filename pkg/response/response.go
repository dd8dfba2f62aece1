package response

// Envelope is the fixed wire wrapper of the dispatch endpoint. Every
// response goes out as HTTP 200; failure lives in the body.
type Envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func Ok() Envelope {
	return Envelope{Success: true}
}

func Fail(message string) Envelope {
	return Envelope{Success: false, Error: message}
}

// LoginResponse extends the envelope with the session fields. Token is
// additive; legacy clients only read user and role.
type LoginResponse struct {
	Success bool   `json:"success"`
	User    string `json:"user"`
	Role    string `json:"role"`
	Token   string `json:"token,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
