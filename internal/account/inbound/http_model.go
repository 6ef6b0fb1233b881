package inbound

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct{}

func (RegisterResponse) Message() string {
	return "Registration successful. Please enter the code we sent you."
}

func (RegisterResponse) StatusCode() int {
	return 201
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ValidateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ValidateResponse struct {
	Valid           bool   `json:"valid"`
	EmailMessage    string `json:"email_message,omitempty"`
	PasswordMessage string `json:"password_message,omitempty"`
}

type ProfileResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
