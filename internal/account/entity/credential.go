package entity

// Storage keys shared with the device key-value store.
const (
	KeyUserName     = "userName"
	KeyUserEmail    = "userEmail"
	KeyUserPassword = "userPassword"
)

// Screen-facing failure texts.
const (
	MsgInvalidCredentials = "Invalid Credentials"
	MsgErrorLogin         = "Error Login"
	MsgErrorRegister      = "Error register"
)

// Credential is the single registered account kept on the device.
type Credential struct {
	Name     string
	Email    string
	Password string
}

// Matches reports whether email and password equal the stored values exactly.
// No trimming or case folding is applied.
func (c Credential) Matches(email, password string) bool {
	return c.Email == email && c.Password == password
}
