package account

// Request field names are fixed by the legacy web clients (camelCase in,
// PascalCase out).

type CreateAccountInput struct {
	User    string `json:"user" binding:"required,min=3,max=50"`
	Email   string `json:"email" binding:"required,email"`
	PwHash  string `json:"pwHash" binding:"required,len=64,hexadecimal"`
	Contact string `json:"contact"`
	Dept    string `json:"dept"`
}

type LoginInput struct {
	User   string `json:"user" binding:"required"`
	PwHash string `json:"pwHash" binding:"required"`
}

type ApproveUserInput struct {
	User string `json:"user" binding:"required"`
}

// PendingUserDTO is the wire form of a pending registration; the password
// digest never leaves the server.
type PendingUserDTO struct {
	Username   string `json:"Username"`
	Email      string `json:"Email"`
	Contact    string `json:"Contact"`
	Department string `json:"Department"`
}

func ToPendingUserDTO(p PendingAccount) PendingUserDTO {
	return PendingUserDTO{
		Username:   p.Username,
		Email:      p.Email,
		Contact:    p.Contact,
		Department: p.Department,
	}
}

func ToPendingUserDTOs(pending []PendingAccount) []PendingUserDTO {
	out := make([]PendingUserDTO, 0, len(pending))
	for _, p := range pending {
		out = append(out, ToPendingUserDTO(p))
	}
	return out
}
