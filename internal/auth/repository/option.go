package repository

type CreateUserOptions struct {
	Email        string
	PasswordHash string
}

// GetOneUserOptions matches by ID or by Email; ID wins when both are set.
type GetOneUserOptions struct {
	ID    string
	Email string
}
