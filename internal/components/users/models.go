package users

type (
	User struct {
		Username     string `json:"username"`
		PasswordHash string `json:"-"` // Never serialize password hash
	}

	SignUpIn struct {
		Username        string `json:"username"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}
)
