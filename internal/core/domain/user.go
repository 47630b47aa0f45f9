package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid login details")

// User is the identity record created at registration. Only the
// bcrypt hash of the password is persisted.
type User struct {
	ID           string `json:"user_id" bson:"_id,omitempty"`
	Username     string `json:"username" bson:"username"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"password_hash"`
}
