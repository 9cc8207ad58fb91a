package model

import "time"

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the projection returned by the API. The password hash is
// never part of any response body.
type PublicUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

// UserPatch carries the fields of a partial update. Nil pointers mean the
// field is left untouched. PasswordHash is set by the service after hashing,
// never from client input directly.
type UserPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.PasswordHash == nil
}
