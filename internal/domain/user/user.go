package user

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidRole  = errors.New("invalid role")
	ErrEmptyName    = errors.New("name is required")
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if _, err := mail.ParseAddress(s); err != nil {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) String() string {
	return e.value
}

type User struct {
	id    int64
	name  string
	email Email
	role  Role
}

func NewUser(name string, email Email, role Role) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return &User{name: name, email: email, role: role}, nil
}

func ReconstructUser(id int64, name string, email Email, role Role) *User {
	return &User{id: id, name: name, email: email, role: role}
}

func (u *User) ID() int64    { return u.id }
func (u *User) Name() string { return u.name }
func (u *User) Email() Email { return u.email }
func (u *User) Role() Role   { return u.role }
