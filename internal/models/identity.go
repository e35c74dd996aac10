package models

type Identity struct {
	UID   string
	Email string
	Role  string // "student" или "instructor"
}
