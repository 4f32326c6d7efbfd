package models

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// User represents a row of the users table.
type User struct {
	UserID       string      `db:"user_id"`
	Username     string      `db:"username"`
	Email        string      `db:"email"`
	PhoneNumber  string      `db:"phone_number"`
	PasswordHash string      `db:"password_hash"`
	Name         string      `db:"name"`
	Gender       pgtype.Text `db:"gender"`
	DateOfBirth  pgtype.Date `db:"dob"`
	Address      pgtype.Text `db:"address"`
	City         pgtype.Text `db:"city"`
	State        pgtype.Text `db:"state"`
	Zip          pgtype.Text `db:"zip"`
	Country      pgtype.Text `db:"country"`
	Roles        []string    `db:"roles"`
	Enabled      bool        `db:"enabled"`
	Timestamps
}
