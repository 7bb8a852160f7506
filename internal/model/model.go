// Package model defines domain entities shared by stores, facades and the CLI.
package model

// UserType distinguishes master (admin) accounts from default ones.
type UserType string

const (
	UserTypeMaster  UserType = "master"
	UserTypeDefault UserType = "default"
)

// Status is the activation flag used by the backend (0 inactive, 1 active).
type Status int

const (
	StatusInactive Status = 0
	StatusActive   Status = 1
)

// User is an account record as returned by the API. Employees share the
// exact same wire shape, so Employee is an alias rather than a second struct.
type User struct {
	ID         int64    `json:"id"`
	FullName   string   `json:"fullName"`
	Phone      string   `json:"phone"`
	Email      string   `json:"email"`
	Department string   `json:"department"`
	Position   string   `json:"position"`
	Type       UserType `json:"type"`
	Status     Status   `json:"status"`
	CreatedAt  string   `json:"createdAt"`
	UpdatedAt  string   `json:"updatedAt"`
}

// Employee is the same record viewed through the employee endpoints.
type Employee = User

// Credentials carry a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the payload of a successful login: the identity plus an
// opaque bearer token. Both are set together or not at all.
type LoginResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// CreateEmployee is the input for creating an employee (server assigns id,
// type, status and timestamps).
type CreateEmployee struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

// UpdateEmployee is the input for a full employee update.
type UpdateEmployee struct {
	ID         int64  `json:"id"`
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Active     bool   `json:"status"`
}

// TimeEntry is a single recorded work interval. Date is "2006-01-02",
// times are "15:04". DurationHours is supplied by the caller and already
// accounts for the lunch break when one is present.
type TimeEntry struct {
	ID             int64   `json:"id"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Description    string  `json:"description"`
	DurationHours  float64 `json:"durationHours"`
	EntryType      string  `json:"entryType,omitempty"`
	LunchStartTime string  `json:"lunchStartTime,omitempty"`
	LunchEndTime   string  `json:"lunchEndTime,omitempty"`
}
