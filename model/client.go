// Package model holds the wire representations of Crediflow resources.
// Field names follow the backend's JSON contract; validate tags describe
// what the backend requires when an entity is created or updated.
package model

// Client is an individual borrower or depositor.
type Client struct {
	EncodedKey     string `json:"encodedKey,omitempty"`
	ID             string `json:"id,omitempty"`
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	MiddleName     string `json:"middleName,omitempty"`
	Email          string `json:"emailAddress,omitempty" validate:"omitempty,email"`
	MobilePhone    string `json:"mobilePhone1,omitempty"`
	HomePhone      string `json:"homePhone,omitempty"`
	State          string `json:"state,omitempty"`
	BirthDate      string `json:"birthDate,omitempty"`
	Gender         string `json:"gender,omitempty"`
	AssignedBranch string `json:"assignedBranchKey,omitempty"`
	AssignedUser   string `json:"assignedUserKey,omitempty"`
	CreationDate   string `json:"creationDate,omitempty"`
}

// Group is a set of clients served together.
type Group struct {
	EncodedKey     string `json:"encodedKey,omitempty"`
	ID             string `json:"id,omitempty"`
	GroupName      string `json:"groupName" validate:"required"`
	Notes          string `json:"notes,omitempty"`
	AssignedBranch string `json:"assignedBranchKey,omitempty"`
	AssignedUser   string `json:"assignedUserKey,omitempty"`
	CreationDate   string `json:"creationDate,omitempty"`
}
