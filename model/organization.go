package model

// Branch is one office of the organization.
type Branch struct {
	EncodedKey   string `json:"encodedKey,omitempty"`
	ID           string `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	Phone        string `json:"phoneNumber,omitempty"`
	Email        string `json:"emailAddress,omitempty"`
	Notes        string `json:"notes,omitempty"`
	CreationDate string `json:"creationDate,omitempty"`
}

// Centre is a meeting point attached to a branch.
type Centre struct {
	EncodedKey     string `json:"encodedKey,omitempty"`
	ID             string `json:"id,omitempty"`
	Name           string `json:"name,omitempty"`
	AssignedBranch string `json:"assignedBranchKey,omitempty"`
	MeetingDay     string `json:"meetingDay,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// User is a back-office account on the platform.
type User struct {
	EncodedKey     string `json:"encodedKey,omitempty"`
	ID             string `json:"id,omitempty"`
	Username       string `json:"username,omitempty"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Email          string `json:"email,omitempty"`
	AssignedBranch string `json:"assignedBranchKey,omitempty"`
}

// Currency is one currency configured for the organization.
type Currency struct {
	Code   string `json:"code,omitempty"`
	Name   string `json:"name,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}
