package model

// Task is a to-do item assigned to a user.
type Task struct {
	EncodedKey   string `json:"encodedKey,omitempty"`
	ID           int64  `json:"id,omitempty"`
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description,omitempty"`
	Status       string `json:"status,omitempty"`
	DueDate      string `json:"dueDate,omitempty"`
	AssignedUser string `json:"assignedUserKey,omitempty"`
	CreatedBy    string `json:"createdByUserKey,omitempty"`
}

// Document is a file attached to another entity.
type Document struct {
	EncodedKey   string `json:"encodedKey,omitempty"`
	ID           int64  `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	Type         string `json:"type,omitempty"`
	OwnerKey     string `json:"documentHolderKey,omitempty"`
	OwnerType    string `json:"documentHolderType,omitempty"`
	CreationDate string `json:"creationDate,omitempty"`
}

// CustomFieldValue is the value of one custom field on an entity.
type CustomFieldValue struct {
	EncodedKey     string `json:"encodedKey,omitempty"`
	CustomFieldID  string `json:"customFieldID,omitempty"`
	CustomFieldKey string `json:"customFieldKey,omitempty"`
	Value          string `json:"value,omitempty"`
	Indexed        bool   `json:"indexInList,omitempty"`
}
