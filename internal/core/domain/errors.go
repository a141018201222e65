package domain

import "errors"

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrNotificationNotFound = errors.New("notification not found")
)
