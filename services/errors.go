// File: /services/errors.go
package services

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNoConversation   = errors.New("no conversation resolved")
)
