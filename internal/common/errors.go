// Package common defines shared constants and sentinel errors used across
// the ecosocial server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Directory errors.
	ErrUsernameTaken      = errors.New("username-taken")
	ErrEmailTaken         = errors.New("email-taken")
	ErrInvalidCredentials = errors.New("invalid-credentials")

	// Content and event errors.
	ErrAuthorNotFound  = errors.New("author-not-found")
	ErrCreatorNotFound = errors.New("creator-not-found")

	// Boundary validation errors.
	ErrInvalidDatetime        = errors.New("invalid-datetime")
	ErrInvalidInterestsFormat = errors.New("invalid-interests")
	ErrMissingRequiredFields  = errors.New("missing-required-fields")
	ErrMissingCredentials     = errors.New("missing-credentials")

	ErrAuthorTopicContentRequired = errors.New("author-topic-content-required")

	// Session errors.
	ErrTokenRequired = errors.New("token-required")
	ErrInvalidToken  = errors.New("invalid-token")
)
