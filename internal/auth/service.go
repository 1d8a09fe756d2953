// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

package auth

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/amirdzh/formkeeper/internal/db"
	"github.com/amirdzh/formkeeper/internal/i18n"
	"github.com/amirdzh/formkeeper/internal/logging"
)

// Result is the outcome of a registration or login attempt. Failed attempts
// carry a user-facing message; successful ones additionally carry the user's
// id and normalized username.
type Result struct {
	OK       bool
	Message  string
	UserID   int
	Username string
}

// Config holds the registration policy knobs.
type Config struct {
	MinPasswordLength int
	UsernamePattern   string
}

// Defaults applied when a Config field is left zero.
const (
	DefaultMinPasswordLength = 6
	DefaultUsernamePattern   = "^[a-zA-Z0-9_]+$"
)

// Service validates credentials and orchestrates the user store and the
// password hasher. It never lets a storage error escape a Register or Login
// call; failures come back as Results.
type Service struct {
	users   db.UserStore
	minLen  int
	pattern *regexp.Regexp
}

// NewService builds a Service over the given user store. An invalid username
// pattern is a programming error in the configuration and is reported as such.
func NewService(users db.UserStore, cfg Config) (*Service, error) {
	minLen := cfg.MinPasswordLength
	if minLen <= 0 {
		minLen = DefaultMinPasswordLength
	}
	patternSrc := cfg.UsernamePattern
	if patternSrc == "" {
		patternSrc = DefaultUsernamePattern
	}
	pattern, err := regexp.Compile(patternSrc)
	if err != nil {
		return nil, fmt.Errorf("invalid username pattern %q: %w", patternSrc, err)
	}
	return &Service{users: users, minLen: minLen, pattern: pattern}, nil
}

func failure(message string) Result {
	return Result{OK: false, Message: message}
}

// Register validates the input, hashes the password and persists a new user.
// Validation short-circuits on the first failure, in a fixed order: presence,
// confirmation match, length, character class, availability.
func (s *Service) Register(username, password, confirmPassword string) Result {
	if username == "" || password == "" || confirmPassword == "" {
		return failure(i18n.T("auth.all_fields_required"))
	}

	username = strings.ToLower(strings.TrimSpace(username))

	if password != confirmPassword {
		return failure(i18n.T("auth.passwords_no_match"))
	}
	if utf8.RuneCountInString(password) < s.minLen {
		return failure(i18n.Tf("auth.password_too_short", map[string]interface{}{"Min": s.minLen}))
	}
	if !s.pattern.MatchString(username) {
		return failure(i18n.T("auth.username_invalid_chars"))
	}

	taken, err := s.users.UserExists(username)
	if err != nil {
		logging.Errorf("auth: availability check for %q failed: %v", username, err)
		return failure(i18n.Tf("auth.register_failed", map[string]interface{}{"Reason": err.Error()}))
	}
	if taken {
		return failure(i18n.Tf("auth.username_taken", map[string]interface{}{"Username": username}))
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return failure(i18n.Tf("auth.register_failed", map[string]interface{}{"Reason": err.Error()}))
	}

	userID, err := s.users.CreateUser(username, hashed)
	if err != nil {
		// Covers the race where the name was taken between the check and the
		// insert, as well as plain storage failures.
		logging.Errorf("auth: persisting user %q failed: %v", username, err)
		return failure(i18n.Tf("auth.register_failed", map[string]interface{}{"Reason": err.Error()}))
	}

	return Result{
		OK:       true,
		Message:  i18n.T("auth.register_success"),
		UserID:   userID,
		Username: username,
	}
}

// Login authenticates a user. An unknown username and a wrong password
// produce the identical generic message so the response doesn't reveal which
// usernames exist.
func (s *Service) Login(username, password string) Result {
	if username == "" || password == "" {
		return failure(i18n.T("auth.fields_required"))
	}

	username = strings.ToLower(strings.TrimSpace(username))

	user, err := s.users.FindUserByUsername(username)
	if err != nil {
		logging.Errorf("auth: lookup for %q failed: %v", username, err)
		return failure(i18n.T("auth.invalid_credentials"))
	}
	if user == nil {
		return failure(i18n.T("auth.invalid_credentials"))
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return failure(i18n.T("auth.invalid_credentials"))
	}

	return Result{
		OK:       true,
		Message:  i18n.Tf("auth.login_welcome", map[string]interface{}{"Username": user.Username}),
		UserID:   user.ID,
		Username: user.Username,
	}
}

// LastUsername returns the most recently registered username, for pre-filling
// a login prompt. Storage errors degrade to an empty pre-fill.
func (s *Service) LastUsername() string {
	name, err := s.users.LastCreatedUsername()
	if err != nil {
		logging.Debugf("auth: last username lookup failed: %v", err)
		return ""
	}
	return name
}
