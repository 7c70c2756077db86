package service

import (
	"github.com/Dan9191/auth-service/internal/auth"
	"github.com/Dan9191/auth-service/internal/models"
	"github.com/Dan9191/auth-service/internal/repository"
	"github.com/sirupsen/logrus"
)

// Mailer sends a welcome email after registration. Optional: a nil Mailer
// disables sending.
type Mailer interface {
	SendWelcome(to, name string) error
}

// Service handles business logic
type Service struct {
	repo   *repository.Repository
	tokens *auth.TokenManager
	mailer Mailer
	log    *logrus.Logger
}

// NewService initializes a new service
func NewService(repo *repository.Repository, tokens *auth.TokenManager, mailer Mailer, log *logrus.Logger) *Service {
	return &Service{repo: repo, tokens: tokens, mailer: mailer, log: log}
}

// Register validates and creates a new user with a hashed password. The
// returned summary never carries password material. Uniqueness is checked
// against a snapshot loaded here; a concurrent Register can slip a duplicate
// past the check (accepted flat-file limitation).
func (s *Service) Register(name, email, password string) (models.UserSummary, error) {
	var none models.UserSummary

	if name == "" {
		return none, &ValidationError{Field: "name"}
	}
	if email == "" {
		return none, &ValidationError{Field: "email"}
	}
	if password == "" {
		return none, &ValidationError{Field: "password"}
	}

	users, err := s.repo.LoadAll()
	if err != nil {
		return none, err
	}
	// Exact, case-sensitive match on both unique fields.
	for _, u := range users {
		if u.Name == name {
			return none, ErrNameExists
		}
		if u.Email == email {
			return none, ErrEmailExists
		}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return none, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.AppendUser(user); err != nil {
		return none, err
	}

	s.log.Infof("User registered: %s", user.Name)

	if s.mailer != nil {
		// Best effort: a mail failure does not undo the registration.
		if err := s.mailer.SendWelcome(user.Email, user.Name); err != nil {
			s.log.Warnf("Welcome email not sent to %s: %v", user.Email, err)
		}
	}

	return user.Summary(), nil
}

// Login verifies credentials and returns a signed session token bound to name.
func (s *Service) Login(name, password string) (string, error) {
	if name == "" {
		return "", &ValidationError{Field: "name"}
	}
	if password == "" {
		return "", &ValidationError{Field: "password"}
	}

	users, err := s.repo.LoadAll()
	if err != nil {
		return "", err
	}

	var found *models.User
	for i := range users {
		if users[i].Name == name {
			found = &users[i]
			break
		}
	}
	if found == nil {
		return "", ErrNameNotFound
	}

	if !auth.CheckPassword(password, found.PasswordHash) {
		return "", ErrPasswordMismatch
	}

	token, err := s.tokens.Issue(name)
	if err != nil {
		return "", err
	}

	s.log.Infof("User logged in: %s", name)
	return token, nil
}

// ListUsers returns all registered users in store order as public summaries.
func (s *Service) ListUsers() ([]models.UserSummary, error) {
	users, err := s.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	return summaries, nil
}
