package store

import (
	"auctionary/internal/models"
)

// CreateUser inserts a new user and fills in the generated id
func (s *Store) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

// UserByEmail looks up a user for registration/login checks
func (s *Store) UserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).Take(&user).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserByID returns a user by primary key
func (s *Store) UserByID(id int64) (*models.User, error) {
	var user models.User
	err := s.db.Where("user_id = ?", id).Take(&user).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserByToken resolves a session token to its user
func (s *Store) UserByToken(token string) (*models.User, error) {
	var user models.User
	err := s.db.Where("session_token = ?", token).Take(&user).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SetToken stores a freshly minted session token
func (s *Store) SetToken(userID int64, token string) error {
	return s.db.Model(&models.User{}).Where("user_id = ?", userID).
		Update("session_token", token).Error
}

// ClearToken logs the user out by dropping the session token
func (s *Store) ClearToken(userID int64) error {
	return s.db.Model(&models.User{}).Where("user_id = ?", userID).
		Update("session_token", nil).Error
}
