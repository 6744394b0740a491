package repository

import (
	"context"
	"strings"

	"hotel-booking/models"
)

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	return translate("create user", s.db.WithContext(ctx).Create(u).Error)
}

func (s *Store) GetUser(ctx context.Context, id uint) (models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).First(&u, id).Error
	return u, translate("get user", err)
}

// FindUserByLogin matches either the username or the email, case-insensitively for email.
func (s *Store) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	var u models.User
	login = strings.TrimSpace(login)
	err := s.db.WithContext(ctx).
		Where("username = ? OR LOWER(email) = ?", login, strings.ToLower(login)).
		First(&u).Error
	return u, translate("find user", err)
}

// UserExists reports which of username/email are already taken.
func (s *Store) UserExists(ctx context.Context, username, email string) (usernameTaken, emailTaken bool, err error) {
	var n int64
	if err = s.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&n).Error; err != nil {
		return false, false, translate("count users", err)
	}
	usernameTaken = n > 0
	if err = s.db.WithContext(ctx).Model(&models.User{}).Where("LOWER(email) = ?", strings.ToLower(email)).Count(&n).Error; err != nil {
		return false, false, translate("count users", err)
	}
	emailTaken = n > 0
	return usernameTaken, emailTaken, nil
}
