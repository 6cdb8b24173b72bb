package repository

import (
	"errors"
	"fmt"

	"licensehub/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с пользователями

func (r *Repository) UserExistsByLogin(login string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.User{}).Where("login = ?", login).Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateUser(login, hashedPassword, fullName string, userRole int) (*ds.User, error) {
	user := ds.User{
		Login:    login,
		Password: hashedPassword,
		FullName: fullName,
		Role:     userRole,
	}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByLogin(login string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("login = ?", login).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("пользователь не найден")
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByID(id uint) (*ds.User, error) {
	var user ds.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("пользователь не найден")
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UpdateUser(user *ds.User) error {
	return r.db.Save(user).Error
}
