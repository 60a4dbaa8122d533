package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"telemind_backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	// FindConflict возвращает имя первого занятого уникального поля
	// (приоритет: username, email, mobile) или пустую строку.
	FindConflict(username, email, mobile string) (string, error)
	Update(id string, fields map[string]interface{}) (*models.User, error)
	Delete(id string) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		// Гонка двух одновременных регистраций разрешается
		// уникальным индексом БД: проигравший получает конфликт.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindConflict(username, email, mobile string) (string, error) {
	var existing models.User
	err := r.db.
		Where("username = ? OR email = ? OR mobile = ?", username, email, mobile).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}

	// Приоритет совпадений фиксирован: username, затем email, затем mobile
	switch {
	case existing.Username == username:
		return "Username", nil
	case existing.Email == email:
		return "Email", nil
	default:
		return "Mobile", nil
	}
}

func (r *UserRepositoryImpl) Update(id string, fields map[string]interface{}) (*models.User, error) {
	fields["updated_at"] = time.Now()

	result := r.db.Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	return r.FindByID(id)
}

// Delete идемпотентен: отсутствие записи не считается ошибкой
func (r *UserRepositoryImpl) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.User{}).Error
}
