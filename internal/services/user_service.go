package services

import (
	"time"

	"github.com/google/uuid"

	"telemind_backend/internal/auth"
	"telemind_backend/internal/models"
	"telemind_backend/internal/repositories"
	"telemind_backend/internal/services/dto"
	"telemind_backend/pkg/apperrors"
)

type UserService interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetByID(id string) (*models.User, error)
	UpdateByID(id string, req *dto.UpdateUserRequest) (*models.User, error)
	UpdateProfile(userID string, req *dto.UpdateUserRequest) (*models.User, error)
	Delete(id string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
}

func NewUserService(userRepo repositories.UserRepository, tokens *auth.TokenManager) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register - регистрация нового пациента
func (s *UserServiceImpl) Register(req *dto.RegisterRequest) (*models.User, error) {
	dob, err := parseDOB(req.DOB)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid date of birth format, expected YYYY-MM-DD")
	}

	// Предварительная проверка уникальности с фиксированным приоритетом:
	// username, затем email, затем mobile
	field, err := s.userRepo.FindConflict(req.Username, req.Email, req.Mobile)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if field != "" {
		return nil, apperrors.ErrDuplicateField(field)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FullName:     req.FullName,
		Username:     req.Username,
		Email:        req.Email,
		Mobile:       req.Mobile,
		PasswordHash: hashedPassword,
		Address:      req.Address,
		Occupation:   req.Occupation,
		DOB:          dob,
	}

	if err := s.userRepo.Create(user); err != nil {
		// Проигравший гонку регистраций упирается в уникальный индекс
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrDuplicateField("Username")
		}
		return nil, apperrors.InternalError(err)
	}

	return user, nil
}

// Login - аутентификация по username и паролю
func (s *UserServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Success:  true,
		Message:  "Login successful",
		ID:       user.ID,
		FullName: user.FullName,
		Token:    token,
		User: dto.LoginUser{
			Username: user.Username,
			Email:    user.Email,
		},
	}, nil
}

func (s *UserServiceImpl) GetByID(id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrMalformedID("user", "Invalid User ID")
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// UpdateByID - частичное обновление по идентификатору
func (s *UserServiceImpl) UpdateByID(id string, req *dto.UpdateUserRequest) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrMalformedID("user", "Invalid User ID")
	}
	return s.applyUpdate(id, req)
}

// UpdateProfile - обновление собственного профиля аутентифицированным
// пользователем. Путь тот же, что и у UpdateByID: в частности, пароль
// перехешируется одинаково в обоих случаях.
func (s *UserServiceImpl) UpdateProfile(userID string, req *dto.UpdateUserRequest) (*models.User, error) {
	return s.applyUpdate(userID, req)
}

func (s *UserServiceImpl) applyUpdate(id string, req *dto.UpdateUserRequest) (*models.User, error) {
	fields, err := s.buildUpdateFields(req)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		// Нечего менять - возвращаем текущее состояние
		return s.GetByID(id)
	}

	user, err := s.userRepo.Update(id, fields)
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrUserNotFound):
			return nil, apperrors.ErrNotFound("user", "User not found")
		case apperrors.Is(err, repositories.ErrUserAlreadyExists):
			return nil, apperrors.ErrDuplicateField("Username")
		default:
			return nil, apperrors.InternalError(err)
		}
	}
	return user, nil
}

// buildUpdateFields переводит частичный запрос в карту колонок.
// Единая точка, где пароль превращается в свежий bcrypt-хеш.
func (s *UserServiceImpl) buildUpdateFields(req *dto.UpdateUserRequest) (map[string]interface{}, error) {
	fields := map[string]interface{}{}

	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Mobile != nil {
		fields["mobile"] = *req.Mobile
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Occupation != nil {
		fields["occupation"] = *req.Occupation
	}
	if req.DOB != nil {
		dob, err := parseDOB(*req.DOB)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid date of birth format, expected YYYY-MM-DD")
		}
		fields["dob"] = dob
	}
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		fields["password_hash"] = hashed
	}

	return fields, nil
}

// Delete идемпотентен: повторное удаление уже отсутствующей записи - не ошибка
func (s *UserServiceImpl) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrMalformedID("user", "Invalid User ID")
	}

	if err := s.userRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func parseDOB(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
