package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword создает bcrypt хеш пароля (соль генерируется заново при каждом вызове)
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash проверяет пароль против хеша.
// Несовпадение - это false, а не ошибка; сравнение внутри bcrypt
// устойчиво к timing-атакам.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
