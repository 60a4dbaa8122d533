package contextkeys

// Кастомный тип ключа, чтобы избежать коллизий в context
type contextKey string

// UserContextKey - ключ, по которому middleware кладет
// аутентифицированного пользователя в gin.Context
const UserContextKey = contextKey("currentUser")

// UserIDContextKey - ключ для идентификатора аутентифицированного пользователя
const UserIDContextKey = contextKey("userID")

func (k contextKey) String() string {
	return string(k)
}
