package contextkeys

// Используем кастомный тип, чтобы избежать коллизий с другими пакетами
type contextKey string

// UserIDKey - ключ, по которому middleware кладет ID пользователя в gin.Context
const UserIDKey = contextKey("userID")

// RoleKey - ключ, по которому middleware кладет роль пользователя в gin.Context
const RoleKey = contextKey("role")
