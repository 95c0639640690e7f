package entity

// Roles presentes en el directorio de usuarios.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// User representa un usuario del directorio (datos de referencia, inmutables en runtime).
// PIN es un secreto compartido en texto plano: el login es una búsqueda, no un límite de seguridad.
type User struct {
	Name string
	PIN  string
	Role string
}
