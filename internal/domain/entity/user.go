package entity

import "time"

// User representa un usuario administrador del catálogo.
// Inmutable después del registro: no existe ruta de actualización ni borrado.
type User struct {
	ID           string
	Name         string
	Email        string // único, validado al escribir
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}
