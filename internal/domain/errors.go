package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists   = errors.New("el email ya está registrado")
	ErrInvalidCredentials   = errors.New("email o contraseña inválidos")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrCategoryNotExists    = errors.New("la categoría no existe")
	ErrSubCategoryNotExists = errors.New("la subcategoría no existe")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
)
