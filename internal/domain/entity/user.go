package entity

import "time"

// User representa el dueño de los datos (tenant). Cada fila de negocio
// pertenece a exactamente un usuario autenticado (OwnerID = User.ID).
type User struct {
	ID           string
	Email        string // único
	Name         string
	PasswordHash string // bcrypt
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
