package repository

import "github.com/jhoicas/Hosteleria-api/internal/domain/entity"

// CashSessionRepository define el puerto de persistencia para sesiones de caja.
// La unicidad de sesión abierta por departamento la garantiza la BD (índice
// único parcial), no un check-then-insert.
type CashSessionRepository interface {
	Create(session *entity.CashSession) error
	GetByID(id string) (*entity.CashSession, error)
	GetForUpdate(id string) (*entity.CashSession, error)
	Update(session *entity.CashSession) error
	ListByDepartment(department string, limit, offset int) ([]*entity.CashSession, error)
}
