package repository

import "github.com/jhoicas/Hosteleria-api/internal/domain/entity"

// TabRepository define el puerto de persistencia para cuentas de bar.
type TabRepository interface {
	Create(tab *entity.Tab) error
	GetByID(id string) (*entity.Tab, error)
	// GetForUpdate bloquea la fila para serializar pagos concurrentes.
	GetForUpdate(id string) (*entity.Tab, error)
	Update(tab *entity.Tab) error
	ListByDepartment(department string, limit, offset int) ([]*entity.Tab, error)
}
