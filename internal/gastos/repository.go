package gastos

import (
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Crear(g *Gasto) error {
	return r.DB.Create(g).Error
}

// Filtros de listado; campos en cero se ignoran.
type Filtros struct {
	SedeID uint
	Desde  *time.Time
	Hasta  *time.Time
}

func (r *Repository) Listar(f Filtros) ([]Gasto, error) {
	var list []Gasto
	q := r.DB
	if f.SedeID != 0 {
		q = q.Where("sede_id = ?", f.SedeID)
	}
	if f.Desde != nil {
		q = q.Where("fecha >= ?", *f.Desde)
	}
	if f.Hasta != nil {
		q = q.Where("fecha <= ?", *f.Hasta)
	}
	err := q.Order("fecha").Find(&list).Error
	return list, err
}
