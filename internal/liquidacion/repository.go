package liquidacion

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

// Crear persiste el lote con sus detalles dentro de la transacción dada.
func Crear(tx *gorm.DB, l *Liquidacion) error {
	return tx.Create(l).Error
}

// hastaExclusivo convierte la fecha de corte (a medianoche) en el límite
// superior exclusivo del rango: la medianoche del día siguiente.
func hastaExclusivo(hasta time.Time) time.Time {
	return hasta.AddDate(0, 0, 1)
}

func (r *Repository) Listar(profesional string, desde, hasta *time.Time) ([]Liquidacion, error) {
	var list []Liquidacion
	q := r.DB.Preload("Detalles")
	if profesional != "" {
		q = q.Where("profesional = ?", profesional)
	}
	if desde != nil {
		q = q.Where("fecha_liquidacion >= ?", *desde)
	}
	if hasta != nil {
		// FechaLiquidacion lleva hora; el límite corre al día siguiente
		// para que los lotes liquidados el propio día de corte entren.
		q = q.Where("fecha_liquidacion < ?", hastaExclusivo(*hasta))
	}
	err := q.Order("fecha_liquidacion desc, id desc").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Liquidacion, error) {
	var l Liquidacion
	if err := r.DB.Preload("Detalles").First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}
