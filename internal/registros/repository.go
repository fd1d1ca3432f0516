package registros

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

// Filtros de listado; campos en cero se ignoran.
type Filtros struct {
	SedeID         uint
	Profesional    string
	Paciente       string
	Servicio       string
	Desde          *time.Time
	Hasta          *time.Time
	SoloPendientes bool
}

func (r *Repository) Crear(reg *RegistroTratamiento) error {
	return r.DB.Create(reg).Error
}

func (r *Repository) Listar(f Filtros) ([]RegistroTratamiento, error) {
	var list []RegistroTratamiento
	q := r.DB
	if f.SedeID != 0 {
		q = q.Where("sede_id = ?", f.SedeID)
	}
	if f.Profesional != "" {
		q = q.Where("profesional = ?", f.Profesional)
	}
	if f.Paciente != "" {
		q = q.Where("paciente ILIKE ?", "%"+f.Paciente+"%")
	}
	if f.Servicio != "" {
		q = q.Where("servicio = ?", f.Servicio)
	}
	if f.Desde != nil {
		q = q.Where("fecha >= ?", *f.Desde)
	}
	if f.Hasta != nil {
		q = q.Where("fecha <= ?", *f.Hasta)
	}
	if f.SoloPendientes {
		q = q.Where("liquidado = ?", false)
	}
	err := q.Order("fecha, id").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*RegistroTratamiento, error) {
	var reg RegistroTratamiento
	if err := r.DB.First(&reg, id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *Repository) BuscarPorIDs(ids []uint) ([]RegistroTratamiento, error) {
	var list []RegistroTratamiento
	err := r.DB.Where("id IN ? AND liquidado = ?", ids, false).
		Order("fecha, id").
		Find(&list).Error
	return list, err
}

// BuscarGrupo retorna los registros pendientes de un tratamiento
// (profesional, paciente, servicio).
func (r *Repository) BuscarGrupo(tx *gorm.DB, profesional, paciente, servicio string) ([]RegistroTratamiento, error) {
	var list []RegistroTratamiento
	err := tx.Where(
		"profesional = ? AND paciente = ? AND servicio = ? AND liquidado = ?",
		profesional, paciente, servicio, false,
	).Order("fecha, id").Find(&list).Error
	return list, err
}

func (r *Repository) Actualizar(reg *RegistroTratamiento) error {
	return r.DB.Save(reg).Error
}

func (r *Repository) Eliminar(reg *RegistroTratamiento) error {
	return r.DB.Delete(reg).Error
}

func (r *Repository) EliminarLote(ids []uint) error {
	return r.DB.Delete(&RegistroTratamiento{}, ids).Error
}

// MarcarLiquidados saca los registros del pozo de pendientes. Se llama
// dentro de la transacción que crea la liquidación.
func MarcarLiquidados(tx *gorm.DB, ids []uint) error {
	return tx.Model(&RegistroTratamiento{}).
		Where("id IN ?", ids).
		Update("liquidado", true).Error
}
