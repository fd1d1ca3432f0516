package pacientes

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Crear(p *Paciente) error {
	return r.DB.Create(p).Error
}

// BuscarPorNombre retorna pacientes cuyo nombre contiene el texto dado.
func (r *Repository) BuscarPorNombre(texto string) ([]Paciente, error) {
	var list []Paciente
	err := r.DB.
		Where("nombre ILIKE ?", "%"+texto+"%").
		Order("nombre").
		Limit(50).
		Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Paciente, error) {
	var p Paciente
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// AbonarCredito suma el valor al crédito del paciente en una sola
// sentencia, sin leer antes el saldo.
func (r *Repository) AbonarCredito(id uint, valor float64) error {
	return r.DB.Model(&Paciente{}).
		Where("id = ?", id).
		UpdateColumn("credito", gorm.Expr("credito + ?", valor)).Error
}
