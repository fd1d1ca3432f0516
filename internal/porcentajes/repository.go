package porcentajes

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Crear(p *Porcentaje) error {
	return r.DB.Create(p).Error
}

func (r *Repository) Listar() ([]Porcentaje, error) {
	var list []Porcentaje
	err := r.DB.Order("id").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Porcentaje, error) {
	var p Porcentaje
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ValorPorID retorna la fracción de un nivel. Es el resolutor que usa la
// liquidación; si falla, la liquidación aplica el porcentaje por defecto.
func (r *Repository) ValorPorID(id uint) (float64, error) {
	p, err := r.BuscarPorID(id)
	if err != nil {
		return 0, err
	}
	return p.Valor, nil
}

func (r *Repository) Actualizar(p *Porcentaje) error {
	return r.DB.Save(p).Error
}

func (r *Repository) Eliminar(p *Porcentaje) error {
	return r.DB.Delete(p).Error
}
