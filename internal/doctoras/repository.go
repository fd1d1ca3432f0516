package doctoras

import "gorm.io/gorm"

// Repository encapsula las operaciones de banco para Doctora.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Crear(d *Doctora) error {
	return r.DB.Create(d).Error
}

func (r *Repository) Listar(sedeID uint) ([]Doctora, error) {
	var list []Doctora
	q := r.DB
	if sedeID != 0 {
		q = q.Where("sede_id = ?", sedeID)
	}
	err := q.Order("nombre").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Doctora, error) {
	var d Doctora
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Actualizar(d *Doctora) error {
	return r.DB.Save(d).Error
}

func (r *Repository) Eliminar(d *Doctora) error {
	return r.DB.Delete(d).Error
}
