package usuarios

import "gorm.io/gorm"

// Repository encapsula las operaciones de banco para Usuario.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Crear(u *Usuario) error {
	return r.DB.Create(u).Error
}

func (r *Repository) BuscarPorUsuario(usuario string) (*Usuario, error) {
	var u Usuario
	if err := r.DB.Where("usuario = ?", usuario).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) BuscarPorID(id uint) (*Usuario, error) {
	var u Usuario
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) Contar() (int64, error) {
	var n int64
	err := r.DB.Model(&Usuario{}).Count(&n).Error
	return n, err
}
