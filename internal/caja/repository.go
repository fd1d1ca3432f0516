package caja

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Obtener retorna el cuadre de una sede; si nunca se ha fijado retorna
// un cuadre en cero sin persistirlo.
func (r *Repository) Obtener(sedeID uint) (*CuadreCaja, error) {
	var c CuadreCaja
	err := r.DB.Where("sede_id = ?", sedeID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &CuadreCaja{SedeID: sedeID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Fijar deja la base de la sede en el valor indicado, creando la fila si
// no existe.
func (r *Repository) Fijar(sedeID uint, base float64) (*CuadreCaja, error) {
	var c CuadreCaja
	err := r.DB.Where("sede_id = ?", sedeID).First(&c).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c = CuadreCaja{SedeID: sedeID, Base: base}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		c.Base = base
		if err := r.DB.Save(&c).Error; err != nil {
			return nil, err
		}
	}
	return &c, nil
}

// AplicarDelta incrementa la base en una sola sentencia SQL. El upsert
// sobre sede_id cubre también el primer movimiento de una sede: dos
// cierres concurrentes nunca pierden incrementos ni chocan en el índice
// único, porque el total jamás se lee antes de escribirse.
func AplicarDelta(db *gorm.DB, sedeID uint, delta float64) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "sede_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"base": gorm.Expr("cuadre_cajas.base + excluded.base"),
		}),
	}).Create(&CuadreCaja{SedeID: sedeID, Base: delta}).Error
}

// AplicarDelta sobre el DB del repositorio.
func (r *Repository) AplicarDelta(sedeID uint, delta float64) error {
	return AplicarDelta(r.DB, sedeID, delta)
}
