package repository

import "github.com/pedrolucasmota/obralog-api/internal/domain/entity"

// AccessProfileRepository define el puerto de persistencia para perfiles de acceso (DIP).
type AccessProfileRepository interface {
	Create(profile *entity.AccessProfile) error
	GetByID(id string) (*entity.AccessProfile, error)
	Update(profile *entity.AccessProfile) error
	List() ([]*entity.AccessProfile, error)
	Delete(id string) error
}
