package usecase

import (
	"github.com/google/uuid"
	"github.com/pedrolucasmota/obralog-api/internal/application/dto"
	"github.com/pedrolucasmota/obralog-api/internal/domain"
	"github.com/pedrolucasmota/obralog-api/internal/domain/entity"
	"github.com/pedrolucasmota/obralog-api/internal/domain/repository"
)

// ProfileUseCase casos de uso CRUD para perfiles de acceso.
type ProfileUseCase struct {
	repo repository.AccessProfileRepository
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(repo repository.AccessProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

// Create crea un perfil de acceso.
func (uc *ProfileUseCase) Create(in dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	profile := &entity.AccessProfile{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Permissions:  in.Permissions,
		AllSites:     in.AllSites,
		AllowedSites: in.AllowedSites,
	}
	if err := uc.repo.Create(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// GetByID obtiene un perfil por ID.
func (uc *ProfileUseCase) GetByID(id string) (*dto.ProfileResponse, error) {
	profile, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return toProfileResponse(profile), nil
}

// Update actualiza un perfil; los campos nil no se tocan.
func (uc *ProfileUseCase) Update(id string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		profile.Name = *in.Name
	}
	if in.Permissions != nil {
		profile.Permissions = *in.Permissions
	}
	if in.AllSites != nil {
		profile.AllSites = *in.AllSites
	}
	if in.AllowedSites != nil {
		profile.AllowedSites = *in.AllowedSites
	}
	if err := uc.repo.Update(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// List lista todos los perfiles ordenados por nombre.
func (uc *ProfileUseCase) List() ([]dto.ProfileResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProfileResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProfileResponse(p))
	}
	return items, nil
}

// Delete elimina un perfil por ID.
func (uc *ProfileUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProfileResponse(p *entity.AccessProfile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:           p.ID,
		Name:         p.Name,
		Permissions:  p.Permissions,
		AllSites:     p.AllSites,
		AllowedSites: p.AllowedSites,
	}
}
