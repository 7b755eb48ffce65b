package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/pedrolucasmota/obralog-api/internal/application/dto"
	"github.com/pedrolucasmota/obralog-api/internal/domain"
	"github.com/pedrolucasmota/obralog-api/internal/domain/entity"
	"github.com/pedrolucasmota/obralog-api/internal/domain/repository"
)

// SiteUseCase casos de uso CRUD para obras.
type SiteUseCase struct {
	repo repository.SiteRepository
}

// NewSiteUseCase construye el caso de uso.
func NewSiteUseCase(repo repository.SiteRepository) *SiteUseCase {
	return &SiteUseCase{repo: repo}
}

// Create crea una nueva obra.
func (uc *SiteUseCase) Create(in dto.CreateSiteRequest) (*dto.SiteResponse, error) {
	site := &entity.ConstructionSite{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(site); err != nil {
		return nil, err
	}
	return toSiteResponse(site), nil
}

// GetByID obtiene una obra por ID.
func (uc *SiteUseCase) GetByID(id string) (*dto.SiteResponse, error) {
	site, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, domain.ErrNotFound
	}
	return toSiteResponse(site), nil
}

// Update actualiza una obra.
func (uc *SiteUseCase) Update(id string, in dto.UpdateSiteRequest) (*dto.SiteResponse, error) {
	site, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		site.Name = *in.Name
	}
	if err := uc.repo.Update(site); err != nil {
		return nil, err
	}
	return toSiteResponse(site), nil
}

// List lista todas las obras ordenadas por nombre.
func (uc *SiteUseCase) List() ([]dto.SiteResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SiteResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSiteResponse(s))
	}
	return items, nil
}

// Delete elimina una obra por ID.
func (uc *SiteUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toSiteResponse(s *entity.ConstructionSite) *dto.SiteResponse {
	if s == nil {
		return nil
	}
	return &dto.SiteResponse{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
	}
}
