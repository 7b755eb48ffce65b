package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/pedrolucasmota/obralog-api/internal/application/dto"
	"github.com/pedrolucasmota/obralog-api/internal/domain"
	"github.com/pedrolucasmota/obralog-api/internal/domain/entity"
	"github.com/pedrolucasmota/obralog-api/internal/domain/repository"
)

// RentedEquipmentUseCase registro de equipos alquilados por obra: entrada con fotos,
// salida con fotos, listado. No toca el inventario: el equipo alquilado es de terceros.
type RentedEquipmentUseCase struct {
	siteRepo repository.SiteRepository
	repo     repository.RentedEquipmentRepository
}

// NewRentedEquipmentUseCase construye el caso de uso.
func NewRentedEquipmentUseCase(siteRepo repository.SiteRepository, repo repository.RentedEquipmentRepository) *RentedEquipmentUseCase {
	return &RentedEquipmentUseCase{siteRepo: siteRepo, repo: repo}
}

// RegisterEntry registra la entrada de un equipo alquilado en estado ACTIVE.
func (uc *RentedEquipmentUseCase) RegisterEntry(siteID string, in dto.RegisterEntryRequest) (*dto.RentedEquipmentResponse, error) {
	site, err := uc.siteRepo.GetByID(siteID)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, domain.ErrNotFound
	}
	equipment := &entity.RentedEquipment{
		ID:          uuid.New().String(),
		SiteID:      siteID,
		Name:        in.Name,
		Supplier:    in.Supplier,
		Description: in.Description,
		EntryDate:   in.EntryDate,
		EntryPhotos: in.EntryPhotos,
		Status:      entity.EquipmentStatusActive,
		UpdatedAt:   time.Now(),
	}
	if err := uc.repo.Create(equipment); err != nil {
		return nil, err
	}
	return toRentedEquipmentResponse(equipment), nil
}

// RegisterExit registra la salida (devolución al proveedor) de un equipo activo.
func (uc *RentedEquipmentUseCase) RegisterExit(siteID, equipmentID string, in dto.RegisterExitRequest) (*dto.RentedEquipmentResponse, error) {
	equipment, err := uc.repo.GetByID(siteID, equipmentID)
	if err != nil {
		return nil, err
	}
	if equipment == nil {
		return nil, domain.ErrNotFound
	}
	if equipment.Status != entity.EquipmentStatusActive {
		return nil, domain.ErrInvalidInput
	}
	exitDate := in.ExitDate
	equipment.Status = entity.EquipmentStatusReturned
	equipment.ExitDate = &exitDate
	equipment.ExitPhotos = in.ExitPhotos
	equipment.UpdatedAt = time.Now()
	if err := uc.repo.Update(equipment); err != nil {
		return nil, err
	}
	return toRentedEquipmentResponse(equipment), nil
}

// List lista los equipos alquilados de la obra, entradas más recientes primero.
func (uc *RentedEquipmentUseCase) List(siteID string) ([]dto.RentedEquipmentResponse, error) {
	list, err := uc.repo.ListBySite(siteID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RentedEquipmentResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toRentedEquipmentResponse(e))
	}
	return items, nil
}

func toRentedEquipmentResponse(e *entity.RentedEquipment) *dto.RentedEquipmentResponse {
	if e == nil {
		return nil
	}
	return &dto.RentedEquipmentResponse{
		ID:          e.ID,
		SiteID:      e.SiteID,
		Name:        e.Name,
		Supplier:    e.Supplier,
		Description: e.Description,
		EntryDate:   e.EntryDate,
		EntryPhotos: e.EntryPhotos,
		ExitDate:    e.ExitDate,
		ExitPhotos:  e.ExitPhotos,
		Status:      e.Status,
		UpdatedAt:   e.UpdatedAt,
	}
}
