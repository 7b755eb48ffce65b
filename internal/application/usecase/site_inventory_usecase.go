package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/pedrolucasmota/obralog-api/internal/application/dto"
	"github.com/pedrolucasmota/obralog-api/internal/domain"
	"github.com/pedrolucasmota/obralog-api/internal/domain/entity"
	"github.com/pedrolucasmota/obralog-api/internal/domain/repository"
)

// SiteInventoryUseCase gestiona el inventario local de una obra: adopción de insumos
// del catálogo, edición de metadatos y baja de ítems. La cantidad NO se edita por
// acá: solo el libro de movimientos (ledger.RegisterMovementUseCase) la muta.
type SiteInventoryUseCase struct {
	siteRepo    repository.SiteRepository
	catalogRepo repository.CatalogRepository
	itemRepo    repository.SiteItemRepository
}

// NewSiteInventoryUseCase construye el caso de uso.
func NewSiteInventoryUseCase(
	siteRepo repository.SiteRepository,
	catalogRepo repository.CatalogRepository,
	itemRepo repository.SiteItemRepository,
) *SiteInventoryUseCase {
	return &SiteInventoryUseCase{siteRepo: siteRepo, catalogRepo: catalogRepo, itemRepo: itemRepo}
}

// AddItem adopta un insumo del catálogo al inventario de la obra, copiando nombre,
// unidad y categoría como snapshot (no se sincronizan después). La cantidad inicial
// la da el operador y no genera movimiento.
func (uc *SiteInventoryUseCase) AddItem(siteID string, in dto.AddSiteItemRequest) (*dto.SiteItemResponse, error) {
	if in.InitialQuantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	site, err := uc.siteRepo.GetByID(siteID)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, domain.ErrNotFound
	}
	catalogItem, err := uc.catalogRepo.GetByID(in.OriginalItemID)
	if err != nil {
		return nil, err
	}
	if catalogItem == nil {
		return nil, domain.ErrNotFound
	}

	item := &entity.SiteItem{
		ID:             uuid.New().String(),
		SiteID:         siteID,
		OriginalItemID: catalogItem.ID,
		Name:           catalogItem.Name,
		Unit:           catalogItem.Unit,
		Category:       catalogItem.Category,
		Quantity:       in.InitialQuantity,
		AveragePrice:   in.AveragePrice,
		MinThreshold:   in.MinThreshold,
		IsTool:         in.IsTool,
		UpdatedAt:      time.Now(),
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toSiteItemResponse(item), nil
}

// GetByID obtiene un ítem del inventario de la obra.
func (uc *SiteInventoryUseCase) GetByID(siteID, itemID string) (*dto.SiteItemResponse, error) {
	item, err := uc.itemRepo.GetByID(siteID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toSiteItemResponse(item), nil
}

// List lista el inventario de la obra ordenado por nombre.
func (uc *SiteInventoryUseCase) List(siteID string) ([]dto.SiteItemResponse, error) {
	list, err := uc.itemRepo.ListBySite(siteID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SiteItemResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toSiteItemResponse(i))
	}
	return items, nil
}

// UpdateMetadata edita los campos descriptivos del ítem sin pasar por el libro.
// La cantidad no es editable por este camino; el invariante de no-negatividad
// solo lo protege el libro de movimientos.
func (uc *SiteInventoryUseCase) UpdateMetadata(siteID, itemID string, in dto.UpdateSiteItemRequest) (*dto.SiteItemResponse, error) {
	item, err := uc.itemRepo.GetByID(siteID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.AveragePrice != nil {
		item.AveragePrice = *in.AveragePrice
	}
	if in.MinThreshold != nil {
		item.MinThreshold = *in.MinThreshold
	}
	if in.IsTool != nil {
		item.IsTool = *in.IsTool
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.UpdateMetadata(item); err != nil {
		return nil, err
	}
	return toSiteItemResponse(item), nil
}

// Delete da de baja un ítem del inventario de la obra. El historial de movimientos
// se conserva huérfano: queda inaccesible por las consultas normales pero el libro
// sigue siendo append-only.
func (uc *SiteInventoryUseCase) Delete(siteID, itemID string) error {
	item, err := uc.itemRepo.GetByID(siteID, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.itemRepo.Delete(siteID, itemID)
}

func toSiteItemResponse(i *entity.SiteItem) *dto.SiteItemResponse {
	if i == nil {
		return nil
	}
	return &dto.SiteItemResponse{
		ID:             i.ID,
		SiteID:         i.SiteID,
		OriginalItemID: i.OriginalItemID,
		Name:           i.Name,
		Unit:           i.Unit,
		Category:       i.Category,
		Quantity:       i.Quantity,
		AveragePrice:   i.AveragePrice,
		MinThreshold:   i.MinThreshold,
		IsTool:         i.IsTool,
		UpdatedAt:      i.UpdatedAt,
	}
}
