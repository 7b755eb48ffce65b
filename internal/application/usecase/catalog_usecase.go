package usecase

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/pedrolucasmota/obralog-api/internal/application/dto"
	"github.com/pedrolucasmota/obralog-api/internal/domain"
	"github.com/pedrolucasmota/obralog-api/internal/domain/entity"
	"github.com/pedrolucasmota/obralog-api/internal/domain/repository"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CatalogUseCase casos de uso CRUD y búsqueda para el catálogo global de insumos.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Create crea un insumo en el catálogo global.
func (uc *CatalogUseCase) Create(in dto.CreateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	stockControl := true
	if in.StockControl != nil {
		stockControl = *in.StockControl
	}
	item := &entity.CatalogItem{
		ID:           uuid.New().String(),
		Code:         in.Code,
		Name:         in.Name,
		Quantity:     in.Quantity,
		Unit:         in.Unit,
		Category:     in.Category,
		CostType:     in.CostType,
		UnitValue:    in.UnitValue,
		StockControl: stockControl,
		MinThreshold: in.MinThreshold,
		UpdatedAt:    time.Now(),
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toCatalogItemResponse(item), nil
}

// GetByID obtiene un insumo por ID.
func (uc *CatalogUseCase) GetByID(id string) (*dto.CatalogItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toCatalogItemResponse(item), nil
}

// Update actualiza campos del insumo; los nil no se tocan.
func (uc *CatalogUseCase) Update(id string, in dto.UpdateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != nil {
		item.Code = *in.Code
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.CostType != nil {
		item.CostType = *in.CostType
	}
	if in.UnitValue != nil {
		item.UnitValue = *in.UnitValue
	}
	if in.StockControl != nil {
		item.StockControl = *in.StockControl
	}
	if in.MinThreshold != nil {
		item.MinThreshold = *in.MinThreshold
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toCatalogItemResponse(item), nil
}

// List lista el catálogo completo; search filtra por nombre, código o categoría
// sin distinguir mayúsculas ni acentos (cemento encuentra Cemênto).
func (uc *CatalogUseCase) List(search string) ([]dto.CatalogItemResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	needle := foldAccents(strings.ToLower(strings.TrimSpace(search)))
	items := make([]dto.CatalogItemResponse, 0, len(list))
	for _, item := range list {
		if needle != "" && !matchesCatalogItem(item, needle) {
			continue
		}
		items = append(items, *toCatalogItemResponse(item))
	}
	return items, nil
}

// Delete elimina un insumo del catálogo por ID.
func (uc *CatalogUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func matchesCatalogItem(item *entity.CatalogItem, needle string) bool {
	for _, field := range []string{item.Name, item.Code, item.Category} {
		if strings.Contains(foldAccents(strings.ToLower(field)), needle) {
			return true
		}
	}
	return false
}

// foldAccents elimina marcas diacríticas (NFD + quitar Mn + NFC).
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func toCatalogItemResponse(i *entity.CatalogItem) *dto.CatalogItemResponse {
	if i == nil {
		return nil
	}
	return &dto.CatalogItemResponse{
		ID:           i.ID,
		Code:         i.Code,
		Name:         i.Name,
		Quantity:     i.Quantity,
		Unit:         i.Unit,
		Category:     i.Category,
		CostType:     i.CostType,
		UnitValue:    i.UnitValue,
		StockControl: i.StockControl,
		MinThreshold: i.MinThreshold,
		UpdatedAt:    i.UpdatedAt,
	}
}
