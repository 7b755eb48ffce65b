package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedrolucasmota/obralog-api/internal/application/dto"
	"github.com/pedrolucasmota/obralog-api/internal/application/usecase"
	"github.com/pedrolucasmota/obralog-api/internal/domain"
	"github.com/pedrolucasmota/obralog-api/internal/domain/entity"
)

type memSiteRepo struct {
	sites map[string]*entity.ConstructionSite
}

func newMemSiteRepo() *memSiteRepo {
	return &memSiteRepo{sites: make(map[string]*entity.ConstructionSite)}
}

func (r *memSiteRepo) Create(s *entity.ConstructionSite) error {
	cp := *s
	r.sites[s.ID] = &cp
	return nil
}

func (r *memSiteRepo) GetByID(id string) (*entity.ConstructionSite, error) {
	s, ok := r.sites[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memSiteRepo) Update(s *entity.ConstructionSite) error {
	if _, ok := r.sites[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	r.sites[s.ID] = &cp
	return nil
}

func (r *memSiteRepo) List() ([]*entity.ConstructionSite, error) {
	var list []*entity.ConstructionSite
	for _, s := range r.sites {
		cp := *s
		list = append(list, &cp)
	}
	return list, nil
}

func (r *memSiteRepo) Delete(id string) error {
	delete(r.sites, id)
	return nil
}

type memCatalogRepo struct {
	items map[string]*entity.CatalogItem
}

func newMemCatalogRepo() *memCatalogRepo {
	return &memCatalogRepo{items: make(map[string]*entity.CatalogItem)}
}

func (r *memCatalogRepo) Create(i *entity.CatalogItem) error {
	cp := *i
	r.items[i.ID] = &cp
	return nil
}

func (r *memCatalogRepo) GetByID(id string) (*entity.CatalogItem, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *memCatalogRepo) Update(i *entity.CatalogItem) error {
	if _, ok := r.items[i.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *i
	r.items[i.ID] = &cp
	return nil
}

func (r *memCatalogRepo) List() ([]*entity.CatalogItem, error) {
	var list []*entity.CatalogItem
	for _, i := range r.items {
		cp := *i
		list = append(list, &cp)
	}
	return list, nil
}

func (r *memCatalogRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func newInventoryFixture(t *testing.T) (*memSiteRepo, *memCatalogRepo, *memItemRepo, *usecase.SiteInventoryUseCase) {
	t.Helper()
	siteRepo := newMemSiteRepo()
	catalogRepo := newMemCatalogRepo()
	itemRepo := newMemItemRepo()
	require.NoError(t, siteRepo.Create(&entity.ConstructionSite{ID: "obra-1", Name: "Edificio Central", CreatedAt: time.Now()}))
	require.NoError(t, catalogRepo.Create(&entity.CatalogItem{
		ID:       "cat-cemento",
		Code:     "CEM-01",
		Name:     "Cemento Portland",
		Unit:     "saco",
		Category: "Áridos y aglomerantes",
	}))
	return siteRepo, catalogRepo, itemRepo, usecase.NewSiteInventoryUseCase(siteRepo, catalogRepo, itemRepo)
}

func TestAddItem_CopiaSnapshotDelCatalogo(t *testing.T) {
	_, _, itemRepo, uc := newInventoryFixture(t)

	resp, err := uc.AddItem("obra-1", dto.AddSiteItemRequest{
		OriginalItemID:  "cat-cemento",
		InitialQuantity: decimal.NewFromInt(40),
	})
	require.NoError(t, err)

	assert.Equal(t, "Cemento Portland", resp.Name)
	assert.Equal(t, "saco", resp.Unit)
	assert.Equal(t, "cat-cemento", resp.OriginalItemID)
	assert.True(t, resp.Quantity.Equal(decimal.NewFromInt(40)))

	stored, _ := itemRepo.GetByID("obra-1", resp.ID)
	require.NotNil(t, stored)
	assert.Equal(t, "Cemento Portland", stored.Name)
}

func TestAddItem_CantidadInicialNegativa_Rechazada(t *testing.T) {
	_, _, _, uc := newInventoryFixture(t)

	_, err := uc.AddItem("obra-1", dto.AddSiteItemRequest{
		OriginalItemID:  "cat-cemento",
		InitialQuantity: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddItem_CatalogoInexistente_NotFound(t *testing.T) {
	_, _, _, uc := newInventoryFixture(t)

	_, err := uc.AddItem("obra-1", dto.AddSiteItemRequest{OriginalItemID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El snapshot es una copia: renombrar el insumo del catálogo no toca el ítem de la obra.
func TestAddItem_SnapshotNoSeSincroniza(t *testing.T) {
	_, catalogRepo, itemRepo, uc := newInventoryFixture(t)

	resp, err := uc.AddItem("obra-1", dto.AddSiteItemRequest{
		OriginalItemID:  "cat-cemento",
		InitialQuantity: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	catalogItem, _ := catalogRepo.GetByID("cat-cemento")
	catalogItem.Name = "Cemento rápido"
	require.NoError(t, catalogRepo.Update(catalogItem))

	stored, _ := itemRepo.GetByID("obra-1", resp.ID)
	assert.Equal(t, "Cemento Portland", stored.Name)
}

func TestUpdateMetadata_NoTocaLaCantidad(t *testing.T) {
	_, _, itemRepo, uc := newInventoryFixture(t)

	resp, err := uc.AddItem("obra-1", dto.AddSiteItemRequest{
		OriginalItemID:  "cat-cemento",
		InitialQuantity: decimal.NewFromInt(25),
	})
	require.NoError(t, err)

	newName := "Cemento gris"
	updated, err := uc.UpdateMetadata("obra-1", resp.ID, dto.UpdateSiteItemRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Cemento gris", updated.Name)
	assert.True(t, updated.Quantity.Equal(decimal.NewFromInt(25)), "editar metadatos no cambia la cantidad")

	stored, _ := itemRepo.GetByID("obra-1", resp.ID)
	assert.True(t, stored.Quantity.Equal(decimal.NewFromInt(25)))
}

func TestDelete_ConservaHistorialHuerfano(t *testing.T) {
	_, _, itemRepo, uc := newInventoryFixture(t)
	movRepo := &memMovRepo{}

	resp, err := uc.AddItem("obra-1", dto.AddSiteItemRequest{
		OriginalItemID:  "cat-cemento",
		InitialQuantity: decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	require.NoError(t, movRepo.Create(&entity.Movement{
		ID: "m1", SiteID: "obra-1", SiteItemID: resp.ID,
		Type: entity.MovementTypeOUT, Quantity: decimal.NewFromInt(1), Date: time.Now(),
	}))

	require.NoError(t, uc.Delete("obra-1", resp.ID))

	gone, _ := itemRepo.GetByID("obra-1", resp.ID)
	assert.Nil(t, gone)
	movs, _ := movRepo.ListByItem("obra-1", resp.ID)
	assert.Len(t, movs, 1, "el historial sobrevive a la baja del ítem")
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda en catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogList_BusquedaIgnoraAcentosYMayusculas(t *testing.T) {
	catalogRepo := newMemCatalogRepo()
	require.NoError(t, catalogRepo.Create(&entity.CatalogItem{ID: "1", Name: "Hormigón H-25", Unit: "m3", Category: "Áridos"}))
	require.NoError(t, catalogRepo.Create(&entity.CatalogItem{ID: "2", Name: "Arena fina", Unit: "m3", Category: "Áridos"}))
	uc := usecase.NewCatalogUseCase(catalogRepo)

	list, err := uc.List("hormigon")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Hormigón H-25", list[0].Name)

	list, err = uc.List("ARIDOS")
	require.NoError(t, err)
	assert.Len(t, list, 2, "la categoría también se indexa sin acentos")

	list, err = uc.List("")
	require.NoError(t, err)
	assert.Len(t, list, 2, "búsqueda vacía lista todo")
}
