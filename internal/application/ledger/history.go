package ledger

import (
	"context"
	"sort"

	"github.com/pedrolucasmota/obralog-api/internal/domain"
	"github.com/pedrolucasmota/obralog-api/internal/domain/entity"
	"github.com/pedrolucasmota/obralog-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

// HistoryUseCase consultas de solo lectura sobre el libro de movimientos.
type HistoryUseCase struct {
	itemRepo repository.SiteItemRepository
	movRepo  repository.MovementRepository
}

// NewHistoryUseCase construye el caso de uso de consulta.
func NewHistoryUseCase(itemRepo repository.SiteItemRepository, movRepo repository.MovementRepository) *HistoryUseCase {
	return &HistoryUseCase{itemRepo: itemRepo, movRepo: movRepo}
}

// GetItemHistory devuelve los movimientos de un ítem ordenados por date descendente.
func (uc *HistoryUseCase) GetItemHistory(ctx context.Context, siteID, itemID string) ([]*entity.Movement, error) {
	item, err := uc.itemRepo.GetByID(siteID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movRepo.ListByItem(siteID, itemID)
}

// GetAllSiteMovements arma el agregado de movimientos de toda la obra: lee el
// historial de cada ítem en paralelo, anota nombre y unidad del ítem dueño y
// ordena todo por date descendente. Las lecturas por ítem son independientes:
// el resultado NO es un snapshot atómico entre ítems, cada historial refleja el
// estado al momento de su propia consulta.
func (uc *HistoryUseCase) GetAllSiteMovements(ctx context.Context, siteID string) ([]*entity.SiteMovement, error) {
	items, err := uc.itemRepo.ListBySite(siteID)
	if err != nil {
		return nil, err
	}

	perItem := make([][]*entity.SiteMovement, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			history, err := uc.movRepo.ListByItem(siteID, item.ID)
			if err != nil {
				return err
			}
			annotated := make([]*entity.SiteMovement, 0, len(history))
			for _, m := range history {
				annotated = append(annotated, &entity.SiteMovement{
					Movement: *m,
					ItemName: item.Name,
					ItemUnit: item.Unit,
				})
			}
			perItem[i] = annotated
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []*entity.SiteMovement
	for _, list := range perItem {
		all = append(all, list...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.After(all[j].Date)
	})
	return all, nil
}
