// backend/internal/application/usecase/stockitem_usecase.go
package usecase

import (
	"context"
	"strings"

	stockdom "fenestra/internal/domain/stockitem"
)

// StockItemDTO is a shop article with its image resolved for display.
type StockItemDTO struct {
	stockdom.StockItem
	ImageURL            string `json:"imageUrl"`
	EffectivePriceCents int64  `json:"effectivePriceCents"`
}

// StockItemUsecase serves the shop listing.
type StockItemUsecase struct {
	repo   stockdom.Repository
	images ImageURLResolver
}

func NewStockItemUsecase(repo stockdom.Repository, images ImageURLResolver) *StockItemUsecase {
	return &StockItemUsecase{repo: repo, images: images}
}

// List returns all stock items.
func (uc *StockItemUsecase) List(ctx context.Context) ([]StockItemDTO, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]StockItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, uc.dto(it))
	}
	return out, nil
}

// Get returns one stock item, or stockitem.ErrNotFound.
func (uc *StockItemUsecase) Get(ctx context.Context, id string) (*StockItemDTO, error) {
	sid := strings.TrimSpace(id)
	if sid == "" {
		return nil, ErrInvalidArgument
	}
	it, err := uc.repo.GetByID(ctx, sid)
	if err != nil {
		return nil, err
	}
	dto := uc.dto(*it)
	return &dto, nil
}

func (uc *StockItemUsecase) dto(it stockdom.StockItem) StockItemDTO {
	imageURL := ""
	if uc.images != nil {
		imageURL = uc.images.PublicURL(it.ImageFile)
	}
	return StockItemDTO{
		StockItem:           it,
		ImageURL:            imageURL,
		EffectivePriceCents: it.EffectivePriceCents(),
	}
}
