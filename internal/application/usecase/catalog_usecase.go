// backend/internal/application/usecase/catalog_usecase.go
package usecase

import (
	"context"
	"strings"

	catalogdom "fenestra/internal/domain/catalog"
	"fenestra/internal/domain/configurator"
)

// ImageURLResolver turns a stored image file name into a browsable URL.
// The GCS adapter implements it against the public catalog bucket.
type ImageURLResolver interface {
	PublicURL(imageFile string) string
}

// ModelDTO is a selectable model with its image resolved for display.
type ModelDTO struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Collection string `json:"collection,omitempty"`
	ImageURL   string `json:"imageUrl"`
}

// VariantDTO is a paneled variant with its image resolved for display.
type VariantDTO struct {
	Collection string                                `json:"collection"`
	Name       string                                `json:"name"`
	Category   string                                `json:"category"`
	ImageURL   string                                `json:"imageUrl"`
	Materials  []string                              `json:"materials"`
	Bounds     map[string]catalogdom.DimensionBounds `json:"bounds"`
}

// CatalogUsecase serves the selection steps of the wizard: categories,
// models per category, and the paneled variant collections.
type CatalogUsecase struct {
	variants catalogdom.VariantRepository
	images   ImageURLResolver
}

func NewCatalogUsecase(variants catalogdom.VariantRepository, images ImageURLResolver) *CatalogUsecase {
	return &CatalogUsecase{variants: variants, images: images}
}

// Categories returns the closed category set.
func (uc *CatalogUsecase) Categories() []catalogdom.Category {
	return catalogdom.Categories()
}

// Models returns the selectable models for a category. Unknown categories
// yield an empty list, not an error: the wizard simply has nothing to show.
func (uc *CatalogUsecase) Models(ctx context.Context, category string) ([]ModelDTO, error) {
	c := catalogdom.Category(strings.TrimSpace(category))

	models := catalogdom.StaticModels(c)
	out := make([]ModelDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ModelDTO{
			Name:     m.Name,
			Category: string(m.Category),
			ImageURL: uc.publicURL(m.ImageFile),
		})
	}

	// Paneled collections surface next to the static door models.
	if c == catalogdom.CategoryExteriorDoors && uc.variants != nil {
		collections, err := uc.variants.ListCollections(ctx)
		if err != nil {
			return nil, err
		}
		for _, col := range collections {
			vs, err := uc.variants.ListByCollection(ctx, col)
			if err != nil {
				return nil, err
			}
			for _, v := range vs {
				out = append(out, ModelDTO{
					Name:       v.Name,
					Category:   string(v.Category),
					Collection: v.Collection,
					ImageURL:   uc.publicURL(v.ImageFile),
				})
			}
		}
	}

	return out, nil
}

// Collections returns the known paneled collection ids.
func (uc *CatalogUsecase) Collections(ctx context.Context) ([]string, error) {
	if uc.variants == nil {
		return nil, ErrInvalidArgument
	}
	return uc.variants.ListCollections(ctx)
}

// Variants returns all variants of a collection.
func (uc *CatalogUsecase) Variants(ctx context.Context, collection string) ([]VariantDTO, error) {
	if uc.variants == nil {
		return nil, ErrInvalidArgument
	}
	col := strings.TrimSpace(collection)
	if col == "" {
		return nil, ErrInvalidArgument
	}

	vs, err := uc.variants.ListByCollection(ctx, col)
	if err != nil {
		return nil, err
	}
	out := make([]VariantDTO, 0, len(vs))
	for _, v := range vs {
		out = append(out, uc.variantDTO(v))
	}
	return out, nil
}

// Variant returns one variant, or catalog.ErrVariantNotFound.
func (uc *CatalogUsecase) Variant(ctx context.Context, collection, name string) (*VariantDTO, error) {
	if uc.variants == nil {
		return nil, ErrInvalidArgument
	}
	col := strings.TrimSpace(collection)
	n := strings.TrimSpace(name)
	if col == "" || n == "" {
		return nil, ErrInvalidArgument
	}

	v, err := uc.variants.GetByName(ctx, col, n)
	if err != nil {
		return nil, err
	}
	dto := uc.variantDTO(*v)
	return &dto, nil
}

// Schema resolves the form field set for a selection. With a collection and
// variant name it resolves variant-specific bounds (per chosen material);
// otherwise the generic category schema applies.
func (uc *CatalogUsecase) Schema(ctx context.Context, category, collection, variantName, material string) (configurator.Schema, error) {
	col := strings.TrimSpace(collection)
	vn := strings.TrimSpace(variantName)

	if col != "" && vn != "" {
		if uc.variants == nil {
			return configurator.Schema{}, ErrInvalidArgument
		}
		v, err := uc.variants.GetByName(ctx, col, vn)
		if err != nil {
			return configurator.Schema{}, err
		}
		return configurator.ForVariant(v, material), nil
	}

	return configurator.ForCategory(catalogdom.Category(strings.TrimSpace(category))), nil
}

func (uc *CatalogUsecase) variantDTO(v catalogdom.Variant) VariantDTO {
	return VariantDTO{
		Collection: v.Collection,
		Name:       v.Name,
		Category:   string(v.Category),
		ImageURL:   uc.publicURL(v.ImageFile),
		Materials:  v.Materials,
		Bounds:     v.Bounds,
	}
}

func (uc *CatalogUsecase) publicURL(imageFile string) string {
	if uc == nil || uc.images == nil {
		return ""
	}
	return uc.images.PublicURL(imageFile)
}
