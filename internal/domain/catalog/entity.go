// backend/internal/domain/catalog/entity.go
package catalog

import (
	"errors"
	"strings"
)

var (
	ErrVariantNotFound = errors.New("catalog: variant not found")
)

// Category is the closed set of configurable product categories.
// The set is closed but deliberately easy to extend: adding a category means
// adding a constant here and a schema in the configurator package.
type Category string

const (
	CategoryWindows        Category = "windows"
	CategoryExteriorDoors  Category = "exterior-doors"
	CategorySlidingSystems Category = "sliding-systems"
)

// Categories returns all selectable categories in display order.
func Categories() []Category {
	return []Category{CategoryWindows, CategoryExteriorDoors, CategorySlidingSystems}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryWindows, CategoryExteriorDoors, CategorySlidingSystems:
		return true
	}
	return false
}

// Model is one selectable product model shown during step 2 of the wizard.
// Static models carry no Collection; paneled variants are loaded from the
// variant tables and carry the collection they belong to.
type Model struct {
	Name       string   `json:"name"`
	Category   Category `json:"category"`
	Collection string   `json:"collection,omitempty"`
	ImageFile  string   `json:"imageFile"`
}

// DimensionBounds are inclusive manufacturing limits in millimeters.
type DimensionBounds struct {
	WidthMin  int `json:"widthMin"`
	WidthMax  int `json:"widthMax"`
	HeightMin int `json:"heightMin"`
	HeightMax int `json:"heightMax"`
}

// Variant is one entry of a paneled sub-collection (e.g. a Despiro door
// panel design): its available materials and, per material, the dimension
// bounds the factory accepts.
type Variant struct {
	Collection string                     `json:"collection"`
	Name       string                     `json:"name"`
	Category   Category                   `json:"category"`
	ImageFile  string                     `json:"imageFile"`
	Materials  []string                   `json:"materials"`
	Bounds     map[string]DimensionBounds `json:"bounds"`
}

// BoundsFor returns the dimension bounds for the given material.
// When the variant has no material-specific entry the first declared
// material's bounds act as the generic default.
func (v *Variant) BoundsFor(material string) (DimensionBounds, bool) {
	if v == nil || len(v.Bounds) == 0 {
		return DimensionBounds{}, false
	}
	m := strings.TrimSpace(material)
	if b, ok := v.Bounds[m]; ok {
		return b, true
	}
	for _, mat := range v.Materials {
		if b, ok := v.Bounds[mat]; ok {
			return b, true
		}
	}
	return DimensionBounds{}, false
}

// HasMaterial reports whether material is offered for this variant.
func (v *Variant) HasMaterial(material string) bool {
	if v == nil {
		return false
	}
	m := strings.TrimSpace(material)
	for _, mat := range v.Materials {
		if mat == m {
			return true
		}
	}
	return false
}

// staticModels is the bundled model catalog for the generic flows.
// Paneled collections (Despiro etc.) live in the variant tables instead.
var staticModels = map[Category][]Model{
	CategoryWindows: {
		{Name: "Vast raam", Category: CategoryWindows, ImageFile: "windows/vast-raam.jpg"},
		{Name: "Draaikiepraam", Category: CategoryWindows, ImageFile: "windows/draaikiepraam.jpg"},
		{Name: "Stolpstel", Category: CategoryWindows, ImageFile: "windows/stolpstel.jpg"},
		{Name: "Uitzetraam", Category: CategoryWindows, ImageFile: "windows/uitzetraam.jpg"},
	},
	CategoryExteriorDoors: {
		{Name: "Voordeur glas", Category: CategoryExteriorDoors, ImageFile: "doors/voordeur-glas.jpg"},
		{Name: "Voordeur dicht", Category: CategoryExteriorDoors, ImageFile: "doors/voordeur-dicht.jpg"},
		{Name: "Achterdeur", Category: CategoryExteriorDoors, ImageFile: "doors/achterdeur.jpg"},
	},
	CategorySlidingSystems: {
		{Name: "Schuifpui 2-delig", Category: CategorySlidingSystems, ImageFile: "sliding/schuifpui-2.jpg"},
		{Name: "Schuifpui 3-delig", Category: CategorySlidingSystems, ImageFile: "sliding/schuifpui-3.jpg"},
		{Name: "Hefschuifpui", Category: CategorySlidingSystems, ImageFile: "sliding/hefschuifpui.jpg"},
	},
}

// StaticModels returns the bundled models for a category.
// Unknown categories yield an empty list (the wizard then shows nothing).
func StaticModels(c Category) []Model {
	models := staticModels[c]
	out := make([]Model, len(models))
	copy(out, models)
	return out
}
