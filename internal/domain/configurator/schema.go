// backend/internal/domain/configurator/schema.go
package configurator

import (
	"strings"

	"fenestra/internal/domain/catalog"
)

// Shared option sets. Values are the codes the storefront submits; labels are
// what the customer sees.
var (
	materialOptions  = []string{"aluminum", "pvc", "wood"}
	glazingOptions   = []string{"HR++", "HR+++", "triple", "safety"}
	thresholdOptions = []string{"standard", "low"}
	swingOptions     = []string{"left", "right"}
	hardwareOptions  = []string{"standard", "security"}
	stopBeadOptions  = []string{"standard", "ornament"}
)

// Generic dimension defaults (mm), used when the selected model carries no
// variant-specific bounds.
const (
	defaultWidthMin  = 400
	defaultWidthMax  = 4000
	defaultHeightMin = 400
	defaultHeightMax = 3000
)

// Schema is the ordered field set that fully specifies one configured item.
type Schema struct {
	Fields []Field `json:"fields"`
}

// Empty reports whether the schema has nothing to configure.
func (s Schema) Empty() bool { return len(s.Fields) == 0 }

// FieldByID looks a field up by identifier.
func (s Schema) FieldByID(id string) (Field, bool) {
	for _, f := range s.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// Validate checks submitted formData against the schema. It returns one
// FieldError per problem: required fields missing, values outside enum sets,
// numbers out of bounds, and keys that are not in the schema at all.
// A nil result means the data is acceptable.
func (s Schema) Validate(formData map[string]string) []FieldError {
	var errs []FieldError

	for _, f := range s.Fields {
		if f.Kind == KindPhotoSet {
			continue
		}
		if fe := f.validate(formData[f.ID]); fe != nil {
			errs = append(errs, *fe)
		}
	}

	for key := range formData {
		if _, ok := s.FieldByID(key); !ok {
			errs = append(errs, FieldError{Field: key, Message: "onbekend veld"})
		}
	}

	return errs
}

// ==============================
// Resolution
// ==============================

// ForCategory resolves the generic field set for a category.
// Unknown categories resolve to an empty schema; the renderer then has
// nothing to show and the flow naturally stops there.
func ForCategory(c catalog.Category) Schema {
	switch c {
	case catalog.CategoryWindows:
		return Schema{Fields: []Field{
			enum("material", "Materiaal", true, materialOptions),
			number("width", "Breedte", defaultWidthMin, defaultWidthMax),
			number("height", "Hoogte", defaultHeightMin, defaultHeightMax),
			text("colorInside", "Kleur binnenzijde", true),
			text("colorOutside", "Kleur buitenzijde", true),
			enum("glazing", "Beglazing", true, glazingOptions),
			enum("hardware", "Hang- en sluitwerk", false, hardwareOptions),
			text("remarks", "Opmerkingen", false),
			photos("photos", "Foto's"),
		}}
	case catalog.CategoryExteriorDoors:
		return paneledSchema(defaultBounds())
	case catalog.CategorySlidingSystems:
		return Schema{Fields: []Field{
			enum("material", "Materiaal", true, materialOptions),
			number("width", "Breedte", defaultWidthMin, 6000),
			number("height", "Hoogte", defaultHeightMin, defaultHeightMax),
			text("colorInside", "Kleur binnenzijde", true),
			text("colorOutside", "Kleur buitenzijde", true),
			enum("glazing", "Beglazing", true, glazingOptions),
			enum("threshold", "Onderdorpel", true, thresholdOptions),
			text("remarks", "Opmerkingen", false),
			photos("photos", "Foto's"),
		}}
	}
	return Schema{}
}

// ForVariant resolves the fixed paneled field set for one variant.
// All paneled collections share the same twelve fields; only the dimension
// bounds differ, per variant and per chosen material. When material is empty
// the variant's default material bounds apply.
func ForVariant(v *catalog.Variant, material string) Schema {
	if v == nil {
		return Schema{}
	}
	bounds, ok := v.BoundsFor(material)
	if !ok {
		bounds = defaultBounds()
	}
	s := paneledSchema(bounds)
	if len(v.Materials) > 0 {
		// The variant's own material list overrides the generic one.
		for i := range s.Fields {
			if s.Fields[i].ID == "material" {
				s.Fields[i].Options = append([]string(nil), v.Materials...)
			}
		}
	}
	return s
}

func paneledSchema(b catalog.DimensionBounds) Schema {
	return Schema{Fields: []Field{
		enum("material", "Materiaal", true, materialOptions),
		number("width", "Breedte", b.WidthMin, b.WidthMax),
		number("height", "Hoogte", b.HeightMin, b.HeightMax),
		text("colorInside", "Kleur binnenzijde", true),
		text("colorOutside", "Kleur buitenzijde", true),
		enum("glazing", "Beglazing", true, glazingOptions),
		enum("threshold", "Onderdorpel", true, thresholdOptions),
		enum("swingDirection", "Draairichting", true, swingOptions),
		enum("hardware", "Hang- en sluitwerk", true, hardwareOptions),
		enum("stopBead", "Glaslat", true, stopBeadOptions),
		text("remarks", "Opmerkingen", false),
		photos("photos", "Foto's"),
	}}
}

func defaultBounds() catalog.DimensionBounds {
	return catalog.DimensionBounds{
		WidthMin:  defaultWidthMin,
		WidthMax:  defaultWidthMax,
		HeightMin: defaultHeightMin,
		HeightMax: defaultHeightMax,
	}
}

func enum(id, label string, required bool, options []string) Field {
	return Field{ID: id, Label: label, Kind: KindEnum, Required: required, Options: options}
}

func number(id, label string, min, max int) Field {
	return Field{ID: id, Label: label, Kind: KindNumber, Required: true, Min: min, Max: max}
}

func text(id, label string, required bool) Field {
	return Field{ID: id, Label: label, Kind: KindText, Required: required}
}

func photos(id, label string) Field {
	return Field{ID: id, Label: label, Kind: KindPhotoSet, Required: false, MaxCount: 5}
}

// FieldIDs returns the schema's field identifiers in order. Handy for
// clients that only need the shape, not the rules.
func (s Schema) FieldIDs() []string {
	out := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		out = append(out, f.ID)
	}
	return out
}

// NormalizeFormData trims whitespace from keys and values and drops empty
// values, so optional blanks never linger in a stored item.
func NormalizeFormData(formData map[string]string) map[string]string {
	out := make(map[string]string, len(formData))
	for k, v := range formData {
		key := strings.TrimSpace(k)
		val := strings.TrimSpace(v)
		if key == "" || val == "" {
			continue
		}
		out[key] = val
	}
	return out
}
