// backend/internal/domain/configurator/schema_test.go
package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fenestra/internal/domain/catalog"
)

func despiroPanelX() *catalog.Variant {
	return &catalog.Variant{
		Collection: "Despiro",
		Name:       "Panel X",
		Category:   catalog.CategoryExteriorDoors,
		Materials:  []string{"aluminum", "pvc"},
		Bounds: map[string]catalog.DimensionBounds{
			"aluminum": {WidthMin: 700, WidthMax: 1300, HeightMin: 1900, HeightMax: 2600},
			"pvc":      {WidthMin: 800, WidthMax: 1200, HeightMin: 1900, HeightMax: 2400},
		},
	}
}

func validWindowData() map[string]string {
	return map[string]string{
		"material":     "pvc",
		"width":        "1200",
		"height":       "1400",
		"colorInside":  "RAL 9016",
		"colorOutside": "RAL 7016",
		"glazing":      "HR++",
	}
}

func TestForCategoryFieldSets(t *testing.T) {
	win := ForCategory(catalog.CategoryWindows)
	assert.Equal(t,
		[]string{"material", "width", "height", "colorInside", "colorOutside", "glazing", "hardware", "remarks", "photos"},
		win.FieldIDs())

	doors := ForCategory(catalog.CategoryExteriorDoors)
	assert.Equal(t,
		[]string{"material", "width", "height", "colorInside", "colorOutside", "glazing", "threshold", "swingDirection", "hardware", "stopBead", "remarks", "photos"},
		doors.FieldIDs())

	sliding := ForCategory(catalog.CategorySlidingSystems)
	w, ok := sliding.FieldByID("width")
	require.True(t, ok)
	assert.Equal(t, 6000, w.Max)

	assert.True(t, ForCategory(catalog.Category("garage-doors")).Empty())
}

func TestValidateRequiredFields(t *testing.T) {
	s := ForCategory(catalog.CategoryWindows)

	errs := s.Validate(map[string]string{})
	require.NotEmpty(t, errs)

	fields := map[string]string{}
	for _, e := range errs {
		fields[e.Field] = e.Message
	}
	assert.Contains(t, fields, "material")
	assert.Contains(t, fields, "width")
	assert.Contains(t, fields, "colorInside")
	assert.Equal(t, "Materiaal is verplicht", fields["material"])

	// Optional fields never show up in the error list.
	assert.NotContains(t, fields, "hardware")
	assert.NotContains(t, fields, "remarks")
	assert.NotContains(t, fields, "photos")
}

func TestValidateAcceptsCompleteData(t *testing.T) {
	s := ForCategory(catalog.CategoryWindows)
	assert.Nil(t, s.Validate(validWindowData()))

	// Optional extras are fine too.
	data := validWindowData()
	data["hardware"] = "security"
	data["remarks"] = "graag kleur advies"
	assert.Nil(t, s.Validate(data))
}

func TestValidateNumberBoundsAreInclusive(t *testing.T) {
	v := &catalog.Variant{
		Collection: "Lumina",
		Name:       "Linea 1",
		Category:   catalog.CategoryExteriorDoors,
		Materials:  []string{"pvc"},
		Bounds: map[string]catalog.DimensionBounds{
			"pvc": {WidthMin: 500, WidthMax: 1400, HeightMin: 1900, HeightMax: 2400},
		},
	}
	s := ForVariant(v, "pvc")

	base := map[string]string{
		"material":       "pvc",
		"height":         "2100",
		"colorInside":    "RAL 9016",
		"colorOutside":   "RAL 9016",
		"glazing":        "triple",
		"threshold":      "low",
		"swingDirection": "left",
		"hardware":       "security",
		"stopBead":       "standard",
	}

	cases := []struct {
		width string
		ok    bool
	}{
		{"499", false},
		{"500", true},
		{"1400", true},
		{"1401", false},
		{"abc", false},
	}
	for _, tc := range cases {
		data := map[string]string{}
		for k, v := range base {
			data[k] = v
		}
		data["width"] = tc.width

		errs := s.Validate(data)
		if tc.ok {
			assert.Nil(t, errs, "width=%s", tc.width)
		} else {
			require.Len(t, errs, 1, "width=%s", tc.width)
			assert.Equal(t, "width", errs[0].Field)
		}
	}
}

func TestValidateEnumValues(t *testing.T) {
	s := ForCategory(catalog.CategoryWindows)

	data := validWindowData()
	data["glazing"] = "single"
	errs := s.Validate(data)
	require.Len(t, errs, 1)
	assert.Equal(t, "glazing", errs[0].Field)
	assert.Equal(t, "Beglazing heeft een ongeldige waarde", errs[0].Message)
}

func TestValidateRejectsUnknownKeys(t *testing.T) {
	s := ForCategory(catalog.CategoryWindows)

	data := validWindowData()
	data["frameDepth"] = "90"
	errs := s.Validate(data)
	require.Len(t, errs, 1)
	assert.Equal(t, "frameDepth", errs[0].Field)
	assert.Equal(t, "onbekend veld", errs[0].Message)
}

func TestForVariantBoundsFollowMaterial(t *testing.T) {
	v := despiroPanelX()

	alu := ForVariant(v, "aluminum")
	w, _ := alu.FieldByID("width")
	assert.Equal(t, 700, w.Min)
	assert.Equal(t, 1300, w.Max)

	pvc := ForVariant(v, "pvc")
	h, _ := pvc.FieldByID("height")
	assert.Equal(t, 2400, h.Max)

	// Unknown material falls back to the first declared material's bounds.
	fallback := ForVariant(v, "wood")
	w, _ = fallback.FieldByID("width")
	assert.Equal(t, 700, w.Min)

	// The variant's material list replaces the generic option set.
	m, _ := alu.FieldByID("material")
	assert.Equal(t, []string{"aluminum", "pvc"}, m.Options)

	assert.True(t, ForVariant(nil, "pvc").Empty())
}

func TestNormalizeFormData(t *testing.T) {
	in := map[string]string{
		" material ": " pvc ",
		"remarks":    "   ",
		"":           "x",
		"width":      "1200",
	}
	out := NormalizeFormData(in)
	assert.Equal(t, map[string]string{"material": "pvc", "width": "1200"}, out)
}
