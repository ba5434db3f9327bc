package utils

import (
	"reflect"
	"testing"

	"propscore/internal/model"
)

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   model.Orientation
		wantOK bool
	}{
		{name: "canonical", input: "sud", want: model.OrientationSouth, wantOK: true},
		{name: "upper case with spaces", input: "  SUD EST ", want: model.OrientationSouthEast, wantOK: true},
		{name: "underscore", input: "sud_ouest", want: model.OrientationSouthWest, wantOK: true},
		{name: "english", input: "South-West", want: model.OrientationSouthWest, wantOK: true},
		{name: "flat roof", input: "toit plat", want: model.OrientationFlat, wantOK: true},
		{name: "abbreviation", input: "N", want: model.OrientationNorth, wantOK: true},
		{name: "empty", input: "", want: model.OrientationUnknown, wantOK: false},
		{name: "garbage", input: "nord-nord-est", want: model.OrientationUnknown, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseOrientation(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseOrientation(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseEnergyClass(t *testing.T) {
	tests := []struct {
		input  string
		want   model.EnergyClass
		wantOK bool
	}{
		{"A", model.EnergyClassA, true},
		{"g", model.EnergyClassG, true},
		{" DPE C ", model.EnergyClassC, true},
		{"classe-e", model.EnergyClassE, true},
		{"H", model.EnergyClassUnknown, false},
		{"AB", model.EnergyClassUnknown, false},
		{"", model.EnergyClassUnknown, false},
	}

	for _, tt := range tests {
		got, ok := ParseEnergyClass(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseEnergyClass(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParsePropertyType(t *testing.T) {
	tests := []struct {
		input  string
		want   model.PropertyType
		wantOK bool
	}{
		{"bureau", model.PropertyTypeOffice, true},
		{"Bureaux", model.PropertyTypeOffice, true},
		{"entrepôt", model.PropertyTypeWarehouse, true},
		{"local_activite", model.PropertyTypeIndustrial, true},
		{"Local d'activité", "", false},
		{"coworking", model.PropertyTypeCoworking, true},
		{"castle", "", false},
	}

	for _, tt := range tests {
		got, ok := ParsePropertyType(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParsePropertyType(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParsePropertyTypes(t *testing.T) {
	got, bad, ok := ParsePropertyTypes("bureau, commerce,,office")
	if !ok {
		t.Fatalf("unexpected rejection of %q", bad)
	}
	want := []model.PropertyType{model.PropertyTypeOffice, model.PropertyTypeRetail}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParsePropertyTypes() = %v, want %v", got, want)
	}

	_, bad, ok = ParsePropertyTypes("bureau,castle")
	if ok || bad != "castle" {
		t.Errorf("ParsePropertyTypes() = (%q, %v), want (\"castle\", false)", bad, ok)
	}

	got, _, ok = ParsePropertyTypes("")
	if !ok || len(got) != 0 {
		t.Errorf("ParsePropertyTypes(\"\") = (%v, %v), want empty and ok", got, ok)
	}
}

func TestCanonicalValuesRoundTrip(t *testing.T) {
	for _, pt := range model.PropertyTypes {
		if got, ok := ParsePropertyType(string(pt)); !ok || got != pt {
			t.Errorf("ParsePropertyType(%q) = (%q, %v)", pt, got, ok)
		}
	}
	for _, o := range model.Orientations {
		if o == model.OrientationUnknown {
			continue
		}
		if got, ok := ParseOrientation(string(o)); !ok || got != o {
			t.Errorf("ParseOrientation(%q) = (%q, %v)", o, got, ok)
		}
	}
}

func TestTermFoldTableAligned(t *testing.T) {
	if len([]rune(TermFoldFrom)) != len([]rune(TermFoldTo)) {
		t.Fatalf("fold table mismatch: %q vs %q", TermFoldFrom, TermFoldTo)
	}
}

func TestPropertyTypeAliases(t *testing.T) {
	got := PropertyTypeAliases(model.PropertyTypeOffice)
	want := []string{"bureau", "bureaux", "office"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PropertyTypeAliases(office) = %v, want %v", got, want)
	}

	got = PropertyTypeAliases(model.PropertyTypeLand, model.PropertyTypeIndustrial)
	want = []string{"activite", "industrial", "land", "local-activite", "terrain"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PropertyTypeAliases(land, industrial) = %v, want %v", got, want)
	}

	if got := PropertyTypeAliases(); len(got) != 0 {
		t.Errorf("PropertyTypeAliases() = %v, want empty", got)
	}
}

func TestPropertyTypeAliasesAreNormalized(t *testing.T) {
	for _, pt := range model.PropertyTypes {
		aliases := PropertyTypeAliases(pt)
		if len(aliases) == 0 {
			t.Errorf("no aliases for %q", pt)
		}
		for _, alias := range aliases {
			if normalizeTerm(alias) != alias {
				t.Errorf("alias %q is not in normalized form", alias)
			}
			if got, ok := ParsePropertyType(alias); !ok || got != pt {
				t.Errorf("ParsePropertyType(%q) = (%q, %v), want %q", alias, got, ok, pt)
			}
		}
		// The stored canonical spelling must normalize into the alias set
		if !contains(aliases, normalizeTerm(string(pt))) {
			t.Errorf("canonical %q missing from its aliases %v", pt, aliases)
		}
	}
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
