package utils

import (
	"sort"
	"strings"

	"propscore/internal/model"
)

// Character folds applied after lowercasing: each rune of TermFoldFrom
// becomes the rune at the same position in TermFoldTo. The repository
// applies the same table in SQL with translate().
const (
	TermFoldFrom = "_ éèêô"
	TermFoldTo   = "--eeeo"
)

var termFolder = newTermFolder()

func newTermFolder() *strings.Replacer {
	from, to := []rune(TermFoldFrom), []rune(TermFoldTo)
	pairs := make([]string, 0, 2*len(from))
	for i := range from {
		pairs = append(pairs, string(from[i]), string(to[i]))
	}
	return strings.NewReplacer(pairs...)
}

// normalizeTerm lowercases, trims and folds separators so that
// "Sud Est", "sud_est" and "SUD-EST" compare equal
func normalizeTerm(term string) string {
	term = termFolder.Replace(strings.ToLower(strings.TrimSpace(term)))
	for strings.Contains(term, "--") {
		term = strings.ReplaceAll(term, "--", "-")
	}
	return term
}

// Common aliases for orientations
var orientationAliases = map[string]model.Orientation{
	"sud":        model.OrientationSouth,
	"s":          model.OrientationSouth,
	"south":      model.OrientationSouth,
	"sud-est":    model.OrientationSouthEast,
	"se":         model.OrientationSouthEast,
	"south-east": model.OrientationSouthEast,
	"southeast":  model.OrientationSouthEast,
	"sud-ouest":  model.OrientationSouthWest,
	"so":         model.OrientationSouthWest,
	"sw":         model.OrientationSouthWest,
	"south-west": model.OrientationSouthWest,
	"southwest":  model.OrientationSouthWest,
	"toit-plat":  model.OrientationFlat,
	"plat":       model.OrientationFlat,
	"flat":       model.OrientationFlat,
	"flat-roof":  model.OrientationFlat,
	"est":        model.OrientationEast,
	"e":          model.OrientationEast,
	"east":       model.OrientationEast,
	"ouest":      model.OrientationWest,
	"o":          model.OrientationWest,
	"w":          model.OrientationWest,
	"west":       model.OrientationWest,
	"nord":       model.OrientationNorth,
	"n":          model.OrientationNorth,
	"north":      model.OrientationNorth,
}

// Common aliases for property types
var propertyTypeAliases = map[string]model.PropertyType{
	"bureau":         model.PropertyTypeOffice,
	"bureaux":        model.PropertyTypeOffice,
	"office":         model.PropertyTypeOffice,
	"commerce":       model.PropertyTypeRetail,
	"commerces":      model.PropertyTypeRetail,
	"boutique":       model.PropertyTypeRetail,
	"retail":         model.PropertyTypeRetail,
	"entrepot":       model.PropertyTypeWarehouse,
	"entrepots":      model.PropertyTypeWarehouse,
	"warehouse":      model.PropertyTypeWarehouse,
	"local-activite": model.PropertyTypeIndustrial,
	"activite":       model.PropertyTypeIndustrial,
	"industrial":     model.PropertyTypeIndustrial,
	"terrain":        model.PropertyTypeLand,
	"land":           model.PropertyTypeLand,
	"coworking":      model.PropertyTypeCoworking,
	"co-working":     model.PropertyTypeCoworking,
}

// ParseOrientation maps a free-form orientation to its canonical value.
// Empty input and unrecognized spellings return OrientationUnknown and false.
func ParseOrientation(raw string) (model.Orientation, bool) {
	term := normalizeTerm(raw)
	if term == "" {
		return model.OrientationUnknown, false
	}
	if o, ok := orientationAliases[term]; ok {
		return o, true
	}
	return model.OrientationUnknown, false
}

// ParseEnergyClass accepts a single DPE letter, optionally prefixed ("DPE C", "classe-c")
func ParseEnergyClass(raw string) (model.EnergyClass, bool) {
	term := normalizeTerm(raw)
	for _, prefix := range []string{"dpe-", "classe-", "class-"} {
		term = strings.TrimPrefix(term, prefix)
	}
	if len(term) != 1 {
		return model.EnergyClassUnknown, false
	}
	class := model.EnergyClass(strings.ToUpper(term))
	for _, known := range model.EnergyClasses {
		if class == known {
			return class, true
		}
	}
	return model.EnergyClassUnknown, false
}

// ParsePropertyType maps a free-form property type to its canonical value
func ParsePropertyType(raw string) (model.PropertyType, bool) {
	term := normalizeTerm(raw)
	if term == "" {
		return "", false
	}
	if t, ok := propertyTypeAliases[term]; ok {
		return t, true
	}
	return "", false
}

// PropertyTypeAliases returns every normalized spelling that parses to one
// of types, sorted. Unknown types contribute nothing.
func PropertyTypeAliases(types ...model.PropertyType) []string {
	wanted := make(map[model.PropertyType]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}
	var out []string
	for alias, t := range propertyTypeAliases {
		if wanted[t] {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

// ParsePropertyTypes parses a comma-separated list, dropping duplicates.
// Returns the first unrecognized term when any is present.
func ParsePropertyTypes(raw string) ([]model.PropertyType, string, bool) {
	var out []model.PropertyType
	seen := make(map[model.PropertyType]bool)
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		t, ok := ParsePropertyType(part)
		if !ok {
			return nil, strings.TrimSpace(part), false
		}
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out, "", true
}
