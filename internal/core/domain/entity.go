package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// EntityType identifies the kind of OWL entity a term row describes.
type EntityType string

const (
	EntityClass              EntityType = "class"
	EntityDataProperty       EntityType = "dataproperty"
	EntityObjectProperty     EntityType = "objectproperty"
	EntityAnnotationProperty EntityType = "annotationproperty"
	EntityIndividual         EntityType = "individual"
)

// ParseEntityType normalizes a "Type" column value. Spaces are collapsed and
// case is ignored so that, e.g., "Data Property" and "dataproperty" are
// equivalent. An empty or unrecognized type string is an error.
func ParseEntityType(s string) (EntityType, error) {
	norm := strings.ToLower(strings.ReplaceAll(s, " ", ""))
	switch EntityType(norm) {
	case EntityClass, EntityDataProperty, EntityObjectProperty,
		EntityAnnotationProperty, EntityIndividual:
		return EntityType(norm), nil
	case "":
		return "", zerr.New(
			"the entity type (e.g., \"class\", \"data property\") was not specified",
		)
	default:
		return "", zerr.With(zerr.New("unsupported entity type"), "type", s)
	}
}

// EntityDescription is a typed view of one term row: the entity kind plus the
// remaining columns, keyed by normalized column name. File and Row preserve
// the source location for error reporting.
type EntityDescription struct {
	Type   EntityType
	Fields map[string]string
	File   string
	Row    int
}

// trueStrings are the values recognized as "yes" in boolean table columns.
var trueStrings = map[string]bool{"t": true, "true": true, "y": true, "yes": true}

// IsTrueString reports whether a table cell value represents an affirmative.
func IsTrueString(s string) bool {
	return trueStrings[strings.ToLower(strings.TrimSpace(s))]
}
