package gen

import (
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Exported derives an exported type name from a declared entity name.
// Snake and kebab separators are folded: "user_profile" -> "UserProfile".
func Exported(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, p := range parts {
		parts[i] = titleCaser.String(p)
	}
	return strings.Join(parts, "")
}

// FieldName derives a data-holder field name from a declared column name.
func FieldName(name string) string {
	return inflect.Camelize(name)
}

// MethodName derives a query method name from a declared query name.
func MethodName(name string) string {
	return inflect.CamelizeDownFirst(name)
}

// CompanionName derives the mutation-companion type name for an entity.
func CompanionName(entity string) string {
	return Exported(entity) + "Companion"
}

// TableName derives the backing table name for an entity declared without
// an explicit one: pluralized snake case, "UserProfile" -> "user_profiles".
func TableName(entity string) string {
	return inflect.Pluralize(inflect.Underscore(entity))
}

// appendUnderscore is the default collision escape for top-level names.
func appendUnderscore(name string) string {
	return name + "_"
}
