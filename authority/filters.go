package authority

// FilterFunc filters a slice of definitions. Filters are composable: each
// receives the output of the previous one.
type FilterFunc func([]Definition) []Definition

var _ FilterFunc = DefinitionByAuthority("")
var _ FilterFunc = DefinitionByKind("")
var _ FilterFunc = DefinitionByName("")

// definitionFilter returns a filter that includes definitions for which the
// predicate returns true.
func definitionFilter(predicate func(def Definition) bool) FilterFunc {
	return func(defs []Definition) []Definition {
		filtered := make([]Definition, 0, len(defs))
		for _, def := range defs {
			if predicate(def) {
				filtered = append(filtered, def)
			}
		}

		return filtered
	}
}

// DefinitionByAuthority returns a filter that only includes definitions
// maintained by the given authority.
func DefinitionByAuthority(authority string) FilterFunc {
	return definitionFilter(func(def Definition) bool {
		return def.Authority == authority
	})
}

// DefinitionByKind returns a filter that only includes definitions of the
// given kind.
func DefinitionByKind(kind string) FilterFunc {
	return definitionFilter(func(def Definition) bool {
		return def.Kind == kind
	})
}

// DefinitionByName returns a filter that only includes definitions with the
// given display name.
func DefinitionByName(name string) FilterFunc {
	return definitionFilter(func(def Definition) bool {
		return def.Name == name
	})
}
