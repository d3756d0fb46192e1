package datamodel

// Alias names installed over a provider's drill-down character map.
const (
	AliasOpen   = "OPEN"
	AliasClose  = "CLOSE"
	AliasIndent = "INDENT"
)

// InstallDeprecations records host as the target of the deprecated Grid
// accessor and warns once if the provider still exposes a dataSource.
// A nil warned uses DefaultWarned.
func InstallDeprecations(m *Model, host any, warned *WarnedSet) {
	if warned == nil {
		warned = DefaultWarned
	}
	m.grid = host
	m.warned = warned

	if _, ok := m.provider.(LegacyDataSource); ok {
		warned.Warn(WarnLegacyDataSource,
			"data model defines dataSource, which collides with the grid's legacy dataSource; rename it")
	}
}

// Grid returns the host the model is bound to. The first call in the process
// logs a deprecation warning.
//
// Deprecated: keep a reference to the grid instead of reaching through the model.
func (m *Model) Grid() any {
	warned := m.warned
	if warned == nil {
		warned = DefaultWarned
	}
	warned.Warn(WarnGridAccessor, "dataModel.grid is deprecated; use the grid the data model is bound to")
	return m.grid
}

// InstallCharMapAliases adds OPEN, CLOSE, and INDENT as live aliases for the
// true, false, and nil entries of cm. Names already present are left alone.
func InstallCharMapAliases(cm *CharMap) {
	if cm == nil {
		return
	}
	cm.Alias(AliasOpen, true)
	cm.Alias(AliasClose, false)
	cm.Alias(AliasIndent, nil)
}
