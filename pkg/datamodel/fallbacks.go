package datamodel

// Fallbacks is the default capability bundle. Every slot a provider leaves
// empty is filled from here; the functions close over self so that derived
// behavior (GetData, GetValue, row metadata) goes through whatever the
// provider did implement.
func Fallbacks(self *Model) Model {
	return Model{
		GetSchema:      func() Schema { return nil },
		SetSchema:      func(Schema) {},
		GetColumnCount: func() int { return len(self.GetSchema()) },
		IsDrillDown:    func(int) bool { return false },
		Click:          func(int) bool { return false },
		Apply:          func() {},
		GetRowCount:    func() int { return 0 },
		GetRow:         func(int) Row { return nil },
		GetData: func() []Row {
			n := self.GetRowCount()
			rows := make([]Row, 0, n)
			for i := 0; i < n; i++ {
				rows = append(rows, self.GetRow(i))
			}
			return rows
		},
		GetValue: func(col, row int) any {
			schema := self.GetSchema()
			if col < 0 || col >= len(schema) {
				return nil
			}
			r := self.GetRow(row)
			if r == nil {
				return nil
			}
			return r[schema[col].Name]
		},
		SetValue:         func(int, int, any) {},
		GetMetadataStore: func() MetadataStore { return self.metadata },
		SetMetadataStore: func(store MetadataStore) {
			if store == nil {
				store = MetadataStore{}
			}
			self.metadata = store
		},
		GetRowMetadata: func(row int, create bool) RowMetadata {
			store := self.GetMetadataStore()
			if md, ok := store[row]; ok {
				return md
			}
			if !create {
				return nil
			}
			md := RowMetadata{}
			ensureStore(self)[row] = md
			return md
		},
		SetRowMetadata: func(row int, md RowMetadata) {
			store := ensureStore(self)
			if md == nil {
				delete(store, row)
				return
			}
			store[row] = md
		},
	}
}

// ensureStore returns the model's metadata store, creating an empty one
// through SetMetadataStore when none exists yet.
func ensureStore(self *Model) MetadataStore {
	if store := self.GetMetadataStore(); store != nil {
		return store
	}
	self.SetMetadataStore(MetadataStore{})
	if store := self.GetMetadataStore(); store != nil {
		return store
	}
	// The provider keeps its store private; fall back to the model's own.
	self.metadata = MetadataStore{}
	return self.metadata
}

// InjectFallbacks fills the empty slots of m from Fallbacks and wires
// DispatchEvent to a Bridge over sink. Slots the provider implements are
// left alone. A DispatcherAware provider that does not dispatch on its own
// is handed the bound dispatch function.
func InjectFallbacks(m *Model, sink Sink) {
	Bind(m, Bundle(Fallbacks), false)

	bridge := NewBridge(sink)
	Bind(m, Model{DispatchEvent: bridge.Dispatch}, false)

	if _, own := m.provider.(EventDispatcher); own {
		return
	}
	if aware, ok := m.provider.(DispatcherAware); ok {
		aware.SetDispatcher(m.DispatchEvent)
	}
}
