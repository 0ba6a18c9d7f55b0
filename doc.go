// Package gogrid projects collections of uniformly typed records into table
// data with page-number pagination.
//
// Overview
//
// gogrid decides which fields become columns, how each field value becomes a
// cell and which slice of the records is shown:
//   - Getters: an explicit accessor table (field name → getter) replaces any
//     reflection over record types.
//   - Resolver: turns a field into a cell. Foreign keys are followed into a
//     nested record and hyperlinks get the record identifier substituted.
//   - Pager: slices records to the active page and computes the page-number
//     strip, truncated with ellipses when a slot budget is set. It can also
//     page a GORM query with LIMIT/OFFSET.
//   - Grid: the orchestrator. Compile returns a Table (header, rows, strip) for
//     the caller's template layer to serialize.
//
// Usage
//
//	grid := gogrid.New(gogrid.Getters[User]{
//		"ID":   func(u User) any { return u.ID },
//		"Name": func(u User) any { return u.Name },
//	}, "ID", "Name").
//		WithName("User").
//		WithPager(gogrid.NewPager().WithRowsPerPage(10).WithPageSlots(10).WithPage(page))
//
//	table, err := grid.Compile(users)
//
// See examples/http-api for html/template serialization.
package gogrid
