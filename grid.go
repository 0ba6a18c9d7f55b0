package gogrid

import (
	"fmt"
	"slices"

	"github.com/jinzhu/inflection"
	"github.com/rs/zerolog"
)

// Grid projects records of type T into a Table. A Grid is configured once
// and may be compiled any number of times, including concurrently: Compile
// only reads the configuration and returns freshly allocated output.
type Grid[T any] struct {
	name       string
	controller string
	primaryKey string
	fields     []string
	getters    Getters[T]
	resolver   *Resolver[T]
	pager      *Pager
	actions    []Action

	marginBottom       int
	showActions        bool
	showHeader         bool
	shortHeader        bool
	showPrimaryKey     bool
	showDefaultActions bool
	showPager          bool
	showCheckBox       bool

	fallback *string
	logger   zerolog.Logger
}

// New creates a grid over records read through getters. primaryKey names the
// identifier field; fields are the columns in display order.
func New[T any](getters Getters[T], primaryKey string, fields ...string) *Grid[T] {
	return &Grid[T]{
		primaryKey:         primaryKey,
		fields:             slices.Clone(fields),
		getters:            getters,
		resolver:           NewResolver(getters, primaryKey),
		marginBottom:       defaultMarginBottom,
		showActions:        true,
		showHeader:         true,
		showPrimaryKey:     true,
		showDefaultActions: true,
		showPager:          true,
		logger:             zerolog.Nop(),
	}
}

// WithName sets the record type name, e.g. "User". It names the selection
// checkboxes ("SelectedUser") and, pluralized, the default controller.
func (g *Grid[T]) WithName(name string) *Grid[T] {
	g.name = name
	return g
}

// WithController sets the controller segment of the default action URLs.
func (g *Grid[T]) WithController(controller string) *Grid[T] {
	g.controller = controller
	return g
}

func (g *Grid[T]) WithMarginBottom(margin int) *Grid[T] {
	g.marginBottom = margin
	return g
}

// WithForeignKeys appends foreign key bindings; the first binding registered
// for a field wins.
func (g *Grid[T]) WithForeignKeys(foreignKeys ...ForeignKey) *Grid[T] {
	g.resolver = g.resolver.WithForeignKeys(foreignKeys...)
	return g
}

func (g *Grid[T]) WithHyperlink(link Hyperlink) *Grid[T] {
	g.resolver = g.resolver.WithHyperlink(link)
	return g
}

// WithCustomActions sets the custom row actions. They are rendered only when
// default actions are disabled.
func (g *Grid[T]) WithCustomActions(actions ...Action) *Grid[T] {
	g.actions = slices.Clone(actions)
	return g
}

// WithPager enables paging. Without a pager every record is rendered.
func (g *Grid[T]) WithPager(p *Pager) *Grid[T] {
	g.pager = p
	return g
}

func (g *Grid[T]) ShowActions(show bool) *Grid[T] {
	g.showActions = show
	return g
}

func (g *Grid[T]) ShowDefaultActions(show bool) *Grid[T] {
	g.showDefaultActions = show
	return g
}

func (g *Grid[T]) ShowHeader(show bool) *Grid[T] {
	g.showHeader = show
	return g
}

// ShortHeader drops the first word of CamelCase field names in the header.
func (g *Grid[T]) ShortHeader(short bool) *Grid[T] {
	g.shortHeader = short
	return g
}

func (g *Grid[T]) ShowPrimaryKey(show bool) *Grid[T] {
	g.showPrimaryKey = show
	return g
}

// ShowPager toggles the pager strip. Paging itself still applies.
func (g *Grid[T]) ShowPager(show bool) *Grid[T] {
	g.showPager = show
	return g
}

func (g *Grid[T]) ShowCheckBox(show bool) *Grid[T] {
	g.showCheckBox = show
	return g
}

// WithResolutionFallback renders text in place of foreign keys that cannot be
// resolved instead of failing the whole compile.
func (g *Grid[T]) WithResolutionFallback(text string) *Grid[T] {
	g.fallback = &text
	return g
}

func (g *Grid[T]) WithLogger(logger zerolog.Logger) *Grid[T] {
	g.logger = logger
	return g
}

// Fields returns the normalized column set: the configured fields with the
// primary key present exactly once.
func (g *Grid[T]) Fields() []string {
	return slices.Clone(NormalizeFields(g.fields, g.primaryKey))
}

// Compile renders records into a fresh Table. When a pager is configured the
// records are sorted by its orderings (Getters keys), then only the active
// page is rendered and the strip is computed from len(records).
// A nil records slice yields an empty table once the configuration is valid.
func (g *Grid[T]) Compile(records []T) (*Table, error) {
	err := g.validate(g.Fields())
	if err != nil {
		return nil, fmt.Errorf("cannot compile grid: %w", err)
	}

	if records == nil {
		return &Table{}, nil
	}

	if g.pager == nil {
		return g.compile(records, len(records))
	}

	if orderings := g.pager.GetSort(); len(orderings) > 0 {
		records, err = Sort(records, orderings, g.getters)
		if err != nil {
			return nil, fmt.Errorf("cannot compile grid: %w", err)
		}
	}

	page, err := Slice(g.pager, records)
	if err != nil {
		return nil, fmt.Errorf("cannot compile grid: %w", err)
	}

	return g.compile(page, len(records))
}

// CompilePage renders records that already are the active page, e.g. loaded
// by LoadPage, with the strip computed from totalRows.
func (g *Grid[T]) CompilePage(records []T, totalRows int) (*Table, error) {
	if records == nil {
		records = []T{}
	}

	return g.compile(records, totalRows)
}

func (g *Grid[T]) compile(page []T, totalRows int) (*Table, error) {
	fields := g.Fields()
	err := g.validate(fields)
	if err != nil {
		return nil, fmt.Errorf("cannot compile grid: %w", err)
	}

	table := &Table{MarginBottom: g.marginBottom}

	if g.pager != nil {
		view, err := g.pager.Window(totalRows)
		if err != nil {
			return nil, fmt.Errorf("cannot compile grid: %w", err)
		}

		if g.pager.IsClamped() {
			g.logger.Debug().
				Int("requested_page", g.pager.page).
				Int("active_page", view.ActivePage).
				Msg("requested page below 1, using first page")
		}
		if view.ActivePage > view.TotalPages {
			g.logger.Debug().
				Int("active_page", view.ActivePage).
				Int("total_pages", view.TotalPages).
				Msg("requested page beyond last page")
		}

		if g.showPager {
			table.Pager = view
		}
	}

	opts := g.rowOptions()
	if g.showHeader {
		table.Header = buildHeader(fields, g.primaryKey, opts, g.shortHeader)
	}

	table.Rows, err = renderRows(page, fields, g.resolver, opts, g.resolutionHandler())
	if err != nil {
		return nil, fmt.Errorf("cannot compile grid: %w", err)
	}

	g.logger.Debug().
		Int("rows", len(table.Rows)).
		Int("total_rows", totalRows).
		Int("columns", len(fields)).
		Msg("compiled grid")

	return table, nil
}

func (g *Grid[T]) validate(fields []string) error {
	if !g.getters.Has(g.primaryKey) {
		return newConfigError("primaryKey", "no getter for primary key '%s'", g.primaryKey)
	}

	err := validateFields(fields, g.getters)
	if err != nil {
		return err
	}

	if g.pager != nil {
		err = g.pager.validate()
		if err != nil {
			return err
		}
	}

	for _, field := range fields {
		fk, ok := g.resolver.ForeignKey(field)
		if ok && fk.Target == nil {
			return newConfigError("foreignKeys", "binding for field '%s' has no target shape", field)
		}
	}

	return nil
}

func (g *Grid[T]) rowOptions() rowOptions {
	return rowOptions{
		showCheckBox:       g.showCheckBox,
		showPrimaryKey:     g.showPrimaryKey,
		showActions:        g.showActions,
		showDefaultActions: g.showDefaultActions,
		checkboxName:       "Selected" + g.name,
		controller:         g.controllerName(),
		actions:            g.actions,
	}
}

func (g *Grid[T]) controllerName() string {
	if g.controller != "" || g.name == "" {
		return g.controller
	}

	return inflection.Plural(g.name)
}

func (g *Grid[T]) resolutionHandler() resolutionHandler {
	if g.fallback == nil {
		return abortOnResolution
	}

	fallback := *g.fallback
	return func(rerr *ResolutionError) (Cell, error) {
		g.logger.Warn().
			Err(rerr).
			Str("field", rerr.Field).
			Int("row_id", rerr.RowID).
			Msg("foreign key not resolved, using fallback")

		return Cell{Kind: CellText, Text: fallback}, nil
	}
}
