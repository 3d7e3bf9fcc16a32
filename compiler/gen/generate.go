package gen

import (
	"context"
	"path"
	"runtime"
	"sort"
	"strconv"

	"github.com/go-openapi/inflect"
	"golang.org/x/sync/errgroup"

	"github.com/quillgen/quill/compiler/snapshot"
	"github.com/quillgen/quill/dialect"
	"github.com/quillgen/quill/emit"
	"github.com/quillgen/quill/schema"
)

// A Generator renders one schema.Model into output units according to a
// Config. One Generator serves one generation run.
type Generator struct {
	model    *schema.Model
	cfg      *Config
	snippets *dialect.Emitter
}

// NewGenerator returns a generator for the given model and config.
func NewGenerator(m *schema.Model, cfg *Config) *Generator {
	return &Generator{
		model: m,
		cfg:   cfg,
		// Statement snippets embed as target-language string literals.
		snippets: &dialect.Emitter{QuoteValue: strconv.Quote},
	}
}

// A Unit is one rendered output unit.
type Unit struct {
	// Name is the unit's module identifier, the one its own symbols
	// resolve bare against.
	Name string
	// File is the output file name, relative to the target directory.
	File string
	// Text is the rendered unit.
	Text string

	entities []*schema.Entity
}

// Render renders every output unit in model order. It performs no file I/O;
// Generate is the persisting entry point. A unit that fails to render
// contributes nothing to the result.
func (g *Generator) Render() ([]Unit, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	model, err := g.resolveModel()
	if err != nil {
		return nil, err
	}
	var units []Unit
	for _, u := range g.split(model) {
		text, err := g.renderUnit(u)
		if err != nil {
			return nil, NewGenerationError(u.Name, u.File, "render", err)
		}
		u.Text = text
		units = append(units, u)
	}
	return units, nil
}

// Generate renders all units and writes them below the target directory.
// Units are independent, so they are rendered and written in parallel.
func (g *Generator) Generate(ctx context.Context) error {
	if g.cfg.Target == "" {
		return NewConfigError("Target", nil, "missing target directory in config")
	}
	if err := g.validate(); err != nil {
		return err
	}
	model, err := g.resolveModel()
	if err != nil {
		return err
	}
	workers := g.cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for _, u := range g.split(model) {
		u := u
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			text, err := g.renderUnit(u)
			if err != nil {
				return NewGenerationError(u.Name, u.File, "render", err)
			}
			return g.writeFile(u, text)
		})
	}
	return eg.Wait()
}

func (g *Generator) validate() error {
	if len(g.cfg.Dialects) == 0 {
		return NewConfigError("Dialects", nil, "at least one target dialect is required")
	}
	return nil
}

// resolveModel returns the live model, or the snapshotted one when the run
// targets a stored-schema snapshot.
func (g *Generator) resolveModel() (*schema.Model, error) {
	if g.cfg.SnapshotVersion == 0 {
		return g.model, nil
	}
	snap, err := snapshot.Load(g.cfg.SnapshotPath)
	if err != nil {
		return nil, err
	}
	if snap.Version != g.cfg.SnapshotVersion {
		return nil, NewConfigError("SnapshotVersion", g.cfg.SnapshotVersion,
			"snapshot at "+g.cfg.SnapshotPath+" has version "+strconv.Itoa(snap.Version))
	}
	return snap.Model, nil
}

// split maps the model to output units: the whole model as one unit, or one
// independently-importable unit per entity in modular mode.
func (g *Generator) split(model *schema.Model) []Unit {
	suffix := g.cfg.Suffix
	if suffix == "" {
		suffix = ".go"
	}
	if !g.cfg.ModularOutput {
		return []Unit{{
			Name:     model.Module,
			File:     path.Base(model.Module) + suffix,
			entities: model.Entities,
		}}
	}
	units := make([]Unit, 0, len(model.Entities))
	for _, e := range model.Entities {
		base := inflect.Underscore(e.Name)
		units = append(units, Unit{
			Name:     model.Module + "/" + base,
			File:     base + suffix,
			entities: []*schema.Entity{e},
		})
	}
	return units
}

// renderUnit builds and renders the emission tree for one unit.
func (g *Generator) renderUnit(u Unit) (string, error) {
	res := emit.NewResolver(u.Name, g.cfg.Aliases)
	w := emit.NewWriter(res)

	header := g.cfg.Header
	if header == "" {
		header = DefaultHeader
	}
	w.Header().WriteLine(header)
	w.Header().WriteLine("")

	for _, e := range u.entities {
		if err := g.emitEntity(w, u.Name, e); err != nil {
			return "", err
		}
	}

	// The dependency set is complete only now; fill the imports buffer
	// last. It still renders right after the header.
	g.emitImports(w.Imports(), g.usedModules(u.entities))

	return w.Render()
}

// usedModules collects the origin modules a unit's emission will reference,
// mirroring which fields and substitute types emitEntity actually writes.
func (g *Generator) usedModules(entities []*schema.Entity) map[string]struct{} {
	used := make(map[string]struct{})
	mark := func(m string) {
		if m != "" {
			used[m] = struct{}{}
		}
	}
	for _, e := range entities {
		if g.cfg.EmitDataClasses {
			for _, f := range e.Fields {
				mark(f.TypeModule)
			}
		} else if e.ExistingType != nil && len(e.Queries) > 0 {
			mark(e.ExistingType.Module)
		}
		if g.cfg.EmitCompanions {
			for _, f := range e.Fields {
				if !f.PrimaryKey {
					mark(f.TypeModule)
				}
			}
		}
	}
	return used
}

// emitImports writes one import line per alias table entry the unit
// references, sorted by module so output is byte-stable. Unreferenced
// table entries are skipped; units stay importable on their own.
func (g *Generator) emitImports(b *emit.Buffer, used map[string]struct{}) {
	modules := make([]string, 0, len(used))
	for m := range g.cfg.Aliases {
		if _, ok := used[m]; ok {
			modules = append(modules, m)
		}
	}
	if len(modules) == 0 {
		return
	}
	sort.Strings(modules)
	for _, m := range modules {
		if alias := g.cfg.Aliases[m]; alias != "" {
			b.Writef("import %s %q\n", alias, m)
		} else {
			b.Writef("import %q\n", m)
		}
	}
	b.WriteLine("")
}

// dataSymbol returns the symbol of an entity's data-holder type: the
// generated one, or the user-authored substitute when data-class generation
// is disabled. Requesting a substitute that was never configured is a
// capability error, raised here at the call site.
//
// For a generated type the top-level name is claimed in the root scope here,
// once, so the struct declaration and every later reference to it (query
// method receivers) agree on the winning name when entities collide on
// their exported form.
func (g *Generator) dataSymbol(root *emit.Scope, unit string, e *schema.Entity) (emit.SymbolID, error) {
	if g.cfg.EmitDataClasses {
		return emit.Symbol(unit, root.UniqueName(Exported(e.Name), appendUnderscore)), nil
	}
	if e.ExistingType == nil {
		return emit.SymbolID{}, emit.NewCapabilityError("existing representation",
			"entity "+e.Name+" has no user-authored data type and data-class generation is disabled")
	}
	return emit.Symbol(e.ExistingType.Module, e.ExistingType.Name), nil
}

// emitEntity emits one entity's declarations into a fresh scope under the
// writer's root.
func (g *Generator) emitEntity(w *emit.Writer, unit string, e *schema.Entity) error {
	s := w.Child()
	dataSym, err := g.dataSymbol(w.Root(), unit, e)
	if err != nil {
		return err
	}

	if g.cfg.EmitDataClasses {
		g.emitDataClass(s, e, dataSym.Name)
	}
	if g.cfg.EmitCompanions {
		g.emitCompanion(w, s, e)
	}
	return g.emitQueries(w, s, e, dataSym)
}

// emitDataClass emits the generated data-holder struct for an entity. The
// type name was already claimed in the root scope by dataSymbol.
func (g *Generator) emitDataClass(s *emit.Scope, e *schema.Entity, name string) {
	b := s.Leaf()
	b.Writef("type %s struct {\n", name)
	fields := s.Child()
	for _, f := range e.Fields {
		fname := fields.UniqueName(FieldName(f.Name), appendUnderscore)
		b.Write("\t" + fname + " ")
		if f.Nullable {
			b.Write("*")
		}
		if f.TypeModule != "" {
			b.WriteSymbol(emit.Symbol(f.TypeModule, f.Type))
		} else {
			b.Write(f.Type)
		}
		b.WriteLine("")
	}
	b.WriteLine("}")
	b.WriteLine("")
}

// emitCompanion emits the mutation-companion type: one optional slot per
// non-key column, used by generated insert/update builders.
func (g *Generator) emitCompanion(w *emit.Writer, s *emit.Scope, e *schema.Entity) {
	name := w.Root().UniqueName(CompanionName(e.Name), appendUnderscore)
	b := s.Leaf()
	b.Writef("type %s struct {\n", name)
	fields := s.Child()
	for _, f := range e.Fields {
		if f.PrimaryKey {
			continue
		}
		fname := fields.UniqueName(FieldName(f.Name), appendUnderscore)
		b.Write("\t" + fname + " *")
		if f.TypeModule != "" {
			b.WriteSymbol(emit.Symbol(f.TypeModule, f.Type))
		} else {
			b.Write(f.Type)
		}
		b.WriteLine("")
	}
	b.WriteLine("}")
	b.WriteLine("")
}

// emitQueries emits one method per declared query. The statement text lands
// in a brand-new top-level buffer registered from inside the method body
// emission; it renders after this entity's block, in registration order.
func (g *Generator) emitQueries(w *emit.Writer, s *emit.Scope, e *schema.Entity, dataSym emit.SymbolID) error {
	qs := s.Child()
	for _, q := range e.Queries {
		mname := qs.UniqueName(MethodName(q.Name), appendUnderscore)
		stmt := qs.Root().UniqueName(Exported(e.Name)+Exported(q.Name)+"SQL", appendUnderscore)

		b := qs.Leaf()
		b.Write("func (q ")
		b.WriteSymbol(dataSym)
		b.Writef(") %s() {\n", mname)
		b.Writef("\texec(%s)\n", stmt)
		b.WriteLine("}")
		b.WriteLine("")

		// Top-level statement declaration, spawned mid-body.
		sb := w.Leaf()
		sb.Writef("var %s = ", stmt)
		if err := sb.WriteVariants(g.snippets, g.cfg.Dialects, q.StatementFor); err != nil {
			return err
		}
		sb.WriteLine("")
		sb.WriteLine("")
	}
	return nil
}
