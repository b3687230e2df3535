// Package compilation is the thin facade gluing the parser, arena, and
// symbol/scope packages together into the "create -> add units ->
// elaborate -> query -> destroy" lifecycle of §3's Compilation entity.
package compilation

import (
	"fmt"

	"svcore/internal/diag"
	"svcore/internal/langver"
	"svcore/internal/source"
	"svcore/internal/symbols"
)

// Compilation owns the symbols reachable from its RootSymbol for its whole
// lifetime. Symbols are ordinary Go values linked by pointers, not
// allocated in an arena; symbol identity is stable until the Compilation
// itself is discarded (§3).
type Compilation struct {
	version  langver.Version
	strategy symbols.TopInstanceStrategy
	binder   symbols.Binder
	diags    *diag.Bag

	root       *symbols.RootSymbol
	candidates []*symbols.InstanceSymbol
	referenced map[string]bool
	elaborated bool
}

// Options configures a Compilation at construction. Binder must be
// supplied by the caller — it is the out-of-scope constant-evaluation and
// definition-lookup collaborator of §6.
type Options struct {
	Version        langver.Version
	Strategy       symbols.TopInstanceStrategy
	Binder         symbols.Binder
	MaxDiagnostics int
}

// New constructs an empty Compilation ready to receive compilation units.
func New(opts Options) *Compilation {
	if opts.Version == 0 {
		opts.Version = langver.Latest
	}
	return &Compilation{
		version:    opts.Version,
		strategy:   opts.Strategy,
		binder:     opts.Binder,
		diags:      diag.NewBag(opts.MaxDiagnostics),
		root:       symbols.NewRoot(),
		referenced: make(map[string]bool),
	}
}

// Version returns the language edition this Compilation elaborates
// against (§3.1).
func (c *Compilation) Version() langver.Version { return c.version }

// Diagnostics returns every diagnostic queued so far across parsing and
// elaboration (§6 Public operations).
func (c *Compilation) Diagnostics() *diag.Bag { return c.diags }

// AddCompilationUnit constructs a fresh CompilationUnitSymbol for one
// parsed file, registers it under $root, and returns it ready to receive
// its top-level members (§4.F CompilationUnitSymbol: "constructed once
// per compilation unit... parent = root").
func (c *Compilation) AddCompilationUnit(loc source.Span) *symbols.CompilationUnitSymbol {
	unit := symbols.NewCompilationUnit(loc, c.root)
	c.root.Scope().AddMember(unit)
	c.root.CompilationUnits = append(c.root.CompilationUnits, unit)
	return unit
}

// RegisterInstanceCandidate records inst as a candidate for top-instance
// selection (§4.G) and notes that its Definition was instantiated (for the
// Auto "referenced by nobody" heuristic, §9).
func (c *Compilation) RegisterInstanceCandidate(inst *symbols.InstanceSymbol, referencesAnotherDefinition ...string) {
	c.candidates = append(c.candidates, inst)
	for _, name := range referencesAnotherDefinition {
		c.referenced[name] = true
	}
}

// Elaborate finalizes the RootSymbol's TopInstances using the configured
// TopInstanceStrategy (§4.G). It is idempotent: calling it more than once
// recomputes the same result from the same candidate set rather than
// accumulating duplicates (§8 Idempotent elaboration).
func (c *Compilation) Elaborate() *symbols.RootSymbol {
	c.root.Finalize(c.candidates, c.referenced, c.strategy)
	c.elaborated = true
	return c.root
}

// Root returns the Compilation's RootSymbol. Calling it before Elaborate
// returns a root with an empty TopInstances list.
func (c *Compilation) Root() *symbols.RootSymbol { return c.root }

// Binder returns the constant-evaluation/definition-lookup collaborator
// this Compilation was constructed with.
func (c *Compilation) Binder() symbols.Binder { return c.binder }

func (c *Compilation) String() string {
	return fmt.Sprintf("Compilation{version=%s, units=%d, tops=%d}",
		c.version, len(c.root.CompilationUnits), len(c.root.TopInstances))
}
