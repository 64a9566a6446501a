package internalcheck

import (
	"fmt"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

func TestExportedAPIHidesInternalTypes(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedTypes | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, publicPattern)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string
	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			obj := scope.Lookup(name)
			if !obj.Exported() {
				continue
			}
			w := &walker{seen: make(map[types.Type]bool)}
			w.object(obj)
			for _, leak := range w.leaks {
				findings = append(findings, fmt.Sprintf("%s.%s exposes %s", pkg.PkgPath, name, leak))
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("exported API leaks internal types:\n%s", strings.Join(findings, "\n"))
	}
}

// walker collects internal named types reachable from an exported object
// through exported fields, methods and signatures.
type walker struct {
	seen  map[types.Type]bool
	leaks []string
}

func (w *walker) object(obj types.Object) {
	w.typ(obj.Type())
	if tn, ok := obj.(*types.TypeName); ok {
		if named, ok := tn.Type().(*types.Named); ok {
			for i := 0; i < named.NumMethods(); i++ {
				if m := named.Method(i); m.Exported() {
					w.typ(m.Type())
				}
			}
		}
	}
}

func (w *walker) typ(t types.Type) {
	if t == nil || w.seen[t] {
		return
	}
	w.seen[t] = true

	switch tt := t.(type) {
	case *types.Named:
		if obj := tt.Obj(); obj.Pkg() != nil && isInternal(obj.Pkg().Path()) {
			w.leaks = append(w.leaks, obj.Pkg().Path()+"."+obj.Name())
			return
		}
		w.typ(tt.Underlying())
	case *types.Pointer:
		w.typ(tt.Elem())
	case *types.Slice:
		w.typ(tt.Elem())
	case *types.Array:
		w.typ(tt.Elem())
	case *types.Map:
		w.typ(tt.Key())
		w.typ(tt.Elem())
	case *types.Chan:
		w.typ(tt.Elem())
	case *types.Signature:
		w.tuple(tt.Params())
		w.tuple(tt.Results())
	case *types.Struct:
		for i := 0; i < tt.NumFields(); i++ {
			if f := tt.Field(i); f.Exported() {
				w.typ(f.Type())
			}
		}
	case *types.Interface:
		for i := 0; i < tt.NumMethods(); i++ {
			w.typ(tt.Method(i).Type())
		}
	}
}

func (w *walker) tuple(tup *types.Tuple) {
	for i := 0; i < tup.Len(); i++ {
		w.typ(tup.At(i).Type())
	}
}

func isInternal(path string) bool {
	return strings.Contains(path, "/internal/") || strings.HasSuffix(path, "/internal")
}
