package gen

import (
	"fmt"
	"go/types"
	"sync"

	"golang.org/x/tools/go/packages"
)

// Loader loads and caches type-checked Go packages.
type Loader struct {
	cache map[string]*packages.Package
	mu    sync.RWMutex
}

// NewLoader returns an empty Loader.
func NewLoader() *Loader {
	return &Loader{cache: map[string]*packages.Package{}}
}

// Load loads the package matching pattern (an import path or a
// directory like "./model").
func (l *Loader) Load(pattern string) (*packages.Package, error) {
	l.mu.RLock()
	pkg, ok := l.cache[pattern]
	l.mu.RUnlock()
	if ok {
		return pkg, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if pkg, ok := l.cache[pattern]; ok {
		return pkg, nil
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedSyntax,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", pattern, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no package matches %q", pattern)
	}
	pkg = pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("load %q: %v", pattern, pkg.Errors[0])
	}
	l.cache[pattern] = pkg
	return pkg, nil
}

// FindStruct resolves typeName to its struct definition within pkg.
func (l *Loader) FindStruct(pkg *packages.Package, typeName string) (*types.Struct, error) {
	if pkg.Types == nil {
		return nil, fmt.Errorf("package %q has no type information", pkg.PkgPath)
	}
	obj := pkg.Types.Scope().Lookup(typeName)
	if obj == nil {
		return nil, fmt.Errorf("type %q not found in package %q", typeName, pkg.PkgPath)
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%q is not a type name", typeName)
	}
	st, ok := tn.Type().Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("%q is not a struct", typeName)
	}
	return st, nil
}
