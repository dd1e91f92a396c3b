package scope

import "github.com/ourlang/ourlang/internal/compiler/symbols"

// Scope is a single name-to-symbol mapping for one lexical region.
type Scope struct {
	Symbols map[string]symbols.Symbol
	Outer   *Scope
	Name    string
}

func NewScope(outer *Scope, name string) *Scope {
	return &Scope{
		Symbols: make(map[string]symbols.Symbol),
		Outer:   outer,
		Name:    name,
	}
}

// SymbolTable manages the stack of lexical scopes. The global scope lives
// for the whole analysis and is pre-seeded with builtin function
// signatures.
type SymbolTable struct {
	global  *Scope
	current *Scope
}

func NewSymbolTable() *SymbolTable {
	g := NewScope(nil, "global")
	st := &SymbolTable{global: g, current: g}
	st.initBuiltins()
	return st
}

// EnterScope pushes a fresh innermost scope.
func (st *SymbolTable) EnterScope(name string) {
	st.current = NewScope(st.current, name)
}

// ExitScope pops the innermost scope. Popping the sole remaining global
// scope is a no-op, so the stack never underflows.
func (st *SymbolTable) ExitScope() {
	if st.current.Outer != nil {
		st.current = st.current.Outer
	}
}

// Define installs a symbol in the current scope only. It returns false if
// the name already exists at this level; shadowing an outer binding is
// allowed and succeeds.
func (st *SymbolTable) Define(name string, typ symbols.DataType, isFunc, isInit bool) bool {
	if _, exists := st.current.Symbols[name]; exists {
		return false
	}
	st.current.Symbols[name] = symbols.Symbol{
		Name:          name,
		Type:          typ,
		IsFunction:    isFunc,
		IsInitialized: isInit,
		ReturnType:    symbols.TypeVoid,
	}
	return true
}

// Lookup searches from the current scope outwards; the first match wins.
// The returned Symbol is a copy.
func (st *SymbolTable) Lookup(name string) (symbols.Symbol, bool) {
	for s := st.current; s != nil; s = s.Outer {
		if sym, ok := s.Symbols[name]; ok {
			return sym, true
		}
	}
	return symbols.Symbol{}, false
}

// Update marks the nearest visible binding as initialized. It is a no-op
// when the name is not bound anywhere; callers must not treat it as
// authoritative.
func (st *SymbolTable) Update(name string) bool {
	for s := st.current; s != nil; s = s.Outer {
		if sym, ok := s.Symbols[name]; ok {
			sym.IsInitialized = true
			s.Symbols[name] = sym
			return true
		}
	}
	return false
}

// AddFunctionSignature installs a function signature directly into the
// global scope regardless of the current scope, overwriting any prior
// global entry of the same name. Function declarations are therefore
// globally visible before or after their point of use.
func (st *SymbolTable) AddFunctionSignature(name string, paramTypes []symbols.DataType, returnType symbols.DataType) {
	st.global.Symbols[name] = symbols.Symbol{
		Name:          name,
		Type:          symbols.TypeVoid,
		IsFunction:    true,
		IsInitialized: true,
		ParamTypes:    paramTypes,
		ReturnType:    returnType,
	}
}

func (st *SymbolTable) initBuiltins() {
	number := []symbols.DataType{symbols.TypeNumber}
	twoNumbers := []symbols.DataType{symbols.TypeNumber, symbols.TypeNumber}

	st.AddFunctionSignature("dekh", []symbols.DataType{symbols.TypeUnknown}, symbols.TypeVoid)
	st.AddFunctionSignature("lou", []symbols.DataType{symbols.TypeString}, symbols.TypeNumber)
	st.AddFunctionSignature("nikal", []symbols.DataType{symbols.TypeUnknown}, symbols.TypeNumber)
	st.AddFunctionSignature("band", nil, symbols.TypeVoid)
	st.AddFunctionSignature("abs", number, symbols.TypeNumber)
	st.AddFunctionSignature("sqrt", number, symbols.TypeNumber)
	st.AddFunctionSignature("round", number, symbols.TypeNumber)
	st.AddFunctionSignature("pow", twoNumbers, symbols.TypeNumber)
	st.AddFunctionSignature("max", twoNumbers, symbols.TypeNumber)
	st.AddFunctionSignature("min", twoNumbers, symbols.TypeNumber)
	st.AddFunctionSignature("random", nil, symbols.TypeNumber)
}
