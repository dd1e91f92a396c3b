package scope

import (
	"testing"

	"github.com/ourlang/ourlang/internal/compiler/symbols"
)

func TestDefineAndLookup(t *testing.T) {
	st := NewSymbolTable()

	if ok := st.Define("x", symbols.TypeNumber, false, true); !ok {
		t.Fatalf("Define(x) failed")
	}

	sym, ok := st.Lookup("x")
	if !ok {
		t.Fatalf("Lookup(x) failed after Define")
	}
	if sym.Type != symbols.TypeNumber {
		t.Errorf("sym.Type expected=%s, got=%s", symbols.TypeNumber, sym.Type)
	}
	if !sym.IsInitialized {
		t.Errorf("sym.IsInitialized expected=true")
	}
	if sym.IsFunction {
		t.Errorf("sym.IsFunction expected=false")
	}
}

func TestRedefinitionInSameScopeFails(t *testing.T) {
	st := NewSymbolTable()

	st.Define("x", symbols.TypeNumber, false, true)
	if ok := st.Define("x", symbols.TypeString, false, true); ok {
		t.Fatalf("redefinition of x in the same scope should fail")
	}

	// The original binding survives.
	sym, _ := st.Lookup("x")
	if sym.Type != symbols.TypeNumber {
		t.Errorf("sym.Type expected=%s, got=%s", symbols.TypeNumber, sym.Type)
	}
}

func TestShadowingInInnerScope(t *testing.T) {
	st := NewSymbolTable()

	st.Define("x", symbols.TypeNumber, false, true)
	st.EnterScope("block")

	if ok := st.Define("x", symbols.TypeString, false, true); !ok {
		t.Fatalf("shadowing x in an inner scope should succeed")
	}

	sym, _ := st.Lookup("x")
	if sym.Type != symbols.TypeString {
		t.Errorf("inner lookup expected=%s, got=%s", symbols.TypeString, sym.Type)
	}

	st.ExitScope()
	sym, _ = st.Lookup("x")
	if sym.Type != symbols.TypeNumber {
		t.Errorf("outer binding should be restored after ExitScope, got=%s", sym.Type)
	}
}

func TestLookupWalksOuterScopes(t *testing.T) {
	st := NewSymbolTable()

	st.Define("g", symbols.TypeNumber, false, true)
	st.EnterScope("outer")
	st.EnterScope("inner")

	if _, ok := st.Lookup("g"); !ok {
		t.Errorf("Lookup(g) should find the global binding from a nested scope")
	}
	if _, ok := st.Lookup("missing"); ok {
		t.Errorf("Lookup(missing) should fail")
	}
}

func TestInnerBindingDroppedOnExit(t *testing.T) {
	st := NewSymbolTable()

	st.EnterScope("block")
	st.Define("local", symbols.TypeNumber, false, true)
	st.ExitScope()

	if _, ok := st.Lookup("local"); ok {
		t.Errorf("Lookup(local) should fail after the defining scope is popped")
	}
}

func TestExitScopeOnGlobalIsNoOp(t *testing.T) {
	st := NewSymbolTable()

	st.Define("x", symbols.TypeNumber, false, true)
	st.ExitScope()
	st.ExitScope()

	if _, ok := st.Lookup("x"); !ok {
		t.Errorf("global binding should survive spurious ExitScope calls")
	}
	if ok := st.Define("y", symbols.TypeNumber, false, true); !ok {
		t.Errorf("Define should still work after spurious ExitScope calls")
	}
}

func TestUpdateMarksInitialized(t *testing.T) {
	st := NewSymbolTable()

	st.Define("x", symbols.TypeNumber, false, false)
	st.EnterScope("block")

	if ok := st.Update("x"); !ok {
		t.Fatalf("Update(x) should find the outer binding")
	}

	st.ExitScope()
	sym, _ := st.Lookup("x")
	if !sym.IsInitialized {
		t.Errorf("sym.IsInitialized expected=true after Update")
	}

	if ok := st.Update("missing"); ok {
		t.Errorf("Update(missing) should return false")
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	st := NewSymbolTable()

	st.Define("x", symbols.TypeNumber, false, false)
	sym, _ := st.Lookup("x")
	sym.IsInitialized = true

	fresh, _ := st.Lookup("x")
	if fresh.IsInitialized {
		t.Errorf("mutating a looked-up symbol must not affect the table")
	}
}

func TestAddFunctionSignatureTargetsGlobalScope(t *testing.T) {
	st := NewSymbolTable()

	st.EnterScope("body")
	st.AddFunctionSignature("helper", []symbols.DataType{symbols.TypeUnknown}, symbols.TypeVoid)
	st.ExitScope()

	sym, ok := st.Lookup("helper")
	if !ok {
		t.Fatalf("function signature should be visible globally")
	}
	if !sym.IsFunction {
		t.Errorf("sym.IsFunction expected=true")
	}
	if len(sym.ParamTypes) != 1 {
		t.Errorf("sym.ParamTypes expected len=1, got=%d", len(sym.ParamTypes))
	}
}

func TestAddFunctionSignatureOverwrites(t *testing.T) {
	st := NewSymbolTable()

	st.AddFunctionSignature("f", nil, symbols.TypeVoid)
	st.AddFunctionSignature("f", []symbols.DataType{symbols.TypeUnknown, symbols.TypeUnknown}, symbols.TypeNumber)

	sym, _ := st.Lookup("f")
	if len(sym.ParamTypes) != 2 {
		t.Errorf("latest signature should win, ParamTypes len expected=2, got=%d", len(sym.ParamTypes))
	}
	if sym.ReturnType != symbols.TypeNumber {
		t.Errorf("sym.ReturnType expected=%s, got=%s", symbols.TypeNumber, sym.ReturnType)
	}
}

func TestBuiltinsPreSeeded(t *testing.T) {
	st := NewSymbolTable()

	tests := []struct {
		name       string
		params     int
		returnType symbols.DataType
	}{
		{"dekh", 1, symbols.TypeVoid},
		{"lou", 1, symbols.TypeNumber},
		{"nikal", 1, symbols.TypeNumber},
		{"band", 0, symbols.TypeVoid},
		{"abs", 1, symbols.TypeNumber},
		{"sqrt", 1, symbols.TypeNumber},
		{"round", 1, symbols.TypeNumber},
		{"pow", 2, symbols.TypeNumber},
		{"max", 2, symbols.TypeNumber},
		{"min", 2, symbols.TypeNumber},
		{"random", 0, symbols.TypeNumber},
	}

	for _, tt := range tests {
		sym, ok := st.Lookup(tt.name)
		if !ok {
			t.Errorf("builtin %q not seeded", tt.name)
			continue
		}
		if !sym.IsFunction {
			t.Errorf("builtin %q should be a function", tt.name)
		}
		if len(sym.ParamTypes) != tt.params {
			t.Errorf("builtin %q: ParamTypes len expected=%d, got=%d", tt.name, tt.params, len(sym.ParamTypes))
		}
		if sym.ReturnType != tt.returnType {
			t.Errorf("builtin %q: ReturnType expected=%s, got=%s", tt.name, tt.returnType, sym.ReturnType)
		}
	}
}

func TestBuiltinCanBeShadowedLocally(t *testing.T) {
	st := NewSymbolTable()

	st.EnterScope("block")
	if ok := st.Define("abs", symbols.TypeNumber, false, true); !ok {
		t.Fatalf("shadowing a builtin in an inner scope should succeed")
	}
	sym, _ := st.Lookup("abs")
	if sym.IsFunction {
		t.Errorf("inner binding should shadow the builtin function")
	}
}
