package jack

// Identifier is a stored record for a declared variable: a static or field
// of the enclosing class, or an argument or local of the enclosing
// subroutine. It is created once, on its declaring occurrence, mutated
// never, and destroyed when its enclosing scope is cleared.
type Identifier struct {
	Name     string
	DataType string         // one of "int", "char", "boolean", or a class name
	Category IdentifierRole // one of RoleStatic, RoleField, RoleArg, RoleVar
	Index    int            // zero-based, per (scope, category)
}

// SymbolTable holds two scopes: a class scope for static/field declarations
// that persists for the class' lifetime, and a subroutine scope for arg/var
// declarations that is emptied on entry to every new subroutine. Four
// running counters, one per category, track declaration order.
//
// It is a plain owned value - two maps and four counters, no sharing, no
// indirection - with a lifetime nested strictly inside one class
// compilation.
type SymbolTable struct {
	classScope      map[string]Identifier
	subroutineScope map[string]Identifier
	counters        map[IdentifierRole]int
}

// NewSymbolTable returns an empty table, equivalent to calling StartClass on
// a zero value.
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{}
	st.StartClass()
	return st
}

// StartClass empties both scopes and zeroes all four counters.
func (st *SymbolTable) StartClass() {
	st.classScope = make(map[string]Identifier)
	st.counters = map[IdentifierRole]int{
		RoleStatic: 0, RoleField: 0, RoleArg: 0, RoleVar: 0,
	}
	st.StartSubroutine()
}

// StartSubroutine empties the subroutine scope and zeroes the arg/var
// counters, leaving the class scope untouched.
func (st *SymbolTable) StartSubroutine() {
	st.subroutineScope = make(map[string]Identifier)
	st.counters[RoleArg] = 0
	st.counters[RoleVar] = 0
}

// Define records a new identifier of the given name, data type and
// category, assigning it the next index within (scope, category). static
// and field declarations land in the class scope; arg and var declarations
// land in the subroutine scope. It returns the prior record and false if
// name already exists in the target scope - the caller turns that into a
// ScopeError with both occurrences.
func (st *SymbolTable) Define(name, dataType string, category IdentifierRole) (Identifier, bool) {
	scope := st.targetScope(category)

	if prior, exists := scope[name]; exists {
		return prior, false
	}

	index := st.counters[category]
	st.counters[category] = index + 1

	record := Identifier{Name: name, DataType: dataType, Category: category, Index: index}
	scope[name] = record
	return record, true
}

// Lookup consults the subroutine scope first, then the class scope, so a
// subroutine-scope name shadows a class-scope one of the same spelling. It
// returns the zero Identifier and false when name is declared in neither.
func (st *SymbolTable) Lookup(name string) (Identifier, bool) {
	if id, ok := st.subroutineScope[name]; ok {
		return id, true
	}
	if id, ok := st.classScope[name]; ok {
		return id, true
	}
	return Identifier{}, false
}

// Count returns the current running index for category - exposed mainly
// for a downstream code generator that needs to know a class' total field
// count or a subroutine's total local count, but harmless to expose here.
func (st *SymbolTable) Count(category IdentifierRole) int {
	return st.counters[category]
}

func (st *SymbolTable) targetScope(category IdentifierRole) map[string]Identifier {
	switch category {
	case RoleStatic, RoleField:
		return st.classScope
	default:
		return st.subroutineScope
	}
}
