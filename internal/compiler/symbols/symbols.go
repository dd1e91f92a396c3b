package symbols

// DataType is the closed set of types the analyzer works with. TypeUnknown
// is the zero value and is compatible with every other type during
// checking; it is never reported as an error itself.
type DataType int

const (
	TypeUnknown DataType = iota
	TypeNumber
	TypeString
	TypeBoolean
	TypeArray
	TypeObject
	TypeVoid
	TypeNil
)

func (t DataType) String() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeBoolean:
		return "boolean"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	case TypeVoid:
		return "void"
	case TypeNil:
		return "nil"
	default:
		return "unknown"
	}
}

// Symbol is a resolved name's metadata: either a variable binding (Type set
// from its initializer, or TypeUnknown when declared bare) or a function
// signature (ParamTypes + ReturnType; Type itself is irrelevant then).
type Symbol struct {
	Name          string
	Type          DataType
	IsFunction    bool
	IsInitialized bool
	ParamTypes    []DataType
	ReturnType    DataType
}
