package schema

// Kind discriminates the Descriptor variants.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindBool
	KindDate
	KindDateTime
	KindObject
	KindFile
	KindArray
	KindMap
	KindModel
)

var kindNames = map[Kind]string{
	KindString:   "String",
	KindInteger:  "Integer",
	KindFloat:    "Float",
	KindBool:     "Boolean",
	KindDate:     "Date",
	KindDateTime: "DateTime",
	KindObject:   "Object",
	KindFile:     "File",
	KindArray:    "Array",
	KindMap:      "Map",
	KindModel:    "Model",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Descriptor is the parsed form of a return-type expression. It is a
// closed variant: Elem is set only for Array and Map, Name only for
// Model. Descriptors are immutable once built; share them freely.
type Descriptor struct {
	Kind Kind
	Elem *Descriptor
	Name string
}

// String renders the canonical type expression for the descriptor.
func (d *Descriptor) String() string {
	if d == nil {
		return ""
	}
	switch d.Kind {
	case KindArray:
		return "Array<" + d.Elem.String() + ">"
	case KindMap:
		return "Map<String," + d.Elem.String() + ">"
	case KindModel:
		return d.Name
	default:
		return d.Kind.String()
	}
}
