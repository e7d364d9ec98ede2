package catalog

// Value is a decoded JSON value. The set of implementations is closed:
// Null, Bool, Number, String, List and *Object.
type Value interface {
	isValue()
}

// Null is the JSON null literal.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number keeps the literal text of a JSON number so that it prints exactly
// as it was written in the catalog.
type Number string

// String is a JSON string.
type String string

// List is a JSON array.
type List []Value

// Object is a JSON object that remembers key order.
type Object struct {
	keys []string
	vals map[string]Value
}

func (Null) isValue()    {}
func (Bool) isValue()    {}
func (Number) isValue()  {}
func (String) isValue()  {}
func (List) isValue()    {}
func (*Object) isValue() {}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{vals: map[string]Value{}}
}

// Set stores v under key. A key that is already present keeps its position.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.vals[key]
	return v, ok
}

// Keys returns the keys in document order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len reports the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// IsContainer reports whether v is a list or an object.
func IsContainer(v Value) bool {
	switch v.(type) {
	case List, *Object:
		return true
	default:
		return false
	}
}

// KindName is a short label for v, used in log fields.
func KindName(v Value) string {
	switch v.(type) {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case List:
		return "list"
	case *Object:
		return "object"
	default:
		return "unknown"
	}
}
