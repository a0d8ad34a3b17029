package pprint

// Object is a ready-made [Record] with a fixed list of fields. Take its
// address so it has an identity; fields may refer back to the object itself.
//
//	node := &pprint.Object{Name: "Node"}
//	node.Set("value", pprint.Int(1)).Set("next", pprint.Composite{Record: node})
type Object struct {
	Name    string
	Members []Field
}

// TypeName returns o.Name.
func (o *Object) TypeName() string { return o.Name }

// Fields returns o.Members.
func (o *Object) Fields() ([]Field, error) { return o.Members, nil }

// Set appends a field, or replaces the value of an existing one, and
// returns o for chaining.
func (o *Object) Set(name string, v Value) *Object {
	for i := range o.Members {
		if o.Members[i].Name == name {
			o.Members[i].Value = v
			return o
		}
	}
	o.Members = append(o.Members, Field{Name: name, Value: v})
	return o
}
