package crossdep

import "schema"

type Widget struct{}

type Gadget struct{}

//typeid:registrar
func Adopt[T any]() {}

func init() {
	schema.Register[Widget]()
}
