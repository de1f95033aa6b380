package local // want package:"registrations=1"

import "schema"

type Top struct{}

func a() {
	type T struct{ A int }
	schema.Register[T]()
	schema.Register[*T]() // want `type local\.T is already registered at .*local\.go:9:2`
}

// [GOOD]: Same name, different declaration
func b() {
	type T struct{ B string }
	schema.Register[T]()
	schema.Register[[]T]()
}

// [GOOD]: Composite of a third local T
func c() {
	type T struct{ C bool }
	schema.Register[[]T]()
	schema.Register[func(T) Top]()
	schema.Register[Top]()
}
