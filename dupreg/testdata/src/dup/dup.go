package dup // want package:"registrations=4"

import (
	"reflect"

	"schema"
)

type Widget struct{}

type Gadget struct{}

type Inner struct{}

type Box[T any] struct{ v T }

type WidgetPtr *Widget

type Local[T any] struct{ p *T }

func (*Local[T]) WrappedType() reflect.Type { return reflect.TypeFor[T]() }

// ===== FIRST REGISTRATIONS =====

// [GOOD]: Distinct types and distinct instantiations
func registerAll() {
	schema.Register[Widget]()
	schema.Register[Gadget]()
	schema.Register[Box[Inner]]()
	schema.Register[Box[Widget]]()
}

// ===== SHOULD REPORT =====

// [BAD]: Same type twice
func badSameType() {
	schema.Register[Widget]() // want `type dup\.Widget is already registered at .*dup\.go:\d+:\d+`
}

// [BAD]: Pointers share the identity of their element
func badPointer() {
	schema.Register[*Widget]()  // want `type dup\.Widget is already registered at .*dup\.go:\d+:\d+`
	schema.Register[**Gadget]() // want `type dup\.Gadget is already registered at .*dup\.go:\d+:\d+`
}

// [BAD]: Defined pointer types share the identity of their element
func badDefinedPointer() {
	schema.Register[WidgetPtr]() // want `type dup\.Widget is already registered at .*dup\.go:\d+:\d+`
}

// [BAD]: Wrappers share the identity of the wrapped type
func badWrapper() {
	schema.Register[schema.Shared[Gadget]]() // want `type dup\.Gadget is already registered at .*dup\.go:\d+:\d+`
	schema.Register[Local[*Widget]]()        // want `type dup\.Widget is already registered at .*dup\.go:\d+:\d+`
}

// [BAD]: Inferred type argument
func badInferred() {
	schema.RegisterValue(&Widget{}) // want `type dup\.Widget is already registered at .*dup\.go:\d+:\d+`
}

// [BAD]: Parenthesized instantiation
func badParen() {
	(schema.Register[Gadget])() // want `type dup\.Gadget is already registered at .*dup\.go:\d+:\d+`
}

// [BAD]: Method of a generic registry type
func badMethod() {
	schema.Registry[Box[Inner]]{}.Add() // want `type dup\.Box\[dup\.Inner\] is already registered at .*dup\.go:\d+:\d+`
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: Ignored duplicate
func goodIgnored() {
	//typeid:ignore - registered again on purpose
	schema.Register[Widget]()

	schema.Register[Gadget]() //typeid:ignore
}

// [GOOD]: Type parameters are not statically known
func goodGeneric[T any]() {
	schema.Register[T]()
	schema.Register[Box[T]]()
	schema.Register[*T]()
	schema.Register[func(T)]()
	schema.Register[func() []T]()
	schema.Register[struct{ V *T }]()
	schema.Register[interface{ Get() T }]()
}

// [GOOD]: Same type expressions in another generic function
func goodGenericAgain[T any]() {
	schema.Register[func(T)]()
	schema.Register[func() []T]()
	schema.Register[struct{ V *T }]()
	schema.Register[interface{ Get() T }]()
}

// [GOOD]: Not a registrar
func goodOtherCall() {
	_ = reflect.TypeFor[Widget]()
}

// ===== UNUSED DIRECTIVES =====

func unusedIgnore() {
	//typeid:ignore // want "unused typeid:ignore directive"
	_ = Inner{}
}
