// Package schema is a stand-in for a type registry used by the dupreg tests.
package schema

import "reflect"

func Register[T any]() {}

func RegisterValue[T any](v T) {}

type Shared[T any] struct{ p *T }

func (Shared[T]) WrappedType() reflect.Type { return reflect.TypeFor[T]() }

type Registry[T any] struct{}

func (Registry[T]) Add() {}
