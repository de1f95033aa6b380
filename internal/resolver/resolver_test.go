package resolver

import (
	"reflect"
	"slices"
	"testing"

	"golang.org/x/sync/errgroup"
)

type widget struct{}

type gadget struct{}

type shared[T any] struct{ p *T }

func (shared[T]) WrappedType() reflect.Type { return reflect.TypeFor[T]() }

type boxed[T any] struct{ v T }

func (*boxed[T]) WrappedType() reflect.Type { return reflect.TypeFor[T]() }

type selfish struct{}

func (selfish) WrappedType() reflect.Type { return reflect.TypeFor[selfish]() }

type pingA struct{}

type pingB struct{}

func (pingA) WrappedType() reflect.Type { return reflect.TypeFor[pingB]() }
func (pingB) WrappedType() reflect.Type { return reflect.TypeFor[pingA]() }

type panicky struct{ inner *reflect.Type }

func (p panicky) WrappedType() reflect.Type { return *p.inner }

type wrapperIface interface {
	WrappedType() reflect.Type
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want reflect.Type
	}{
		{
			name: "nil",
			typ:  nil,
			want: nil,
		},
		{
			name: "plain named type",
			typ:  reflect.TypeFor[widget](),
			want: reflect.TypeFor[widget](),
		},
		{
			name: "pointer",
			typ:  reflect.TypeFor[*widget](),
			want: reflect.TypeFor[widget](),
		},
		{
			name: "double pointer",
			typ:  reflect.TypeFor[**widget](),
			want: reflect.TypeFor[widget](),
		},
		{
			name: "value receiver wrapper",
			typ:  reflect.TypeFor[shared[widget]](),
			want: reflect.TypeFor[widget](),
		},
		{
			name: "pointer receiver wrapper",
			typ:  reflect.TypeFor[boxed[widget]](),
			want: reflect.TypeFor[widget](),
		},
		{
			name: "nested wrappers and pointers",
			typ:  reflect.TypeFor[*shared[*boxed[*widget]]](),
			want: reflect.TypeFor[widget](),
		},
		{
			name: "wrapper reporting itself",
			typ:  reflect.TypeFor[selfish](),
			want: reflect.TypeFor[selfish](),
		},
		{
			name: "wrapper panicking on zero value",
			typ:  reflect.TypeFor[panicky](),
			want: reflect.TypeFor[panicky](),
		},
		{
			name: "interface with wrapper method set",
			typ:  reflect.TypeFor[wrapperIface](),
			want: reflect.TypeFor[wrapperIface](),
		},
		{
			name: "slice is not unwrapped",
			typ:  reflect.TypeFor[[]widget](),
			want: reflect.TypeFor[[]widget](),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Canonical(tt.typ); got != tt.want {
				t.Errorf("Canonical() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanonicalCycleTerminates(t *testing.T) {
	got := Canonical(reflect.TypeFor[pingA]())
	if got != reflect.TypeFor[pingA]() && got != reflect.TypeFor[pingB]() {
		t.Errorf("Canonical() = %v, want pingA or pingB", got)
	}
}

func TestResolve(t *testing.T) {
	w := Resolve(reflect.TypeFor[widget]())

	if w != Resolve(reflect.TypeFor[widget]()) {
		t.Error("same type resolved to different tokens")
	}

	if w != Resolve(reflect.TypeFor[*widget]()) {
		t.Error("pointer did not resolve to inner type token")
	}

	if w != Resolve(reflect.TypeFor[shared[widget]]()) {
		t.Error("wrapper did not resolve to inner type token")
	}

	if w == Resolve(reflect.TypeFor[gadget]()) {
		t.Error("distinct types resolved to equal tokens")
	}

	if w.Type() != reflect.TypeFor[widget]() {
		t.Errorf("Type() = %v, want widget", w.Type())
	}
}

func TestTokenAsMapKey(t *testing.T) {
	m := map[Token]string{
		Resolve(reflect.TypeFor[widget]()): "widget",
		Resolve(reflect.TypeFor[gadget]()): "gadget",
	}

	if got := m[Resolve(reflect.TypeFor[*widget]())]; got != "widget" {
		t.Errorf("lookup = %q, want %q", got, "widget")
	}

	if len(m) != 2 {
		t.Errorf("len = %d, want 2", len(m))
	}
}

func TestTokenCompare(t *testing.T) {
	tokens := []Token{
		Resolve(reflect.TypeFor[widget]()),
		Resolve(reflect.TypeFor[gadget]()),
		Resolve(reflect.TypeFor[int]()),
		Resolve(reflect.TypeFor[string]()),
		{},
	}

	for _, a := range tokens {
		if a.Compare(a) != 0 {
			t.Errorf("%v.Compare(self) != 0", a.Type())
		}

		for _, b := range tokens {
			ab, ba := a.Compare(b), b.Compare(a)
			if ab != -ba {
				t.Errorf("Compare not antisymmetric for %v, %v: %d vs %d", a.Type(), b.Type(), ab, ba)
			}

			if (ab == 0) != (a == b) {
				t.Errorf("Compare()==0 is %v but == is %v for %v, %v", ab == 0, a == b, a.Type(), b.Type())
			}
		}
	}
}

func TestZeroToken(t *testing.T) {
	var zero Token

	if !zero.IsZero() {
		t.Error("zero Token is not IsZero")
	}

	if zero != Resolve(nil) {
		t.Error("Resolve(nil) is not the zero Token")
	}

	if zero.Compare(Resolve(reflect.TypeFor[widget]())) >= 0 {
		t.Error("zero Token does not sort first")
	}
}

func TestResolveConcurrent(t *testing.T) {
	want := Resolve(reflect.TypeFor[widget]())

	var g errgroup.Group
	results := make([]Token, 32)

	for i := range results {
		g.Go(func() error {
			results[i] = Resolve(reflect.TypeFor[*shared[widget]]())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	if i := slices.IndexFunc(results, func(tok Token) bool { return tok != want }); i >= 0 {
		t.Errorf("goroutine %d resolved %v, want %v", i, results[i].Type(), want.Type())
	}
}
