package directive // want package:"registrations=2"

type Widget struct{}

type Gadget struct{}

//typeid:registrar
func Add[T any]() {} // want Add:"registrar"

// Put registers T under a name.
//
//typeid:registrar
func Put[T any](name string) {} // want Put:"registrar"

func NotRegistrar[T any]() {}

func register() {
	Add[Widget]()
	Put[Widget]("widget") // want `type directive\.Widget is already registered at .*directive\.go:\d+:\d+`
	NotRegistrar[Widget]()
	NotRegistrar[Gadget]()
	Add[Gadget]()
	Put[*Gadget]("gadget") // want `type directive\.Gadget is already registered at .*directive\.go:\d+:\d+`
}
