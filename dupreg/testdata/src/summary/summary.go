package summary // want `registers int, summary\.Alpha, summary\.Zeta` package:"registrations=3"

import "schema"

type Alpha struct{}

type Zeta struct{}

func register() {
	schema.Register[Zeta]()
	schema.Register[int]()
	schema.Register[*Alpha]()
}
