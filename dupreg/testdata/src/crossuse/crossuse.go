package crossuse // want package:"registrations=2"

import (
	"crossdep"
	"schema"
)

type Own struct{}

func register() {
	crossdep.Adopt[crossdep.Widget]()   // want `type crossdep\.Widget is already registered at .*crossdep\.go:\d+:\d+`
	schema.Register[*crossdep.Widget]() // want `type crossdep\.Widget is already registered at .*crossdep\.go:\d+:\d+`
	schema.Register[crossdep.Gadget]()
	crossdep.Adopt[Own]()
	schema.Register[Own]() // want `type crossuse\.Own is already registered at .*crossuse\.go:\d+:\d+`
}
