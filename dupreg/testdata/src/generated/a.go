package generated // want package:"registrations=2"

import "schema"

type Widget struct{}

func manual() {
	schema.Register[Widget]()
}
