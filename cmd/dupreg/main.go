// Command dupreg reports types registered more than once.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/mpyw/typeid/dupreg"
)

func main() {
	singlechecker.Main(dupreg.Analyzer)
}
