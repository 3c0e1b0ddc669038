package configs

import (
	"fmt"
	"reflect"

	"github.com/reusee/dscope"
)

// Configurable marks values that may be overridden per invocation, from
// command line flags or config files.
type Configurable interface {
	SimpleConfigurable()
}

var configurableType = reflect.TypeFor[Configurable]()

func ForkConfigurables(scope dscope.Scope, values ...any) dscope.Scope {
	var defs []any
	for _, value := range values {
		if !reflect.TypeOf(value).Implements(configurableType) {
			panic(fmt.Errorf("not configurable: %T", value))
		}
		defs = append(defs, value)
	}
	return scope.Fork(defs...)
}
