package machines

import (
	"github.com/reusee/dscope"

	"github.com/seako/understanding-computation/logs"
	"github.com/seako/understanding-computation/simpleconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs simpleconfigs.Module
}
