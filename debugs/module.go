package debugs

import (
	"github.com/reusee/dscope"

	"github.com/seako/understanding-computation/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
