package main

import (
	"github.com/reusee/dscope"

	"github.com/seako/understanding-computation/debugs"
	"github.com/seako/understanding-computation/machines"
	"github.com/seako/understanding-computation/scripts"
)

type Module struct {
	dscope.Module
	Machines machines.Module
	Scripts  scripts.Module
	Debugs   debugs.Module
}
