package main

import (
	"github.com/karmanet/karmad/infrastructure/logger"
)

var log = logger.RegisterSubSystem("PARM")
