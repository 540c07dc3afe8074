package main

import (
	"github.com/karmanet/karmad/infrastructure/logger"
	"github.com/karmanet/karmad/util/panics"
)

var (
	log   = logger.RegisterSubSystem("GSRC")
	spawn = panics.GoroutineWrapperFunc(log)
)
