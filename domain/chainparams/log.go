package chainparams

import (
	"github.com/karmanet/karmad/infrastructure/logger"
)

var log = logger.RegisterSubSystem("CHPR")
