package cmd

import (
	"github.com/achilleasa/displaymgr/log"
	"github.com/urfave/cli"
)

var logger = log.New("displaymgr")

// Apply the verbosity flags. When neither -v nor -vv is set, the level
// requested by the scene file (if any) is used instead.
func setupLogging(ctx *cli.Context, sceneLevel string) {
	switch {
	case ctx.GlobalBool("vv"):
		log.SetLevel(log.Debug)
	case ctx.GlobalBool("v"):
		log.SetLevel(log.Info)
	case sceneLevel != "":
		level, err := log.ParseLevel(sceneLevel)
		if err != nil {
			logger.Warningf("ignoring scene log level: %s", err.Error())
			return
		}
		log.SetLevel(level)
	}
}
