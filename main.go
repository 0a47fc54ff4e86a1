package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/achilleasa/displaymgr/cmd"
	"github.com/achilleasa/displaymgr/config"
	"github.com/urfave/cli"
)

func init() {
	// The GL context and the frame loop must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "displaymgr"
	app.Usage = "draw registered meshes in an opengl window"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "open a window and draw the meshes of a scene file",
			Description: `
Load a yaml scene file, upload its meshes to the GPU and register them for
drawing. Meshes are drawn in the order they appear in the scene file.

Press ESC to close the window. A left click recolors the next mesh; a right
click removes the most recently added mesh.`,
			ArgsUsage: "scene.yaml",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: config.DefaultWidth,
					Usage: "window width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: config.DefaultHeight,
					Usage: "window height",
				},
				cli.StringFlag{
					Name:  "title",
					Value: config.DefaultTitle,
					Usage: "window title",
				},
				cli.Uint64Flag{
					Name:  "frames",
					Value: 0,
					Usage: "exit after rendering this many frames (0 renders until the window is closed)",
				},
			},
			Action: cmd.RunScene,
		},
		{
			Name:      "inspect",
			Usage:     "display the meshes defined by a scene file",
			ArgsUsage: "scene.yaml",
			Action:    cmd.InspectScene,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}
