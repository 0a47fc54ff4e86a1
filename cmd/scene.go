package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/achilleasa/displaymgr/config"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

func loadScene(ctx *cli.Context) (*config.Config, error) {
	if ctx.NArg() != 1 {
		return nil, errors.New("missing scene file argument")
	}

	cfg, err := config.Load(ctx.Args().First())
	if err != nil {
		return nil, err
	}
	setupLogging(ctx, cfg.LogLevel)
	return cfg, nil
}

// Display the meshes defined by a scene file without opening a window.
func InspectScene(ctx *cli.Context) error {
	cfg, err := loadScene(ctx)
	if err != nil {
		return err
	}

	meshes, err := cfg.BuildMeshes()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Name", "Style", "Vertices", "Indices", "Draw count", "Color"})
	for index, m := range meshes {
		table.Append([]string{
			fmt.Sprintf("%d", index),
			m.Name,
			m.Style.String(),
			fmt.Sprintf("%d", len(m.Vertices)),
			fmt.Sprintf("%d", len(m.Indices)),
			fmt.Sprintf("%d", m.Count()),
			fmt.Sprintf("(%.2f, %.2f, %.2f)", m.Color[0], m.Color[1], m.Color[2]),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "WINDOW", fmt.Sprintf("%dx%d %q", cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)})
	table.Render()
	logger.Noticef("scene information:\n%s", buf.String())

	return nil
}
