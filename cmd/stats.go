package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/displaymgr/renderer"
	"github.com/olekukonko/tablewriter"
)

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frames", "Array draws", "Indexed draws", "Avg frame time", "Max frame time"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Frames),
		fmt.Sprintf("%d", stats.ArrayDraws),
		fmt.Sprintf("%d", stats.IndexedDraws),
		stats.AvgFrameTime().String(),
		stats.MaxFrameTime.String(),
	})
	table.SetFooter([]string{"", "", "", "TOTAL", stats.RenderTime.String()})
	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
