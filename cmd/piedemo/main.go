// Command piedemo renders a set of sample pie charts.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/sync/errgroup"

	piechart "github.com/toehead2001/pdn-pie-chart-legacy"
)

type demo struct {
	name     string
	sections []piechart.Section
	opts     []piechart.PieChartOption
}

func main() {
	var (
		size    = flag.Int("size", 400, "image width and height")
		outDir  = flag.String("out", ".", "output directory")
		format  = flag.String("format", "png", "output format: png or bmp")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *format != "png" && *format != "bmp" {
		log.Fatalf("unknown format %q", *format)
	}
	if *verbose {
		piechart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	demos := []demo{
		{
			name: "quarters",
			sections: []piechart.Section{
				{Value: 1, Color: piechart.Red},
				{Value: 1, Color: piechart.Yellow},
				{Value: 1, Color: piechart.Green},
				{Value: 1, Color: piechart.Blue},
			},
		},
		{
			name: "shares",
			sections: []piechart.Section{
				{Value: 45, Color: piechart.RGB(0x33, 0x66, 0xcc)},
				{Value: 30, Color: piechart.RGB(0xdc, 0x39, 0x12)},
				{Value: 15, Color: piechart.RGB(0xff, 0x99, 0x00)},
				{Value: 10, Color: piechart.RGB(0x10, 0x96, 0x18)},
			},
			opts: []piechart.PieChartOption{piechart.WithLineWidth(3)},
		},
		{
			name: "rotated",
			sections: []piechart.Section{
				{Value: 2, Color: piechart.Cyan},
				{Value: 1, Color: piechart.Magenta},
				{Value: 1, Color: piechart.ARGB(160, 255, 255, 255)},
			},
			opts: []piechart.PieChartOption{
				piechart.WithRotation(45),
				piechart.WithOutlineColor(piechart.RGB(64, 64, 64)),
			},
		},
		{
			name: "single",
			sections: []piechart.Section{
				{Value: 5, Color: piechart.Green},
			},
			opts: []piechart.PieChartOption{piechart.WithoutOutline()},
		},
	}

	// Each chart owns its surface, so the renders are independent.
	var g errgroup.Group
	for _, d := range demos {
		d := d
		g.Go(func() error {
			return render(d, *size, *outDir, *format)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	log.Printf("Rendered %d charts to %s (%dx%d)\n", len(demos), *outDir, *size, *size)
}

func render(d demo, size int, dir, format string) error {
	dst, err := piechart.NewSurface(size, size)
	if err != nil {
		return err
	}
	dst.Clear(piechart.White)

	if err := piechart.DrawPieChart(dst, d.sections, d.opts...); err != nil {
		return fmt.Errorf("render %s: %w", d.name, err)
	}

	path := filepath.Join(dir, d.name+"."+format)
	if format == "bmp" {
		f, err := os.Create(path) //nolint:gosec // output path comes from flags
		if err != nil {
			return err
		}
		defer func() {
			_ = f.Close()
		}()
		return bmp.Encode(f, dst.ToImage())
	}
	return dst.SavePNG(path)
}
