// Command radarrender decompresses, parses, and renders a single NOAA MRMS
// RALA GRIB2 product into a geo-aligned PNG overlay plus a JSON metadata
// sidecar.
package main

import (
	"encoding/json"
	"os"

	"github.com/golang/glog"
	"github.com/urfave/cli/v2"

	radarcore "github.com/wxradar/radarcore"
)

func render(inputPath, outputPNGPath, outputMetadataPath string, warnApproximate bool) error {
	glog.V(1).Infof("radarrender: reading %s", inputPath)
	compressed, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	pngBytes, meta, err := radarcore.Process(compressed)
	if err != nil {
		return err
	}

	if warnApproximate {
		raw, decompErr := radarcore.Decompress(compressed)
		if decompErr == nil {
			if msg, parseErr := radarcore.ParseMessage(raw); parseErr == nil && radarcore.UsesApproximatePacking(msg) {
				glog.Errorf("radarrender: %s uses approximate packing (Template 5.40) and -warn-approximate is set", inputPath)
				return cli.Exit("refusing to emit approximated product under -warn-approximate", 1)
			}
		}
	}

	glog.V(1).Infof("radarrender: writing PNG to %s", outputPNGPath)
	if err := os.WriteFile(outputPNGPath, pngBytes, 0o644); err != nil {
		return err
	}

	metaBytes, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}

	glog.V(1).Infof("radarrender: writing metadata to %s", outputMetadataPath)
	return os.WriteFile(outputMetadataPath, metaBytes, 0o644)
}

func main() {
	app := &cli.App{
		Name:  "radarrender",
		Usage: "render a NOAA MRMS RALA GRIB2 product to a geo-aligned PNG",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "path to the gzip-compressed GRIB2 input file",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "output-png",
				Aliases:  []string{"o"},
				Usage:    "path to write the rendered PNG",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "output-metadata",
				Aliases:  []string{"m"},
				Usage:    "path to write the JSON alignment metadata",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "warn-approximate",
				Usage: "fail the run instead of emitting a product packed with Template 5.40 (JPEG 2000 approximation)",
			},
		},
		Action: func(cCtx *cli.Context) error {
			return render(
				cCtx.String("input"),
				cCtx.String("output-png"),
				cCtx.String("output-metadata"),
				cCtx.Bool("warn-approximate"),
			)
		},
	}

	if err := app.Run(os.Args); err != nil {
		glog.Exitf("radarrender: %v", err)
	}
}
