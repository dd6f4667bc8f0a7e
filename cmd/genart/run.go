package main

import (
	"fmt"
	"image"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/genart"
	"github.com/gogpu/genart/internal/config"
	"github.com/gogpu/genart/internal/imageio"
	"github.com/gogpu/genart/internal/logging"
	"github.com/gogpu/genart/internal/sheet"
)

func defineFlags(cmd *cobra.Command) {
	config.DefineFlags(cmd)
}

// run loads configuration, generates the batch and optionally writes the
// contact sheet. Diagnostics go to stderr.
func run(cmd *cobra.Command, configFile string, stderr io.Writer) error {
	conf, meta, err := config.Load(cmd, configFile)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}
	if err := conf.Validate(); err != nil {
		_, _ = fmt.Fprintf(stderr, "error validating config: %v\n", err)
		return err
	}

	log, err := logging.New(stderr, conf.Log.Level, conf.Log.Format)
	if err != nil {
		return err
	}
	genart.SetLogger(log)
	defer genart.SetLogger(nil)

	if meta.FileNotFound {
		log.Warn("config file not found, using defaults", "path", configFile)
	}
	for _, key := range meta.UnknownKeys {
		log.Warn("unknown config key", "key", key)
	}

	g := genart.New(conf.GeneratorOptions()...)
	report, err := g.Generate(cmd.Context(), conf.NumImages, conf.Size())
	if err != nil {
		genart.Diagnose(stderr, err)
		return err
	}

	if conf.Output.ContactSheet && len(report.Images) > 0 {
		path, err := writeSheet(conf, report)
		if err != nil {
			log.Error("contact sheet failed", "err", err)
			return err
		}
		log.Info("contact sheet saved", "path", path)
	}
	return nil
}

func writeSheet(conf config.Config, report *genart.Report) (string, error) {
	images := make([]image.Image, 0, len(report.Images))
	for _, res := range report.Images {
		img, err := imageio.Load(res.Path)
		if err != nil {
			return "", err
		}
		images = append(images, img)
	}
	path := conf.Persister().SheetPath()
	if err := imageio.Save(path, sheet.Compose(images, conf.Output.SheetColumns, conf.Output.SheetCell), imageio.PNG); err != nil {
		return "", err
	}
	return path, nil
}
