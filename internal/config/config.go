// Package config contains the genart Config and the code to load it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/genart"
	"github.com/gogpu/genart/internal/logging"
)

// EnvPrefix is prepended to every environment variable, e.g. GENART_NUM_IMAGES.
const EnvPrefix = "GENART"

type Config struct {
	// NumImages is how many images one run produces.
	NumImages int `mapstructure:"num_images" json:"num_images"`
	// Width of every image in pixels.
	Width int `mapstructure:"width" json:"width"`
	// Height of every image in pixels.
	Height int `mapstructure:"height" json:"height"`
	// Seed for the random source. Zero means unseeded, so every run differs.
	Seed uint64 `mapstructure:"seed" json:"seed"`
	// Background is the canvas color as hex, e.g. "#ffffff".
	Background string `mapstructure:"background" json:"background"`

	Output Output `mapstructure:"output" json:"output"`
	Shapes Shapes `mapstructure:"shapes" json:"shapes"`
	Log    Log    `mapstructure:"log" json:"log"`
}

// Output configures where images are written.
type Output struct {
	Dir    string        `mapstructure:"dir" json:"dir"`
	Prefix string        `mapstructure:"prefix" json:"prefix"`
	Format genart.Format `mapstructure:"format" json:"format"`
	// CreateDir creates Dir when missing instead of failing.
	CreateDir bool `mapstructure:"create_dir" json:"create_dir"`
	// ContactSheet writes a grid of all images after a successful run.
	ContactSheet bool `mapstructure:"contact_sheet" json:"contact_sheet"`
	SheetColumns int  `mapstructure:"sheet_columns" json:"sheet_columns"`
	SheetCell    int  `mapstructure:"sheet_cell" json:"sheet_cell"`
}

// Shapes configures the shape mix of each image.
type Shapes struct {
	PerImage     int            `mapstructure:"per_image" json:"per_image"`
	Weights      genart.Weights `mapstructure:"weights" json:"weights"`
	MinDiameter  int            `mapstructure:"min_diameter" json:"min_diameter"`
	MaxDiameter  int            `mapstructure:"max_diameter" json:"max_diameter"`
	MaxSliceSize int            `mapstructure:"max_slice_size" json:"max_slice_size"`
}

// Log configures the command logger.
type Log struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

// Meta carries information about how the config was loaded.
type Meta struct {
	FileNotFound bool
	UnknownKeys  []string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		NumImages:  4,
		Width:      1000,
		Height:     1000,
		Background: "#ffffff",
		Output: Output{
			Dir:    genart.DefaultOutputDir,
			Prefix: genart.DefaultPrefix,
			Format: genart.FormatPNG,
		},
		Shapes: Shapes{
			PerImage:     genart.DefaultShapesPerImage,
			Weights:      genart.DefaultWeights,
			MinDiameter:  genart.DefaultMinDiameter,
			MaxDiameter:  genart.DefaultMaxDiameter,
			MaxSliceSize: genart.DefaultMaxSliceSize,
		},
		Log: Log{
			Level:  "info",
			Format: logging.FormatAuto,
		},
	}
}

var defaults = func() map[string]any {
	d := Default()
	return map[string]any{
		"num_images":            d.NumImages,
		"width":                 d.Width,
		"height":                d.Height,
		"seed":                  d.Seed,
		"background":            d.Background,
		"output.dir":            d.Output.Dir,
		"output.prefix":         d.Output.Prefix,
		"output.format":         d.Output.Format.String(),
		"output.create_dir":     d.Output.CreateDir,
		"output.contact_sheet":  d.Output.ContactSheet,
		"output.sheet_columns":  d.Output.SheetColumns,
		"output.sheet_cell":     d.Output.SheetCell,
		"shapes.per_image":      d.Shapes.PerImage,
		"shapes.weights.box":    d.Shapes.Weights.Box,
		"shapes.weights.circle": d.Shapes.Weights.Circle,
		"shapes.weights.slice":  d.Shapes.Weights.Slice,
		"shapes.min_diameter":   d.Shapes.MinDiameter,
		"shapes.max_diameter":   d.Shapes.MaxDiameter,
		"shapes.max_slice_size": d.Shapes.MaxSliceSize,
		"log.level":             d.Log.Level,
		"log.format":            d.Log.Format,
	}
}()

// DefineFlags registers the command line flags that override config keys.
func DefineFlags(cmd *cobra.Command) {
	d := Default()
	cmd.Flags().StringP("config", "c", "", "path to config file (json, yaml or toml)")
	cmd.Flags().IntP("num_images", "n", d.NumImages, "number of images to generate")
	cmd.Flags().IntP("width", "W", d.Width, "image width in pixels")
	cmd.Flags().IntP("height", "H", d.Height, "image height in pixels")
	cmd.Flags().Uint64P("seed", "s", d.Seed, "random seed, 0 for an unseeded run")
	cmd.Flags().StringP("background", "", d.Background, "background color as hex")
	cmd.Flags().StringP("output.dir", "o", d.Output.Dir, "output directory, must exist unless --output.create_dir")
	cmd.Flags().StringP("output.prefix", "", d.Output.Prefix, "output file name prefix")
	cmd.Flags().StringP("output.format", "f", d.Output.Format.String(), "output format: png, jpeg, tiff or bmp")
	cmd.Flags().BoolP("output.create_dir", "", d.Output.CreateDir, "create the output directory if missing")
	cmd.Flags().BoolP("output.contact_sheet", "", d.Output.ContactSheet, "write a contact sheet of the batch")
	cmd.Flags().IntP("shapes.per_image", "", d.Shapes.PerImage, "shapes layered onto each image")
	cmd.Flags().StringP("log.level", "", d.Log.Level, "log level: debug, info, warn or error")
	cmd.Flags().StringP("log.format", "", d.Log.Format, "log format: auto, text or json")
}

var bindPFlags = []string{
	"num_images", "width", "height", "seed", "background", "output.dir", "output.prefix", "output.format",
	"output.create_dir", "output.contact_sheet", "shapes.per_image", "log.level", "log.format",
}

// Load reads configuration from defaults, configFile, GENART_* environment
// variables and flags of cmd, in increasing order of precedence. cmd may be
// nil. A missing configFile is reported through Meta rather than as an error.
func Load(cmd *cobra.Command, configFile string) (Config, Meta, error) {
	v := viper.NewWithOptions(viper.WithDecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
	)))
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for _, flag := range bindPFlags {
			if f := cmd.Flags().Lookup(flag); f != nil {
				_ = v.BindPFlag(flag, f)
			}
		}
	}

	meta := Meta{}

	if configFile != "" {
		v.SetConfigFile(configFile)
		err := v.ReadInConfig()
		if err != nil {
			var pathErr *os.PathError
			if errors.As(err, &pathErr) {
				meta.FileNotFound = true
			} else {
				return Config{}, Meta{}, fmt.Errorf("error reading config file %s: %w", configFile, err)
			}
		}
	}

	conf := Config{}
	var md mapstructure.Metadata
	err := v.Unmarshal(&conf, func(dc *mapstructure.DecoderConfig) {
		dc.Metadata = &md
	})
	if err != nil {
		return Config{}, Meta{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	meta.UnknownKeys = md.Unused

	return conf, meta, nil
}

// Validate checks that the config describes a runnable batch.
func (c Config) Validate() error {
	if c.NumImages < 0 {
		return fmt.Errorf("num_images must be >= 0, got %d", c.NumImages)
	}
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("image size must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if !validHex(c.Background) {
		return fmt.Errorf("background: invalid hex color %q", c.Background)
	}
	if !c.Output.Format.IsValid() {
		return fmt.Errorf("output.format: unsupported format %v", c.Output.Format)
	}
	if c.Output.SheetColumns < 0 || c.Output.SheetCell < 0 {
		return errors.New("output.sheet_columns and output.sheet_cell must be >= 0")
	}
	if c.Shapes.PerImage < 0 {
		return fmt.Errorf("shapes.per_image must be >= 0, got %d", c.Shapes.PerImage)
	}
	if err := c.Shapes.Weights.Validate(); err != nil {
		return fmt.Errorf("shapes.weights: %w", err)
	}
	if c.Shapes.MinDiameter < 0 || c.Shapes.MaxDiameter < c.Shapes.MinDiameter {
		return fmt.Errorf("shapes: invalid diameter range [%d,%d]", c.Shapes.MinDiameter, c.Shapes.MaxDiameter)
	}
	if c.Shapes.MaxSliceSize < 0 {
		return fmt.Errorf("shapes.max_slice_size must be >= 0, got %d", c.Shapes.MaxSliceSize)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if !logging.ValidFormat(c.Log.Format) {
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	return nil
}

// Size returns the configured image size.
func (c Config) Size() genart.Size {
	return genart.Size{Width: c.Width, Height: c.Height}
}

// Persister returns the file persister described by the output section.
func (c Config) Persister() *genart.FilePersister {
	return &genart.FilePersister{
		Dir:       c.Output.Dir,
		Prefix:    c.Output.Prefix,
		Format:    c.Output.Format,
		CreateDir: c.Output.CreateDir,
	}
}

// GeneratorOptions translates the config into genart options.
func (c Config) GeneratorOptions() []genart.Option {
	opts := []genart.Option{
		genart.WithWeights(c.Shapes.Weights),
		genart.WithShapesPerImage(c.Shapes.PerImage),
		genart.WithMaxDiameterRange(c.Shapes.MinDiameter, c.Shapes.MaxDiameter),
		genart.WithMaxSliceSize(c.Shapes.MaxSliceSize),
		genart.WithBackground(gg.Hex(c.Background).Color()),
		genart.WithPersister(c.Persister()),
	}
	if c.Seed != 0 {
		opts = append(opts, genart.WithSeed(c.Seed))
	}
	return opts
}

func validHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
