package genart

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gogpu/genart/internal/imageio"
)

// Format is an output file format.
type Format = imageio.Format

// Supported output formats.
const (
	FormatPNG  = imageio.PNG
	FormatJPEG = imageio.JPEG
	FormatTIFF = imageio.TIFF
	FormatBMP  = imageio.BMP
)

// ParseFormat converts a format name such as "png" or "tiff" to a Format.
func ParseFormat(s string) (Format, error) {
	return imageio.ParseFormat(s)
}

// Default FilePersister settings.
const (
	DefaultOutputDir = "output"
	DefaultPrefix    = "random_white"
)

// Persister stores a finished image.
type Persister interface {
	// Save stores img as the index-th image of the batch and returns where
	// it was written.
	Save(img image.Image, index int) (string, error)
}

// FilePersister writes images to <Dir>/<Prefix>_<index><ext>.
// The zero value writes PNG files named random_white_N.png into output/.
type FilePersister struct {
	Dir    string
	Prefix string
	Format Format

	// CreateDir creates Dir before writing. When false a missing
	// directory is an error.
	CreateDir bool
}

// Path returns the file path for the index-th image.
func (p *FilePersister) Path(index int) string {
	return p.path(strconv.Itoa(index))
}

// SheetPath returns the file path for the batch contact sheet.
func (p *FilePersister) SheetPath() string {
	return filepath.Join(p.dir(), p.prefix()+"_sheet"+FormatPNG.Ext())
}

func (p *FilePersister) path(suffix string) string {
	return filepath.Join(p.dir(), p.prefix()+"_"+suffix+p.Format.Ext())
}

func (p *FilePersister) dir() string {
	if p.Dir == "" {
		return DefaultOutputDir
	}
	return p.Dir
}

func (p *FilePersister) prefix() string {
	if p.Prefix == "" {
		return DefaultPrefix
	}
	return p.Prefix
}

// Save encodes img to Path(index). No retry is attempted.
func (p *FilePersister) Save(img image.Image, index int) (string, error) {
	if p.CreateDir {
		if err := os.MkdirAll(p.dir(), 0o755); err != nil {
			return "", fmt.Errorf("genart: create output dir: %w", err)
		}
	}
	path := p.Path(index)
	if err := imageio.Save(path, img, p.Format); err != nil {
		return path, err
	}
	return path, nil
}
