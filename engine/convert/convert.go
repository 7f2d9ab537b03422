/*
Package convert runs the conversion of notation files into score documents.

Every file is converted independently: it is read, parsed and laid out, and
the resulting pages are rendered and saved next to the input file. Errors
abort the conversion of a file without leaving partial output behind.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package convert

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/npillmayer/kuchi/backend/gfx"
	"github.com/npillmayer/kuchi/backend/gfx/pdf"
	"github.com/npillmayer/kuchi/backend/gfx/raster"
	"github.com/npillmayer/kuchi/core"
	"github.com/npillmayer/kuchi/core/font/fontregistry"
	"github.com/npillmayer/kuchi/core/locate/resources"
	"github.com/npillmayer/kuchi/engine/layout"
	"github.com/npillmayer/kuchi/input/notation"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kuchi.engine'.
func tracer() tracing.Trace {
	return tracing.Select("kuchi.engine")
}

// Backends
const (
	PDF = "pdf" // one paginated PDF document
	PNG = "png" // raster images, one file per page
	Log = "log" // text log of drawing operations
)

// Converter converts notation files.
type Converter struct {
	Backend  string  // PDF, PNG or Log
	FontName string  // empty for the first available default font
	Scale    float64 // pixels per big point, for PNG

	registry *fontregistry.Registry
}

// New creates a converter from configuration keys 'backend', 'font' and
// 'scale'. Missing keys select defaults.
func New(conf schuko.Configuration) (*Converter, error) {
	c := &Converter{Backend: PDF, Scale: raster.DefaultScale}
	if conf == nil {
		return c, nil
	}
	if conf.IsSet("backend") {
		c.Backend = strings.ToLower(strings.TrimSpace(conf.GetString("backend")))
	}
	switch c.Backend {
	case PDF, PNG, Log:
	default:
		return nil, core.Error(core.EINVALID, "unknown backend %q", c.Backend)
	}
	if conf.IsSet("font") {
		c.FontName = conf.GetString("font")
	}
	if conf.IsSet("scale") {
		s, err := strconv.ParseFloat(strings.TrimSpace(conf.GetString("scale")), 64)
		if err != nil || s <= 0 {
			return nil, core.Error(core.EINVALID, "invalid scale %q", conf.GetString("scale"))
		}
		c.Scale = s
	}
	return c, nil
}

// OutputPath replaces the extension of path in by ext.
func OutputPath(in, ext string) string {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.TrimSuffix(in, filepath.Ext(in)) + ext
}

// ConvertFile converts a single notation file and returns the path of the
// output. For files without cells nothing is written and out is empty.
func (c *Converter) ConvertFile(path string) (out string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", core.WrapError(err, core.EIO, "cannot open %s", path)
	}
	defer f.Close()
	units, err := notation.Read(f)
	if err != nil {
		return "", core.WrapError(err, core.Code(err), "%s: %s", path, core.UserMessage(err))
	}
	score, err := layout.Layout(units)
	if err != nil {
		return "", err
	}
	if len(score.Pages) == 0 {
		tracer().Infof("%s contains no cells, nothing to save", path)
		return "", nil
	}
	doc, err := c.document()
	if err != nil {
		return "", err
	}
	if err = score.Render(doc); err != nil {
		return "", err
	}
	out = OutputPath(path, c.Backend)
	if err = doc.Save(out); err != nil {
		return "", err
	}
	tracer().Infof("%s: %d page(s) written to %s", path, len(score.Pages), out)
	return out, nil
}

func (c *Converter) document() (gfx.Document, error) {
	switch c.Backend {
	case Log:
		return gfx.NewRecorder(), nil
	case PDF:
		if err := c.registerFont(); err != nil {
			return nil, err
		}
		return pdf.New(c.registry, c.FontName), nil
	case PNG:
		if err := c.registerFont(); err != nil {
			return nil, err
		}
		return raster.New(c.registry, c.FontName, c.Scale), nil
	}
	return nil, core.Error(core.EINVALID, "unknown backend %q", c.Backend)
}

func (c *Converter) registerFont() error {
	if c.registry == nil {
		c.registry = fontregistry.NewRegistry()
	}
	if err := resources.RegisterFont(c.registry, c.FontName); err != nil {
		return err
	}
	c.registry.LogFontList()
	return nil
}

// Result is the outcome of converting one file.
type Result struct {
	Input  string
	Output string // empty if nothing has been written
	Err    error
}

// ConvertAll converts files in order. A failing file does not stop the
// conversion of the others.
func (c *Converter) ConvertAll(paths []string) []Result {
	results := make([]Result, len(paths))
	for i, path := range paths {
		out, err := c.ConvertFile(path)
		if err != nil {
			tracer().Errorf("%s: %v", path, err)
		}
		results[i] = Result{Input: path, Output: out, Err: err}
	}
	return results
}
