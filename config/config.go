// Package config reads and writes magnifier options documents.
//
// A document is YAML (.yaml, .yml) or a Starlark script (.star) whose
// top-level globals use the same names as the YAML keys:
//
//	img_src: photos/cat.jpg
//	source_img_selector: "#source"
//	show_img_selector: "#viewport"
//	css:
//	  showImgContainerCss:
//	    width: 300px
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"pic-magnifier/magnifier"
	"pic-magnifier/script"
)

// DefaultPath is where the current options are saved.
const DefaultPath = "magnifier.yaml"

// ErrUnsupportedFormat is returned for files that are neither YAML nor Starlark.
var ErrUnsupportedFormat = errors.New("unsupported options format")

type CameraState struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Zoom float64 `yaml:"zoom"`
}

// File is an options document.
type File struct {
	ImgSrc            string                       `yaml:"img_src"`
	SourceImgSelector string                       `yaml:"source_img_selector"`
	ShowImgSelector   string                       `yaml:"show_img_selector"`
	Debug             bool                         `yaml:"debug,omitempty"`
	CSS               map[string]map[string]string `yaml:"css,omitempty"`
	Camera            *CameraState                 `yaml:"camera,omitempty"`
}

// Default is the document used when no file is given.
func Default() File {
	return File{
		SourceImgSelector: "#source",
		ShowImgSelector:   "#viewport",
	}
}

// Options converts the document to widget options.
func (f File) Options() magnifier.Options {
	opts := magnifier.Options{
		ImgSrc:    f.ImgSrc,
		SourceImg: magnifier.Selector(f.SourceImgSelector),
		ShowImg:   magnifier.Selector(f.ShowImgSelector),
	}
	if len(f.CSS) > 0 {
		opts.CSS = make(map[string]magnifier.Style, len(f.CSS))
		for group, props := range f.CSS {
			opts.CSS[group] = magnifier.Style(props).Clone()
		}
	}
	return opts
}

// FromOptions builds a document from widget options. Element references
// without a selector cannot be saved and are left empty.
func FromOptions(opts magnifier.Options) File {
	f := File{
		ImgSrc:            opts.ImgSrc,
		SourceImgSelector: opts.SourceImg.Selector,
		ShowImgSelector:   opts.ShowImg.Selector,
	}
	if len(opts.CSS) > 0 {
		f.CSS = make(map[string]map[string]string, len(opts.CSS))
		for group, style := range opts.CSS {
			f.CSS[group] = map[string]string(style.Clone())
		}
	}
	return f
}

// Load reads a document over the defaults. Starlark scripts see the
// command-line image as the global "image" ("" when none).
func Load(path, image string) (File, error) {
	f := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	case ".star":
		err = loadStarlark(path, data, image, &f)
	default:
		return f, fmt.Errorf("config: %s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return f, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// loadStarlark runs the script and decodes its globals through YAML so both
// formats share one schema.
func loadStarlark(path string, data []byte, image string, f *File) error {
	globals, err := script.Execute(filepath.Base(path), data, map[string]interface{}{"image": image})
	if err != nil {
		return err
	}

	doc := make(map[string]interface{}, len(globals))
	for k, v := range globals {
		if v == nil || strings.HasPrefix(k, "_") {
			continue
		}
		doc[k] = v
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(out, f)
}

// Save writes the document as YAML.
func Save(path string, f File) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer out.Close()

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return enc.Close()
}
