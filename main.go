package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"pic-magnifier/config"
	"pic-magnifier/magnifier"
)

// NewRootCommand creates the pic-magnifier command.
func NewRootCommand() *cobra.Command {
	var (
		configPath string
		fontPath   string
		savePath   string
		lens       string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "pic-magnifier [image]",
		Short: "Image viewer with a magnifying lens",
		Long: `pic-magnifier shows an image as a thumbnail with a lens. Moving the pointer
over the thumbnail moves the lens, and the viewport beside it shows the
covered region enlarged.

Examples:
  pic-magnifier photos/cat.jpg
  pic-magnifier --config magnifier.yaml
  pic-magnifier --lens 80x80 https://example.com/map.png`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			image := ""
			if len(args) == 1 {
				image = args[0]
			}
			settings, err := buildSettings(configPath, image, lens, debug)
			if err != nil {
				return err
			}
			settings.FontPath = fontPath
			settings.SavePath = savePath

			ebiten.SetWindowSize(DefaultScreenWidth, DefaultScreenHeight)
			ebiten.SetWindowTitle(WindowTitle)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

			g := NewGame(settings)
			defer g.Close()
			return ebiten.RunGame(g)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Options file (.yaml, .yml or .star)")
	cmd.Flags().StringVar(&fontPath, "font", DefaultFontPath, "TrueType font for the UI")
	cmd.Flags().StringVar(&savePath, "save", config.DefaultPath, "Where Ctrl+S writes the options")
	cmd.Flags().StringVar(&lens, "lens", "", "Lens size as WIDTHxHEIGHT in pixels")
	cmd.Flags().BoolVar(&debug, "debug", false, "Log diagnostic messages")

	return cmd
}

// buildSettings merges the options file and the command line. The command
// line wins.
func buildSettings(configPath, image, lens string, debug bool) (Settings, error) {
	f := config.Default()
	if configPath != "" {
		var err error
		f, err = config.Load(configPath, image)
		if err != nil {
			return Settings{}, err
		}
	}

	if image != "" {
		f.ImgSrc = image
	}
	if debug {
		f.Debug = true
	}
	if lens != "" {
		size, err := parseLens(lens)
		if err != nil {
			return Settings{}, err
		}
		if f.CSS == nil {
			f.CSS = make(map[string]map[string]string)
		}
		group := f.CSS[magnifier.GroupLens]
		if group == nil {
			group = make(map[string]string)
			f.CSS[magnifier.GroupLens] = group
		}
		group["width"] = magnifier.Px(size.Width)
		group["height"] = magnifier.Px(size.Height)
	}

	return Settings{File: f, Debug: f.Debug}, nil
}

// parseLens parses "WIDTHxHEIGHT".
func parseLens(s string) (magnifier.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return magnifier.Size{}, fmt.Errorf("invalid lens size %q: want WIDTHxHEIGHT", s)
	}
	width, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil || width <= 0 {
		return magnifier.Size{}, fmt.Errorf("invalid lens width %q", w)
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err != nil || height <= 0 {
		return magnifier.Size{}, fmt.Errorf("invalid lens height %q", h)
	}
	return magnifier.Size{Width: width, Height: height}, nil
}

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
