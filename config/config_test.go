package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pic-magnifier/magnifier"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := write(t, "opts.yaml", `
img_src: photos/cat.jpg
debug: true
css:
  showImgContainerCss:
    width: 300px
camera:
  zoom: 1.5
`)

	f, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, "photos/cat.jpg", f.ImgSrc)
	assert.Equal(t, "#source", f.SourceImgSelector, "defaults fill missing keys")
	assert.Equal(t, "#viewport", f.ShowImgSelector)
	assert.True(t, f.Debug)
	require.NotNil(t, f.Camera)
	assert.Equal(t, 1.5, f.Camera.Zoom)

	opts := f.Options()
	assert.Equal(t, magnifier.Selector("#source"), opts.SourceImg)
	assert.Equal(t, "300px", opts.CSS[magnifier.GroupShowContainer]["width"])
	assert.NoError(t, opts.Validate())
}

func TestLoadYAMLEmptySelectorFailsValidation(t *testing.T) {
	path := write(t, "opts.yml", "img_src: a.png\nshow_img_selector: \"\"\n")

	f, err := Load(path, "")
	require.NoError(t, err)

	var cfgErr *magnifier.ConfigError
	require.True(t, errors.As(f.Options().Validate(), &cfgErr))
	assert.Equal(t, "showImgSelector", cfgErr.Field)
}

func TestLoadStarlark(t *testing.T) {
	path := write(t, "opts.star", `
img_src = image or "fallback.png"
_lens = 80
css = {
    "focusPointContainerCss": {"width": px(_lens), "height": px(_lens)},
}
`)

	f, err := Load(path, "cli.png")
	require.NoError(t, err)
	assert.Equal(t, "cli.png", f.ImgSrc)
	assert.Equal(t, map[string]string{"width": "80px", "height": "80px"}, f.CSS["focusPointContainerCss"])

	f, err = Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "fallback.png", f.ImgSrc)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = Load(write(t, "opts.json", "{}"), "")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = Load(write(t, "bad.yaml", "css: [1, 2"), "")
	assert.Error(t, err)

	_, err = Load(write(t, "bad.star", "img_src = "), "")
	assert.Error(t, err)

	_, err = Load(write(t, "wrongtype.yaml", "css:\n  maxImgCss: 5\n"), "")
	assert.Error(t, err)
}

func TestSaveWritesLoadableDocument(t *testing.T) {
	opts := magnifier.Options{
		ImgSrc:    "b.png",
		SourceImg: magnifier.Selector("#thumb"),
		ShowImg:   magnifier.Selector("#zoom"),
		CSS: map[string]magnifier.Style{
			magnifier.GroupMaxImg: {"left": "0px"},
		},
	}
	f := FromOptions(opts)
	f.Camera = &CameraState{Zoom: 2}

	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, Save(path, f))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "img_src: b.png")

	got, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, f, got)
	assert.Equal(t, opts, got.Options())
}

func TestFromOptionsDropsElementRefs(t *testing.T) {
	f := FromOptions(magnifier.Options{SourceImg: magnifier.Ref(nil), ShowImg: magnifier.Selector("#v")})
	assert.Empty(t, f.SourceImgSelector)
	assert.Equal(t, "#v", f.ShowImgSelector)
	assert.Nil(t, f.CSS)
}
