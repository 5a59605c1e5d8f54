package script

import (
	"reflect"
	"testing"
)

func TestExecuteGlobals(t *testing.T) {
	src := `
img_src = image or "default.png"
width = 200 + 60
ratio = 0.2
debug = True
`
	out, err := Execute("opts.star", []byte(src), map[string]interface{}{"image": "cat.jpg"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := map[string]interface{}{
		"img_src": "cat.jpg",
		"width":   260,
		"ratio":   0.2,
		"debug":   true,
	}
	for k, v := range want {
		if out[k] != v {
			t.Errorf("Expected %s = %v, got %v", k, v, out[k])
		}
	}
	if _, ok := out["image"]; ok {
		t.Errorf("Expected inputs not to be returned as globals")
	}
}

func TestExecuteNested(t *testing.T) {
	src := `
css = {"showImgContainerCss": {"width": px(300), "left": px(12.5)}}
sizes = [1, 2.5, "x"]
`
	out, err := Execute("opts.star", []byte(src), nil)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	wantCSS := map[string]interface{}{
		"showImgContainerCss": map[string]interface{}{"width": "300px", "left": "12.5px"},
	}
	if !reflect.DeepEqual(out["css"], wantCSS) {
		t.Errorf("Expected css %v, got %v", wantCSS, out["css"])
	}

	wantSizes := []interface{}{1, 2.5, "x"}
	if !reflect.DeepEqual(out["sizes"], wantSizes) {
		t.Errorf("Expected sizes %v, got %v", wantSizes, out["sizes"])
	}
}

func TestExecuteErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		inputs map[string]interface{}
	}{
		{"syntax", "x = (", nil},
		{"runtime", "x = 1 // 0", nil},
		{"px type", `x = px("wide")`, nil},
		{"unsupported input", "x = 1", map[string]interface{}{"bad": []int{1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Execute("bad.star", []byte(tt.src), tt.inputs); err == nil {
				t.Errorf("Expected an error")
			}
		})
	}
}
