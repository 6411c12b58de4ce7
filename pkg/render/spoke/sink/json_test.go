package sink

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/spokeplot/pkg/render/spoke/styles"
)

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(countries(), WithJSONStyle(styles.Default()))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var doc struct {
		ViewBox struct {
			Width float64 `json:"width"`
		} `json:"view_box"`
		Style      map[string]any   `json:"style"`
		Primitives []map[string]any `json:"primitives"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, data)
	}

	if doc.ViewBox.Width != 500 {
		t.Errorf("view_box.width = %v, want 500", doc.ViewBox.Width)
	}
	if doc.Style == nil {
		t.Error("style missing with WithJSONStyle")
	}
	want := []string{"spoke", "node", "spoke", "node"}
	if len(doc.Primitives) != len(want) {
		t.Fatalf("got %d primitives, want %d", len(doc.Primitives), len(want))
	}
	for i, typ := range want {
		if doc.Primitives[i]["type"] != typ {
			t.Errorf("primitive %d type = %v, want %s", i, doc.Primitives[i]["type"], typ)
		}
	}
}

func TestRenderJSONWithoutStyle(t *testing.T) {
	data, err := RenderJSON(countries())
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if _, ok := doc["style"]; ok {
		t.Error("style present without WithJSONStyle")
	}
	if data[len(data)-1] != '\n' {
		t.Error("output should end with newline")
	}
}
