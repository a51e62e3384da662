package stage

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSchema_DescribesDescriptor(t *testing.T) {
	data, err := json.Marshal(Schema())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(data)

	for _, want := range []string{`"Hell Escape Stage"`, `"platforms"`, `"playerStart"`, `"homingCannon"`, `"targetStage"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected schema to mention %s", want)
		}
	}
}
