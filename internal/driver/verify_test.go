package driver

import (
	"context"
	"testing"

	"wbprotofmt/internal/format"
)

func TestCheckIdempotent(t *testing.T) {
	sources := []string{
		messy,
		"# header\nPROTO Robot [\nfield SFVec3f translation 0 0 0\nfield SFString name \"robot\"\n]\n{\nTransform { translation IS translation }\n}\n",
		"children [ 1, 2, 3 ]\n",
	}
	for _, src := range sources {
		out, err := CheckIdempotent(context.Background(), []byte(src), format.Options{})
		if err != nil {
			t.Errorf("CheckIdempotent(%q): %v", src, err)
			continue
		}
		if len(out) == 0 {
			t.Errorf("CheckIdempotent(%q): empty output", src)
		}
	}
}

func TestCheckIdempotentRejectsBrokenInput(t *testing.T) {
	if _, err := CheckIdempotent(context.Background(), []byte("Transform {\n"), format.Options{}); err == nil {
		t.Fatal("expected an error for unparseable input")
	}
}
