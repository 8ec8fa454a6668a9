package observability

import (
	"context"
	"testing"
)

func TestFields(t *testing.T) {
	cases := []struct {
		field Field
		key   string
		value interface{}
	}{
		{String("s", "v"), "s", "v"},
		{Int("n", 7), "n", 7},
		{Float64("f", 0.5), "f", 0.5},
	}
	for _, c := range cases {
		if c.field.Key() != c.key {
			t.Errorf("key = %q, want %q", c.field.Key(), c.key)
		}
		if c.field.Value() != c.value {
			t.Errorf("value = %v, want %v", c.field.Value(), c.value)
		}
	}
}

func TestNopLogger(t *testing.T) {
	var logger Logger = NopLogger{}
	logger = logger.With(String("component", "registry"))
	logger.Debug("msg")
	logger.Info("msg")
	logger.Warn("msg")
	logger.Error("msg", Error("err", nil))
}

func TestNopTracer(t *testing.T) {
	tracer := NopTracer()
	ctx := context.Background()
	ctx2, span := tracer.StartSpan(ctx, "test")
	if ctx2 != ctx {
		t.Fatalf("nop tracer should return same context")
	}
	span.SetTag("key", "value")
	span.SetError(nil)
	span.Finish()
}
