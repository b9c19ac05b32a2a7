package util

import (
	"reflect"
	"testing"
)

func TestOptionDisplayMap(t *testing.T) {
	got := OptionDisplayMap([]string{"Paris", "London", "Berlin"})
	want := map[string]string{"A": "Paris", "B": "London", "C": "Berlin"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OptionDisplayMap = %v, want %v", got, want)
	}
}

func TestOptionDisplayMapEmpty(t *testing.T) {
	got := OptionDisplayMap(nil)
	if len(got) != 0 {
		t.Errorf("OptionDisplayMap(nil) = %v, want empty map", got)
	}
	got = OptionDisplayMap([]string{})
	if len(got) != 0 {
		t.Errorf("OptionDisplayMap([]) = %v, want empty map", got)
	}
}

func TestOptionDisplayMapOrdering(t *testing.T) {
	// 字母由位置决定，与选项内容无关
	opts := []string{"z", "y", "x", "w", "v"}
	got := OptionDisplayMap(opts)
	for i, opt := range opts {
		label := string(rune('A' + i))
		if got[label] != opt {
			t.Errorf("label %s = %q, want %q", label, got[label], opt)
		}
	}
}
