package facts

import (
	"strings"
	"testing"
)

type recordingDisplay struct {
	texts []string
}

func (d *recordingDisplay) SetFactText(text string) {
	d.texts = append(d.texts, text)
}

func TestPicker_NilDisplay(t *testing.T) {
	p := NewPicker(Space, nil, Config{Seed: 1})

	text, ok := p.ShowRandomFact()
	if ok || text != "" {
		t.Errorf("ShowRandomFact() = (%q, %v), want no-op", text, ok)
	}
	if p.LastIndex() != -1 {
		t.Errorf("LastIndex() = %d, want -1", p.LastIndex())
	}
}

func TestPicker_EmptyList(t *testing.T) {
	d := &recordingDisplay{}
	p := NewPicker(nil, d, Config{Seed: 1})

	if _, ok := p.ShowRandomFact(); ok {
		t.Error("ShowRandomFact() should be a no-op for an empty list")
	}
	if len(d.texts) != 0 {
		t.Errorf("display written %d times, want 0", len(d.texts))
	}
}

func TestPicker_PrefixAndDisplay(t *testing.T) {
	d := &recordingDisplay{}
	p := NewPicker(Space, d, Config{Seed: 7})

	text, ok := p.ShowRandomFact()
	if !ok {
		t.Fatal("ShowRandomFact() should succeed")
	}
	if !strings.HasPrefix(text, DefaultPrefix+" ") {
		t.Errorf("text %q should start with %q", text, DefaultPrefix)
	}
	if len(d.texts) != 1 || d.texts[0] != text {
		t.Errorf("display got %v, want [%q]", d.texts, text)
	}

	fact := strings.TrimPrefix(text, DefaultPrefix+" ")
	if Space[p.LastIndex()] != fact {
		t.Errorf("LastIndex() points at %q, want %q", Space[p.LastIndex()], fact)
	}
}

func TestPicker_CustomPrefix(t *testing.T) {
	d := &recordingDisplay{}
	p := NewPicker([]string{"only"}, d, Config{Seed: 1, Prefix: "*"})

	text, _ := p.ShowRandomFact()
	if text != "* only" {
		t.Errorf("text = %q, want %q", text, "* only")
	}
}

func TestPicker_NoImmediateRepeat(t *testing.T) {
	lists := map[string][]string{
		"two facts":   {"a", "b"},
		"three facts": {"a", "b", "c"},
		"space facts": Space,
	}

	for name, list := range lists {
		t.Run(name, func(t *testing.T) {
			for seed := int64(1); seed <= 5; seed++ {
				d := &recordingDisplay{}
				p := NewPicker(list, d, Config{Seed: seed})

				for i := 0; i < 200; i++ {
					p.ShowRandomFact()
				}
				for i := 1; i < len(d.texts); i++ {
					if d.texts[i] == d.texts[i-1] {
						t.Fatalf("seed %d: fact repeated at call %d: %q", seed, i, d.texts[i])
					}
				}
			}
		})
	}
}

func TestPicker_SingleFactRepeats(t *testing.T) {
	d := &recordingDisplay{}
	p := NewPicker([]string{"only"}, d, Config{Seed: 3})

	p.ShowRandomFact()
	p.ShowRandomFact()
	if len(d.texts) != 2 || d.texts[0] != d.texts[1] {
		t.Errorf("single fact list should show the same fact, got %v", d.texts)
	}
}

func TestNewPicker_CopiesList(t *testing.T) {
	list := []string{"a", "b"}
	d := &recordingDisplay{}
	p := NewPicker(list, d, Config{Seed: 1})
	list[0], list[1] = "x", "x"

	text, _ := p.ShowRandomFact()
	if strings.Contains(text, "x") {
		t.Errorf("picker should not observe caller mutations, got %q", text)
	}
}
