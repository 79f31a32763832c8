package config

import (
	"image/color"
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestDefaultWheel(t *testing.T) {
	w := DefaultWheel()

	if w.Len() != 10 {
		t.Fatalf("Expected 10 sections, got %d", w.Len())
	}
	if err := w.Validate(); err != nil {
		t.Fatalf("Expected default wheel to validate, got %v", err)
	}
	if got := w.SectionAngle(); math.Abs(got-2*math.Pi/10) > 1e-12 {
		t.Errorf("Expected section angle 2π/10, got %f", got)
	}

	labels := w.Labels()
	if labels[0] != "$100" || labels[9] != "Nothing" {
		t.Errorf("Unexpected label order: %v", labels)
	}
}

func TestValidate(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}

	tests := []struct {
		name   string
		wheel  WheelConfig
		target error
	}{
		{"empty", WheelConfig{}, ErrEmptyWheel},
		{"more labels than colors", NewWheel([]string{"a", "b"}, []color.RGBA{red}), ErrBadSection},
		{"more colors than labels", NewWheel([]string{"a"}, []color.RGBA{red, red}), ErrBadSection},
		{"blank label", NewWheel([]string{""}, []color.RGBA{red}), ErrBadSection},
		{"single section", NewWheel([]string{"a"}, []color.RGBA{red}), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.wheel.Validate()
			if tt.target == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("Expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestButtonCentered(t *testing.T) {
	if ButtonX+ButtonWidth/2 != WindowWidth/2 {
		t.Errorf("Button not horizontally centered: x=%d w=%d", ButtonX, ButtonWidth)
	}
	if ButtonY+ButtonHeight > WindowHeight {
		t.Errorf("Button extends past the window bottom")
	}
}
