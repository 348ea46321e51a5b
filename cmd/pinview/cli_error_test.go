package main

import (
	"errors"
	"image"
	"strings"
	"testing"
)

func TestParseViewRequiresImage(t *testing.T) {
	_, err := parseViewCmd(nil, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UsageError, got %T: %v", err, err)
	}
}

func TestParseViewFileAndURLExclusive(t *testing.T) {
	_, err := parseViewCmd([]string{"-file", "a.png", "-url", "https://example.com/a.png"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "mutually exclusive"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseViewPositionalRef(t *testing.T) {
	cmd, err := parseViewCmd([]string{"shot.png"}, nil)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if cmd.ref != "shot.png" {
		t.Fatalf("ref = %q, want shot.png", cmd.ref)
	}
}

func TestParseViewDefaultsFromConfig(t *testing.T) {
	r := newRoot()
	r.config.Viewer.Annotate = false
	r.config.Viewer.Panel = false
	cmd, err := parseViewCmd([]string{"-file", "shot.png"}, r)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if cmd.annotate || cmd.panel {
		t.Fatalf("annotate/panel = %v/%v, want false/false from config", cmd.annotate, cmd.panel)
	}
}

func TestViewRunLoadError(t *testing.T) {
	original := loadImageFn
	sentinel := errors.New("no such image")
	loadImageFn = func(string) (*image.RGBA, error) { return nil, sentinel }
	t.Cleanup(func() { loadImageFn = original })

	cmd := &viewCmd{ref: "missing.png"}
	if err := cmd.Run(); err == nil {
		t.Fatalf("expected error")
	} else {
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected wrapped error, got %v", err)
		}
		if want := "failed to load image"; !strings.Contains(err.Error(), want) {
			t.Fatalf("expected message context, got %v", err)
		}
	}
}

func TestConfigUnknownSubcommand(t *testing.T) {
	r := &root{program: "pinview"}
	cmd, err := parseConfigCmd([]string{"frobnicate"}, r)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := cmd.Run(); err == nil {
		t.Fatalf("expected error")
	} else if want := "unknown config command"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestRootRequiresCommand(t *testing.T) {
	r := newRoot()
	err := r.Run(nil)
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UsageError, got %T: %v", err, err)
	}
	if msg := uerr.Error(); !strings.Contains(msg, "view") {
		t.Fatalf("expected usage text to list the view command, got %q", msg)
	}
}
