package main

import (
	"flag"
	"fmt"
	"image"

	"github.com/example/pinview/internal/imgload"
	"github.com/example/pinview/internal/ui"
)

// loadImageFn is swapped out in tests.
var loadImageFn = imgload.Load

// viewCmd represents the view subcommand.
type viewCmd struct {
	ref      string
	alt      string
	annotate bool
	panel    bool
	*root
	fs *flag.FlagSet
}

func (v *viewCmd) FlagSet() *flag.FlagSet {
	return v.fs
}

func parseViewCmd(args []string, r *root) (*viewCmd, error) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	v := &viewCmd{root: r, fs: fs}
	annotateDefault := true
	panelDefault := true
	if r != nil && r.config != nil {
		annotateDefault = r.config.Viewer.Annotate
		panelDefault = r.config.Viewer.Panel
	}
	file := fs.String("file", "", "image file to view")
	url := fs.String("url", "", "image URL to view")
	fs.StringVar(&v.alt, "alt", "", "descriptive text shown in the window title")
	fs.BoolVar(&v.annotate, "annotate", annotateDefault, "start with annotation mode enabled")
	fs.BoolVar(&v.panel, "panel", panelDefault, "start with the comment panel open")
	fs.Usage = usageFunc(v)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *file != "" && *url != "" {
		return nil, fmt.Errorf("-file and -url are mutually exclusive")
	}
	switch {
	case *file != "":
		v.ref = *file
	case *url != "":
		v.ref = *url
	case fs.NArg() > 0:
		v.ref = fs.Arg(0)
	default:
		return nil, &UsageError{of: v}
	}
	return v, nil
}

func (v *viewCmd) Run() error {
	img, err := loadImageFn(v.ref)
	if err != nil {
		return fmt.Errorf("failed to load image %s: %w", v.ref, err)
	}
	app := v.newApp(img)
	app.Run()
	return nil
}

func (v *viewCmd) newApp(img *image.RGBA) *ui.App {
	alt := v.alt
	if alt == "" {
		alt = v.ref
	}
	opts := []ui.Option{
		ui.WithImage(img),
		ui.WithAltText(alt),
		ui.WithAnnotationMode(v.annotate),
		ui.WithPanel(v.panel),
	}
	if v.root != nil {
		opts = append(opts, ui.WithTheme(v.root.activeTheme), ui.WithNotifier(v.root.notifier))
	}
	return ui.New(opts...)
}
