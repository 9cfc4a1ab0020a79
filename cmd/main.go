package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/Mercerenies/wuas-render/base"
	"github.com/Mercerenies/wuas-render/board"
	"github.com/Mercerenies/wuas-render/logging"
	"github.com/Mercerenies/wuas-render/render"
	"github.com/Mercerenies/wuas-render/sprite"
)

const usage = "usage: wuas-render [-config <config.json>] -i <table-file> [<output.png>]\n" +
	"       wuas-render [-config <config.json>] -t <table-file>"

// The parsed command line. Mode "-i" renders an image, "-t" writes the viewer
// JSON to stdout.
type options struct {
	ConfigPath string
	Mode       string
	TablePath  string
	OutPath    string
}

func parseArgs(argv []string) (*options, error) {
	opts := &options{ConfigPath: "config.json"}

	if len(argv) >= 1 && argv[0] == "-config" {
		if len(argv) < 2 {
			return nil, fmt.Errorf("-config needs a path\n%s", usage)
		}
		opts.ConfigPath = argv[1]
		argv = argv[2:]
	}
	if len(argv) < 2 {
		return nil, fmt.Errorf("%s", usage)
	}

	opts.Mode = argv[0]
	opts.TablePath = argv[1]
	switch opts.Mode {
	case "-i":
		if len(argv) > 3 {
			return nil, fmt.Errorf("%s", usage)
		}
		if len(argv) == 3 {
			opts.OutPath = argv[2]
		}
	case "-t":
		if len(argv) > 2 {
			return nil, fmt.Errorf("%s", usage)
		}
	default:
		return nil, fmt.Errorf("unknown mode %q\n%s", opts.Mode, usage)
	}
	return opts, nil
}

func onPanic(recoveredValue interface{}) {
	stack := debug.Stack()
	logging.Error("PANIC", "val", recoveredValue, "stack", string(stack))
	fmt.Fprintf(os.Stderr, "PANIC: %v\n%s\n", recoveredValue, stack)
}

func Main(argv []string) error {
	defer func() {
		if r := recover(); r != nil {
			onPanic(r)
			panic(r)
		}
	}()

	opts, err := parseArgs(argv)
	if err != nil {
		return err
	}

	table, err := board.LoadTable(opts.TablePath)
	if err != nil {
		return err
	}

	switch opts.Mode {
	case "-i":
		return renderImage(opts, table)
	case "-t":
		return render.WriteJSON(os.Stdout, table)
	}
	panic(fmt.Errorf("unreachable mode %q", opts.Mode))
}

func renderImage(opts *options, table *board.Table) error {
	cfg, err := base.LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	dict, err := sprite.LoadDictionary(cfg.Files.Dict)
	if err != nil {
		return err
	}
	sheets, err := sprite.OpenSheets(cfg)
	if err != nil {
		return err
	}

	if opts.OutPath != "" {
		logging.Info("rendering board", "table", opts.TablePath, "out", opts.OutPath)
		return render.SaveImage(opts.OutPath, table, dict, sheets)
	}

	img, err := render.Image(table, dict, sheets)
	if err != nil {
		return err
	}
	return show(img)
}
