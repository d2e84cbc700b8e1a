// bst applies scripts of insert, delete and contains operations to an unbalanced
// binary search tree of ints and prints its traversals.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/g-m-twostay/go-bst/Trees"

	"github.com/carlmjohnson/versioninfo"
	logging "github.com/ipfs/go-log/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
)

var log = logging.Logger("bst")

func main() {
	newApp().RunAndExitOnError()
}

func newApp() *cli.App {
	app := &cli.App{
		Name:    "bst",
		Usage:   "drive an unbalanced binary search tree from the command line",
		Version: versioninfo.Short(),
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity (debug, info, warn, error)",
			Value:   "warn",
			EnvVars: []string{"BST_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "log output format (text, json)",
			Value:   "text",
			EnvVars: []string{"BST_LOG_FORMAT"},
		},
	}
	app.Before = func(cctx *cli.Context) error {
		return setLogWriter(cctx.App.ErrWriter, cctx.String("log-format"), cctx.String("log-level"))
	}
	app.Commands = []*cli.Command{
		runCmd,
		showCmd,
		measureCmd,
	}
	return app
}

var runCmd = &cli.Command{
	Name:      "run",
	Usage:     "apply operations, then print a traversal",
	ArgsUsage: "[+N|N insert, -N delete, ?N contains]...",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "order",
			Usage:   "traversal order (in, pre, post, level)",
			Value:   Trees.InOrder.String(),
			EnvVars: []string{"BST_ORDER"},
		},
		&cli.BoolFlag{
			Name:  "iterative",
			Usage: "traverse with an explicit stack or queue instead of recursion",
		},
		&cli.PathFlag{
			Name:  "script",
			Usage: "file of whitespace separated operations, applied before the arguments",
		},
	},
	Action: func(cctx *cli.Context) error {
		o, err := Trees.ParseOrder(cctx.String("order"))
		if err != nil {
			return err
		}
		tokens := cctx.Args().Slice()
		if p := cctx.Path("script"); p != "" {
			b, err := os.ReadFile(p)
			if err != nil {
				return fmt.Errorf("reading script: %w", err)
			}
			tokens = append(strings.Fields(string(b)), tokens...)
		}
		ops, err := parseOps(tokens)
		if err != nil {
			return err
		}
		tree := Trees.New[int](uint32(len(ops)))
		out := cctx.App.Writer
		if err := apply(tree, ops, out); err != nil {
			return err
		}
		log.Infow("applied operations", "ops", len(ops), "size", tree.Size(), "order", o.String())
		if err := emit(tree, o, cctx.Bool("iterative"), out); err != nil {
			return fmt.Errorf("writing traversal: %w", err)
		}
		_, err = fmt.Fprintf(out, "\nsize=%d height=%d\n", tree.Size(), tree.Height())
		return err
	},
}

var showCmd = &cli.Command{
	Name:      "show",
	Usage:     "insert values and draw the resulting tree",
	ArgsUsage: "VALUES...",
	Action: func(cctx *cli.Context) error {
		ops, err := parseOps(cctx.Args().Slice())
		if err != nil {
			return err
		}
		tree := Trees.New[int](uint32(len(ops)))
		for _, p := range ops {
			if p.kind != opInsert {
				return fmt.Errorf("show only takes values to insert, got %q", p)
			}
			tree.Insert(p.v)
		}
		_, err = fmt.Fprint(cctx.App.Writer, tree.Render())
		return err
	},
}
