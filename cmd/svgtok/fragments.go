package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svgtok/internal/diag"
	"svgtok/internal/diagfmt"
	"svgtok/internal/listtok"
	"svgtok/internal/pathtok"
	"svgtok/internal/source"
	"svgtok/internal/styletok"
	"svgtok/internal/tftok"
)

// The fragment commands run one sub-grammar tokenizer over a bare
// attribute value given on the command line.

var pathCmd = &cobra.Command{
	Use:   "path \"M 10 20 L 30 40\"",
	Short: "Tokenize SVG path data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := fragment(cmd, "path", args[0])
		tok := pathtok.New(env.file, env.span, pathtok.Options{Reporter: diag.BagReporter{Bag: env.bag}})
		for i := 1; ; i++ {
			seg := tok.Next()
			if seg.Kind == pathtok.EndOfStream {
				break
			}
			fmt.Fprintf(os.Stdout, "%3d: %s %+v\n", i, seg.Kind, seg)
		}
		return env.report(cmd)
	},
}

var styleCmd = &cobra.Command{
	Use:   "style \"fill:none;stroke:red\"",
	Short: "Tokenize an inline style list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := fragment(cmd, "style", args[0])
		tok := styletok.New(env.file, env.span, styletok.Options{Reporter: diag.BagReporter{Bag: env.bag}})
		for i := 1; ; i++ {
			tk := tok.Next()
			if tk.Kind == styletok.EndOfStream {
				break
			}
			switch tk.Kind {
			case styletok.EntityRef:
				fmt.Fprintf(os.Stdout, "%3d: EntityRef &%s;\n", i, tk.Name.Text(env.file))
			default:
				fmt.Fprintf(os.Stdout, "%3d: %s = %q\n", i, tk.Name.Text(env.file), tk.Value.Text(env.file))
			}
		}
		return env.report(cmd)
	},
}

var transformCmd = &cobra.Command{
	Use:   "transform \"rotate(30 10 20)\"",
	Short: "Tokenize a transform list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := fragment(cmd, "transform", args[0])
		tok := tftok.New(env.file, env.span, tftok.Options{Reporter: diag.BagReporter{Bag: env.bag}})
		for i := 1; ; i++ {
			tk := tok.Next()
			if tk.Kind == tftok.EndOfStream {
				break
			}
			fmt.Fprintf(os.Stdout, "%3d: %s %+v\n", i, tk.Kind, tk)
		}
		return env.report(cmd)
	},
}

var pointsCmd = &cobra.Command{
	Use:   "points \"0,0 10,0 10,10\"",
	Short: "Tokenize a points list into coordinate pairs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := fragment(cmd, "points", args[0])
		it := listtok.Points(env.file, env.span)
		for i := 1; ; i++ {
			p, ok := it.Next()
			if !ok {
				break
			}
			fmt.Fprintf(os.Stdout, "%3d: (%g, %g)\n", i, p.X, p.Y)
		}
		return env.report(cmd)
	},
}

type fragmentEnv struct {
	fs   *source.FileSet
	file *source.File
	span source.Span
	bag  *diag.Bag
}

func fragment(cmd *cobra.Command, name, value string) fragmentEnv {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(value))
	return fragmentEnv{
		fs:   fs,
		file: fs.Get(id),
		span: source.Span{File: id, Start: 0, End: uint32(len(value))},
		bag:  diag.NewBag(maxDiagnostics(cmd)),
	}
}

func (e fragmentEnv) report(cmd *cobra.Command) error {
	if e.bag.Len() == 0 {
		return nil
	}
	e.bag.Sort()
	diagfmt.Pretty(os.Stderr, e.bag, e.fs, diagfmt.PrettyOpts{
		Color: useColor(cmd, os.Stderr),
	})
	return nil
}
