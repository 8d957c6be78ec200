package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/indic-nlp/indic-go/normalize"
	"github.com/indic-nlp/indic-go/sentsplit"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp() *cli.App {
	return &cli.App{
		Name:    "indicnorm",
		Usage:   "Normalize and sentence-split Indian language text",
		Version: Version,
		Commands: []*cli.Command{
			normalizeCmd(),
			sentencesCmd(),
			languagesCmd(),
		},
	}
}

// ioFlags are shared by the text-processing commands.
func ioFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "lang", Aliases: []string{"l"}, Required: true, Usage: "Language code (e.g. hi, bn, ta, ur)"},
		&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "Input file (default: stdin)"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file (default: stdout)"},
	}
}

// normalizeCmd creates the normalize command.
func normalizeCmd() *cli.Command {
	return &cli.Command{
		Name:  "normalize",
		Usage: "Normalize text line by line",
		Flags: append(ioFlags(),
			&cli.BoolFlag{Name: "remove-nuktas", Usage: "Strip nuktas and fold nukta letters to their base form"},
			&cli.BoolFlag{Name: "decompose-nuktas", Usage: "Expand precomposed nukta letters into base+nukta"},
			&cli.StringFlag{Name: "nasals", Value: "do_nothing", Usage: "Nasal handling: do_nothing|to_anusvaara_strict|to_anusvaara_relaxed|to_nasal_consonants"},
			&cli.BoolFlag{Name: "chandras", Usage: "Fold chandra variants to canonical codepoints"},
			&cli.BoolFlag{Name: "vowel-ending", Usage: "Mark bare consonant word endings"},
			&cli.StringFlag{Name: "numerals", Usage: "Digit translation: ascii|native"},
		),
		Action: func(c *cli.Context) error {
			cfg := normalize.DefaultConfig()
			cfg.RemoveNuktas = c.Bool("remove-nuktas")
			cfg.DecomposeNuktas = c.Bool("decompose-nuktas")
			cfg.NormalizeChandras = c.Bool("chandras")
			cfg.NormalizeVowelEnding = c.Bool("vowel-ending")

			mode, err := normalize.ParseNasalsMode(c.String("nasals"))
			if err != nil {
				return err
			}
			cfg.NasalsMode = mode

			switch c.String("numerals") {
			case "":
			case "ascii":
				cfg.NormalizeNumerals = true
			case "native":
				cfg.NumeralsToNative = true
			default:
				return fmt.Errorf("invalid numerals mode %q (want ascii or native)", c.String("numerals"))
			}

			pipe, err := normalize.BuildPipeline(c.String("lang"), cfg)
			if err != nil {
				return err
			}

			return withIO(c, func(in io.Reader, out io.Writer) error {
				return eachLine(in, out, pipe.Normalize)
			})
		},
	}
}

// sentencesCmd creates the sentences command.
func sentencesCmd() *cli.Command {
	return &cli.Command{
		Name:  "sentences",
		Usage: "Split text into sentences, one per output line",
		Flags: ioFlags(),
		Action: func(c *cli.Context) error {
			lang := c.String("lang")
			return withIO(c, func(in io.Reader, out io.Writer) error {
				data, err := io.ReadAll(in)
				if err != nil {
					return err
				}
				w := bufio.NewWriter(out)
				for _, s := range sentsplit.Split(string(data), lang) {
					if _, err := fmt.Fprintln(w, s); err != nil {
						return err
					}
				}
				return w.Flush()
			})
		},
	}
}

// languagesCmd creates the languages command.
func languagesCmd() *cli.Command {
	return &cli.Command{
		Name:  "languages",
		Usage: "List supported language codes",
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, strings.Join(normalize.Supported(), "\n"))
			return nil
		},
	}
}

// withIO resolves the input/output flags and runs fn with the streams.
func withIO(c *cli.Context, fn func(io.Reader, io.Writer) error) error {
	var in io.Reader = os.Stdin
	if path := c.String("input"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = os.Stdout
	if path := c.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return fn(in, out)
}

// eachLine applies fn to every input line, preserving line boundaries.
func eachLine(in io.Reader, out io.Writer, fn func(string) string) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	w := bufio.NewWriter(out)
	for sc.Scan() {
		if _, err := fmt.Fprintln(w, fn(sc.Text())); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return w.Flush()
}
