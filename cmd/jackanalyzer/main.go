// Command jackanalyzer resolves a path argument (a .jack file or a
// directory of them) into a file list, drives the jack front end over each
// file, and writes out the requested artifact(s).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/teris-io/cli"

	"its-hmny.dev/jack-analyzer/pkg/jack"
)

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: false})
	l.SetOutput(os.Stdout)
	return l
}

var description = strings.ReplaceAll(`
The Jack Analyzer reads one or more .jack source files (or a directory of
them) and, for each, emits an XML artifact describing its lexical and/or
syntactic structure: the token stream (<stem>T.xml) and/or the annotated
parse tree (<stem>.xml). It performs no type checking and generates no
code; it is the front end of a Jack compiler only.
`, "\n", " ")

var jackAnalyzer = cli.New(description).
	WithArg(cli.NewArg("inputs", "The source (.jack) file(s) or directory to be analyzed").
		AsOptional().WithType(cli.TypeString)).
	WithOption(cli.NewOption("tokens", "Emit only the token-stream artifact (<stem>T.xml)").
		WithType(cli.TypeBool)).
	WithOption(cli.NewOption("both", "Emit both the token-stream and parse-tree artifacts").
		WithType(cli.TypeBool)).
	WithAction(Handler)

// Handler resolves args into a list of translation units (one per .jack
// file), then runs the front end over each, writing the requested
// artifact(s) alongside the source. A failure on one file is logged and
// does not stop the remaining files from being attempted; the first
// failure determines the final exit code.
func Handler(args []string, options map[string]string) int {
	if len(args) < 1 {
		log.Error("not enough arguments provided, expected a .jack file or a directory")
		return -1
	}

	emitTokens, emitTree := resolveModes(options)

	var tus []string
	for _, input := range args {
		files, err := discoverTranslationUnits(input)
		if err != nil {
			log.WithField("input", input).WithError(err).Error("unable to resolve input")
			return -1
		}
		tus = append(tus, files...)
	}

	var firstErr error
	for _, tu := range tus {
		entry := log.WithField("file", tu)

		content, err := os.ReadFile(tu)
		if err != nil {
			entry.WithError(err).Error("unable to read input file")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		stem := strings.TrimSuffix(tu, filepath.Ext(tu))

		if emitTokens {
			if err := writeArtifact(stem+"T.xml", string(content), jack.TokenStream, tu); err != nil {
				entry.WithError(err).Error("unable to complete 'tokenize' pass")
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
		}

		if emitTree {
			if err := writeArtifact(stem+".xml", string(content), jack.ParseTree, tu); err != nil {
				entry.WithError(err).Error("unable to complete 'parse' pass")
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
		}

		entry.Info("analyzed")
	}

	if firstErr != nil {
		fmt.Printf("ERROR: %s\n", firstErr)
		return -1
	}

	return 0
}

// resolveModes maps the --tokens/--both flags onto which artifact(s) to
// emit; the default (neither flag set) is the annotated parse tree alone.
func resolveModes(options map[string]string) (emitTokens, emitTree bool) {
	_, tokensOnly := options["tokens"]
	_, both := options["both"]

	switch {
	case both:
		return true, true
	case tokensOnly:
		return true, false
	default:
		return false, true
	}
}

// discoverTranslationUnits resolves one positional argument into the .jack
// files it names: itself if it's a file, or its immediate (non-recursive)
// .jack children if it's a directory.
func discoverTranslationUnits(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return []string{input}, nil
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".jack" {
			continue
		}
		files = append(files, filepath.Join(input, entry.Name()))
	}
	return files, nil
}

// writeArtifact runs render over content and writes the result to path,
// only creating the file once render succeeds - a failing file never
// leaves a partial artifact on disk.
func writeArtifact(path, content string, render func(file, source string) (string, error), tu string) error {
	output, err := render(tu, content)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(output), 0o644)
}

func main() { os.Exit(jackAnalyzer.Run(os.Args, os.Stdout)) }
