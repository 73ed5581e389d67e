package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MedAliAdlouni/mcq-generator/internal/app"
	"github.com/MedAliAdlouni/mcq-generator/internal/ui"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Run dispatches a quizai command line.
func Run(cfg app.Config, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	a, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "startup failed: %v\n", err)
		return ExitError
	}
	defer a.Close()

	switch args[0] {
	case "play":
		return runPlay(a, args[1:], stderr)
	case "results":
		return runResults(a, args[1:], stderr)
	case "upload":
		return runUpload(a, args[1:], stdout, stderr)
	case "delete":
		return runDelete(a, args[1:], stdout, stderr)
	case "generate":
		return runGenerate(a, args[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}
}

func runPlay(a *app.App, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	fs.SetOutput(stderr)
	questions := fs.String("questions", "", "path to a JSON or YAML question file")
	document := fs.String("document", "", "document id the results belong to")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if *questions == "" {
		fmt.Fprintln(stderr, "play: -questions is required")
		fs.Usage()
		return ExitUsage
	}

	if err := a.Play(*questions, *document); err != nil {
		fmt.Fprintf(stderr, "play: %v\n", err)
		return ExitError
	}
	return ExitOK
}

func runResults(a *app.App, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("results", flag.ContinueOnError)
	fs.SetOutput(stderr)
	documents := fs.String("documents", "", "comma-separated document ids")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	docs := make([]string, 0)
	for _, doc := range strings.Split(*documents, ",") {
		if doc = strings.TrimSpace(doc); doc != "" {
			docs = append(docs, doc)
		}
	}

	if err := a.Results(docs); err != nil {
		fmt.Fprintf(stderr, "results: %v\n", err)
		return ExitError
	}
	return ExitOK
}

func runUpload(a *app.App, args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: quizai upload <file>")
		return ExitUsage
	}

	resp, err := a.Client().UploadDocument(context.Background(), args[0])
	if err != nil {
		ui.Notify(stderr, false, err.Error())
		return ExitError
	}
	ui.Notify(stdout, true, fmt.Sprintf("%s (document %s)", resp.Message, resp.DocumentID))
	return ExitOK
}

func runDelete(a *app.App, args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: quizai delete <document-id>")
		return ExitUsage
	}

	resp, err := a.Client().DeleteDocument(context.Background(), args[0])
	if err != nil {
		ui.Notify(stderr, false, err.Error())
		return ExitError
	}
	ui.Notify(stdout, true, resp.Message)
	return ExitOK
}

func runGenerate(a *app.App, args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: quizai generate <document-id>")
		return ExitUsage
	}

	resp, err := a.Client().GenerateQuiz(context.Background(), args[0])
	if err != nil {
		ui.Notify(stderr, false, err.Error())
		return ExitError
	}
	ui.Notify(stdout, true, resp.Message)
	return ExitOK
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  quizai <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  play      play a quiz from a question file")
	fmt.Fprintln(w, "  results   browse play results per document")
	fmt.Fprintln(w, "  upload    upload a document to the backend")
	fmt.Fprintln(w, "  delete    delete a document")
	fmt.Fprintln(w, "  generate  generate a quiz for a document")
}
