package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/goliatone/go-formstore"
	"github.com/goliatone/go-formstore/pkg/formstate"
	"github.com/goliatone/go-formstore/pkg/logger"
	"github.com/goliatone/go-formstore/pkg/prompt"
	"github.com/goliatone/go-formstore/pkg/site"
)

const schemaVersion = "1.0.0"

func main() {
	var (
		configFlag   = flag.String("config", "", "Site config YAML (env SITE_* only when empty)")
		formFlag     = flag.String("form", "contact", "Form to fill (contact, trademark)")
		prefillFlag  = flag.String("prefill", "", "Optional YAML/JSON draft applied before prompting")
		schemaFlag   = flag.Bool("schema", false, "Print the OpenAPI description of both forms and exit")
		noPromptFlag = flag.Bool("no-prompt", false, "Skip interactive prompts and print the prefilled draft")
		sanitizeFlag = flag.Bool("sanitize", false, "Strip markup from answers and store them HTML-escaped")
		envFlag      = flag.String("env", logger.DevelopmentEnvironment, "Logging environment (development, production)")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags]\n\nFill a school site form draft from the terminal.\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := logger.Setup(*envFlag); err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}
	defer func() { _ = logger.Default().Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *schemaFlag {
		if err := writeSchema(ctx, os.Stdout); err != nil {
			logger.Default().Fatal("schema", zap.Error(err))
		}
		return
	}

	record := formstate.Record(*formFlag)
	if record != formstate.RecordContact && record != formstate.RecordTrademark {
		log.Fatalf("unknown form %q", *formFlag)
	}

	cfg, err := site.Load(*configFlag)
	if err != nil {
		logger.Default().Fatal("load site config", zap.Error(err))
	}

	session, err := formstore.NewSession(
		formstore.WithSite(cfg),
		formstore.WithLogger(logger.Default()),
		formstore.WithSanitizing(*sanitizeFlag),
	)
	if err != nil {
		logger.Default().Fatal("create session", zap.Error(err))
	}

	ctx = logger.WithFields(ctx, zap.String("form", string(record)))
	session.Container.Subscribe(func(change formstate.Change) {
		logger.Debug(ctx, "draft changed",
			zap.String("record", string(change.Record)),
			zap.Strings("fields", change.Fields),
		)
	})

	if *prefillFlag != "" {
		if err := applyPrefill(session.Container, *prefillFlag); err != nil {
			logger.Error(ctx, "apply prefill", zap.String("path", *prefillFlag), zap.Error(err))
			os.Exit(1)
		}
	}

	if !*noPromptFlag {
		if err := session.Filler().Fill(ctx, record); err != nil {
			if errors.Is(err, prompt.ErrAborted) || errors.Is(err, context.Canceled) {
				logger.Info(ctx, "aborted")
				os.Exit(130)
			}
			logger.Error(ctx, "fill form", zap.Error(err))
			os.Exit(1)
		}
	}

	snapshot := session.Container.Snapshot()
	text, err := session.Summary.Record(record, snapshot)
	if err != nil {
		logger.Error(ctx, "render summary", zap.Error(err))
		os.Exit(1)
	}
	fmt.Println(text)

	if err := writeRecordJSON(os.Stdout, record, snapshot); err != nil {
		logger.Error(ctx, "encode draft", zap.Error(err))
		os.Exit(1)
	}
}

func applyPrefill(c *formstate.Container, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	draft, err := formstate.DecodeDraft(f)
	if err != nil {
		return err
	}
	return c.ApplyDraft(draft)
}

func writeSchema(ctx context.Context, w io.Writer) error {
	doc := formstate.OpenAPIDocument("School site form drafts", schemaVersion)
	if err := formstate.ValidateDocument(ctx, doc); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func writeRecordJSON(w io.Writer, record formstate.Record, snapshot formstate.Snapshot) error {
	var payload any = snapshot.Contact
	if record == formstate.RecordTrademark {
		payload = snapshot.Trademark
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
