package main

import (
	"bufio"
	"encoding/hex"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/indigo-web/sxg/buffer"
	"github.com/indigo-web/sxg/cbor"
	"github.com/indigo-web/sxg/config"
	"github.com/indigo-web/sxg/errors"
	"github.com/indigo-web/sxg/header"
	"github.com/indigo-web/sxg/internal/strutil"
	"github.com/indigo-web/utils/uf"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const statusKey = ":status"

var jsonConfig = jsoniter.Config{EscapeHTML: false}.Froze()

type options struct {
	Format  string
	Headers []string
	Status  uint64
	Verbose bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("sxgheader", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.Format, "format", "hex", "output format: hex, raw, diag or json")
	flagSet.StringArrayVarP(&opts.Headers, "header", "H", nil, "header field as 'Key: value' (stdin is read when omitted)")
	flagSet.Uint64Var(&opts.Status, "status", 0, "response status, stored as the :status pseudo-header")
	flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "log every appended field")

	if err := flagSet.Parse(args); err != nil {
		if stderrors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	logger := newLogger(opts.Verbose, stderr)
	defer func() { _ = logger.Sync() }()

	cfg := config.Default()
	h := header.NewWithConfig(cfg.Headers)
	defer h.Release()

	if flagSet.Changed("status") {
		if err := h.AppendInteger(statusKey, opts.Status); err != nil {
			return err
		}
	}

	lines := opts.Headers
	if len(lines) == 0 {
		var err error
		if lines, err = readLines(stdin); err != nil {
			return fmt.Errorf("read header fields: %w", err)
		}
	}

	if err := appendLines(h, lines, logger); err != nil {
		return err
	}

	out := buffer.New(cfg.Buffer.Size.Default, cfg.Buffer.Size.Maximal)
	defer out.Release()

	if err := cbor.SerializeHeader(h, out); err != nil {
		return err
	}

	logger.Debug("encoded header map",
		zap.Int("entries", h.Len()),
		zap.Int("bytes", out.Len()),
	)

	return render(stdout, opts.Format, h, out.Bytes())
}

func newLogger(verbose bool, w io.Writer) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level)

	return zap.New(core).Named("sxgheader")
}

func readLines(r io.Reader) (lines []string, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines, scanner.Err()
}

func appendLines(h *header.Header, lines []string, logger *zap.Logger) error {
	for i, line := range lines {
		if len(strutil.RStripWS(line)) == 0 {
			continue
		}

		key, value, ok := strutil.CutField(line)
		if !ok {
			return fmt.Errorf("line %d: %q: %w", i+1, line, errors.ErrBadHeaderLine)
		}

		if err := h.AppendString(key, value); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}

		logger.Debug("appended field",
			zap.String("key", key),
			zap.Int("length", len(value)),
			zap.Int("entries", h.Len()),
		)
	}

	return nil
}

func render(w io.Writer, format string, h *header.Header, encoded []byte) error {
	switch format {
	case "hex":
		_, err := fmt.Fprintln(w, hex.EncodeToString(encoded))
		return err
	case "raw":
		_, err := w.Write(encoded)
		return err
	case "diag":
		notation, err := cbor.Diagnose(encoded)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, notation)
		return err
	case "json":
		return renderJSON(w, cbor.Canonicalize(h))
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// renderJSON writes the canonical fields as a JSON object, keeping the canonical order.
func renderJSON(w io.Writer, fields []cbor.Field) error {
	stream := jsoniter.NewStream(jsonConfig, w, 512)
	stream.WriteObjectStart()

	for i, field := range fields {
		if i > 0 {
			stream.WriteMore()
		}

		stream.WriteObjectField(field.Key)
		stream.WriteString(uf.B2S(field.Value))
	}

	stream.WriteObjectEnd()
	stream.WriteRaw("\n")

	return stream.Flush()
}
