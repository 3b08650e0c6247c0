package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap/zapcore"
)

// DefaultTimeFormatStr is the default time format string for log appenders.
const DefaultTimeFormatStr = "2006-01-02T15:04:05.000Z0700"

// Appender is an output for log entries. This is a subset of the `zapcore.Core` interface.
type Appender interface {
	// Write submits a structured log entry to the appender for logging.
	Write(zapcore.Entry, []zapcore.Field) error
	// Sync is for signaling that any buffered logs to `Write` should be flushed. E.g: at shutdown.
	Sync() error
}

// ConsoleAppender writes one tab separated line per entry to the embedded io.Writer.
type ConsoleAppender struct {
	io.Writer
}

// NewWriterAppender creates a new appender that writes human readable output to the given writer.
func NewWriterAppender(writer io.Writer) ConsoleAppender {
	return ConsoleAppender{writer}
}

// Write outputs the log entry to the underlying stream.
func (appender ConsoleAppender) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	line, err := formatEntry(entry, fields)
	if _, writeErr := fmt.Fprintln(appender.Writer, line); writeErr != nil {
		return writeErr
	}
	return err
}

// Sync is a no-op.
func (appender ConsoleAppender) Sync() error {
	return nil
}

// formatEntry renders an entry as `time LEVEL [name] caller msg [fields]`, tab separated. The
// path and line fields are folded into the message as `path:line: msg` and the remaining fields
// are encoded as json. On an encoding error the line is still returned, without fields.
func formatEntry(entry zapcore.Entry, fields []zapcore.Field) (string, error) {
	toPrint := make([]string, 0, 6)
	toPrint = append(toPrint, entry.Time.Format(DefaultTimeFormatStr))
	toPrint = append(toPrint, strings.ToUpper(entry.Level.String()))
	if entry.LoggerName != "" {
		toPrint = append(toPrint, entry.LoggerName)
	}
	if entry.Caller.Defined {
		toPrint = append(toPrint, entry.Caller.TrimmedPath())
	}

	location, rest := splitLocation(fields)
	toPrint = append(toPrint, location+entry.Message)
	if len(rest) == 0 {
		return strings.Join(toPrint, "\t"), nil
	}
	encoded, err := encodeFields(rest)
	if err != nil {
		return strings.Join(toPrint, "\t"), err
	}
	return strings.Join(append(toPrint, encoded), "\t"), nil
}

// splitLocation pulls the path and a positive line out of fields. It returns the `path:line: `
// prefix, empty when neither is set, and the other fields in order.
func splitLocation(fields []zapcore.Field) (string, []zapcore.Field) {
	var path string
	var line int64
	rest := make([]zapcore.Field, 0, len(fields))
	for _, field := range fields {
		switch {
		case field.Key == PathKey && field.Type == zapcore.StringType:
			path = field.String
		case field.Key == LineKey && field.Type == zapcore.Int64Type && field.Integer > 0:
			line = field.Integer
		default:
			rest = append(rest, field)
		}
	}
	switch {
	case path != "" && line > 0:
		return fmt.Sprintf("%s:%d: ", path, line), rest
	case path != "":
		return path + ": ", rest
	case line > 0:
		return fmt.Sprintf("line %d: ", line), rest
	default:
		return "", rest
	}
}

// encodeFields uses zap's json encoder, which encodes the slice of fields in-order. Call it with
// an empty Entry such that only the fields become "map-ified".
func encodeFields(fields []zapcore.Field) (string, error) {
	jsonEncoder := zapcore.NewJSONEncoder(zapcore.EncoderConfig{SkipLineEnding: true})
	buf, err := jsonEncoder.EncodeEntry(zapcore.Entry{}, fields)
	if err != nil {
		return "", err
	}
	defer buf.Free()
	return buf.String(), nil
}
