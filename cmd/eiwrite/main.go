// Command eiwrite writes an EI declaration message from a JSON description.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	ei "github.com/wallaceicy06/go-ei"
)

const defaultRecordLength = 320

func main() {
	var (
		inFile  = flag.String("in", "", "Path to the JSON message description")
		outFile = flag.String("out", "", "Path to write the message to (default stdout)")
		length  = flag.Int("length", defaultRecordLength, "Record length used when the description has none")
		strict  = flag.Bool("strict", false, "Reject records with overlapping fields or fields beyond the record length")
		charset = flag.String("charset", "utf8", "Output character set: utf8 or latin1")
		verbose = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: eiwrite -in <message.json> [-out file] [-length n] [-strict] [-charset utf8|latin1] [-v]")
		os.Exit(1)
	}

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	ei.SetLogger(log)

	if err := run(*inFile, *outFile, *length, *strict, *charset); err != nil {
		log.Error("write message failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(inFile, outFile string, length int, strict bool, charset string) error {
	data, err := os.ReadFile(inFile)
	if err != nil {
		return errors.Wrap(err, "read message description")
	}
	m, err := parseMessage(data, length)
	if err != nil {
		return errors.Wrap(err, "parse message description")
	}

	var out io.Writer = os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		defer f.Close()
		out = f
	}

	if err := writeMessage(out, m, strict, charset); err != nil {
		return err
	}
	ei.Logger().Info("wrote message",
		zap.Int("records", len(m.records)),
		zap.Int("recordLength", m.recordLength),
		zap.String("charset", charset))
	return nil
}

// writeMessage writes the records of m to out, transcoded to charset.
func writeMessage(out io.Writer, m *message, strict bool, charset string) error {
	var tw *transform.Writer
	switch strings.ToLower(charset) {
	case "utf8", "utf-8", "ascii", "":
	case "latin1", "iso-8859-1":
		tw = transform.NewWriter(out, charmap.ISO8859_1.NewEncoder())
		out = tw
	default:
		return errors.Errorf("unsupported charset %q", charset)
	}

	w := ei.NewWriter(out, m.recordLength)
	w.SetStrictLayout(strict)
	if err := w.SerializeAll(m.records...); err != nil {
		return err
	}
	if tw != nil {
		return errors.Wrap(tw.Close(), "transcode output")
	}
	return nil
}
