package ei

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Marshal returns the EI encoding of a message consisting of rs. Every
// record is written with the given record length.
func Marshal(recordLength int, rs ...Serializer) ([]byte, error) {
	buff := bytes.NewBuffer(nil)
	if err := NewWriter(buff, recordLength).SerializeAll(rs...); err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}

// A Writer writes the records of a single EI message to an output stream.
// All records written by a Writer share the same length.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	w            *bufio.Writer
	recordLength int
	strict       bool
}

// NewWriter returns a new Writer that writes records of recordLength
// characters to w.
func NewWriter(w io.Writer, recordLength int) *Writer {
	return &Writer{
		w:            bufio.NewWriter(w),
		recordLength: recordLength,
	}
}

// RecordLength returns the length shared by all records of the message.
func (w *Writer) RecordLength() int {
	return w.recordLength
}

// SetStrictLayout configures whether the Writer validates the layout of
// every record before writing it. When enabled, a record with overlapping
// fields or fields beyond the record length is rejected. Disabled by
// default.
func (w *Writer) SetStrictLayout(strict bool) {
	w.strict = strict
}

// Serialize sets the length of r to the record length of the message and
// writes it to the stream.
func (w *Writer) Serialize(r Serializer) error {
	r.SetLength(w.recordLength)

	if w.strict {
		if err := r.Validate(); err != nil {
			Logger().Warn("invalid record layout", zap.Int("code", r.Code()), zap.Error(err))
			return errors.Wrapf(err, "validate record %02d", r.Code())
		}
	}

	if err := r.Serialize(w.w); err != nil {
		Logger().Warn("serialize record failed", zap.Int("code", r.Code()), zap.Error(err))
		return errors.Wrapf(err, "serialize record %02d", r.Code())
	}
	Logger().Debug("serialized record", zap.Int("code", r.Code()), zap.Int("length", w.recordLength))

	return w.w.Flush()
}

// SerializeAll writes rs in order. It stops at the first record that
// fails.
func (w *Writer) SerializeAll(rs ...Serializer) error {
	for _, r := range rs {
		if err := w.Serialize(r); err != nil {
			return err
		}
	}
	return nil
}
