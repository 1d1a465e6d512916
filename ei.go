// Package ei provides encoding of records in the fixed-width EI (Externe
// Integratie) format used for healthcare claim messages.
//
// A record is a single line of text. Each field of a record occupies a
// predeclared window of characters within the line. Every line in a message
// shares the same length and is terminated with CR LF.
package ei

import "io"

// Serializer is the interface implemented by a record that can write
// itself as a single EI line.
//
// *Record implements Serializer. Concrete record types usually embed
// *Record and thereby satisfy it as well.
//
// SetLength is called by the Writer before every Serialize so that all
// records in a message share one length.
type Serializer interface {
	Code() int
	SetLength(length int)
	Serialize(w io.Writer) error
	Validate() error
}
