// Package codelist provides read only access to the Vektis code lists used
// by EI records.
package codelist

import (
	"bufio"
	"bytes"
	_ "embed"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

//go:embed data/cod101.tsv
var cod101 []byte

// TransportDestination is an entry of code list COD101.
type TransportDestination struct {
	ID   int
	Name string
}

// DefaultTransportDestination is the first entry of the list, meaning no
// destination was chosen.
var DefaultTransportDestination = TransportDestination{ID: -1, Name: ""}

var (
	destinations     []TransportDestination
	destinationsOnce sync.Once
)

// TransportDestinations returns the COD101 code list. The first entry is
// DefaultTransportDestination. The returned slice is a copy.
func TransportDestinations() []TransportDestination {
	return append([]TransportDestination(nil), loadTransportDestinations()...)
}

// LookupTransportDestination returns the COD101 entry with the given ID.
func LookupTransportDestination(id int) (TransportDestination, bool) {
	for _, d := range loadTransportDestinations() {
		if d.ID == id {
			return d, true
		}
	}
	return TransportDestination{}, false
}

func loadTransportDestinations() []TransportDestination {
	destinationsOnce.Do(func() {
		list, err := ParseTransportDestinations(bytes.NewReader(cod101))
		if err != nil {
			panic(err)
		}
		destinations = append([]TransportDestination{DefaultTransportDestination}, list...)
	})
	return destinations
}

// ParseTransportDestinations reads a tab separated code list. Each line
// holds an ID and a name. Lines that do not consist of exactly two parts
// are skipped.
func ParseTransportDestinations(r io.Reader) ([]TransportDestination, error) {
	var list []TransportDestination
	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		parts := strings.Split(strings.TrimRight(s.Text(), "\r"), "\t")
		if len(parts) != 2 {
			continue
		}
		id, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, errors.Wrapf(err, "codelist: line %d", n)
		}
		list = append(list, TransportDestination{ID: id, Name: parts[1]})
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "codelist: read")
	}
	return list, nil
}
