package ei

import (
	"io"
	"strconv"
	"testing"
)

func newBenchRecord() *Record {
	r := NewRecord(4)
	for i := 0; i < 20; i++ {
		typ := Numeric
		if i%2 == 1 {
			typ = Alphanumeric
		}
		v := strconv.Itoa(i * 1000)
		r.MapField(Field{Offset: 2 + i*15, Length: 10, Type: typ, Trim: TrimStart,
			Getter: func(*Field) string { return v }})
	}
	return r
}

func BenchmarkRecord_Line(b *testing.B) {
	r := newBenchRecord()
	r.SetLength(320)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Line()
	}
}

func BenchmarkWriter_Serialize_1000(b *testing.B) {
	rs := make([]Serializer, 1000)
	for i := range rs {
		rs[i] = newBenchRecord()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = NewWriter(io.Discard, 320).SerializeAll(rs...)
	}
}

func BenchmarkRecord_Validate(b *testing.B) {
	r := newBenchRecord()
	r.SetLength(320)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Validate()
	}
}
