package checksum

import (
	"bytes"
	"testing"
)

// BenchmarkCalculate benchmarks hashing a survey-sized payload.
func BenchmarkCalculate(b *testing.B) {
	content := bytes.Repeat([]byte(`{"question":"How often have you felt down?","options":[0,1,2,3]},`), 512)

	for _, calc := range []Calculator{SHA1{}, SHA256{}} {
		b.Run(calc.Algorithm(), func(b *testing.B) {
			b.SetBytes(int64(len(content)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = calc.Calculate(content)
			}
		})
	}
}
