//go:build bench
// +build bench

package cvsym

import (
	"testing"
)

func buildStream(records int) []byte {
	record := []byte{
		16, 17, 0, 0, 0, 0, 48, 2, 0, 0, 0, 0, 0, 0, 6, 0, 0, 0, 5, 0, 0, 0, 5, 0, 0, 0, 7,
		16, 0, 0, 64, 85, 0, 0, 1, 0, 0, 66, 97, 122, 58, 58, 102, 95, 112, 114, 111, 116,
		101, 99, 116, 101, 100, 0,
	}
	end := []byte{6, 0}

	var data []byte
	for i := 0; i < records; i++ {
		data = append(data, byte(len(record)), byte(len(record)>>8))
		data = append(data, record...)
		data = append(data, byte(len(end)), byte(len(end)>>8))
		data = append(data, end...)
	}
	return data
}

func BenchmarkIter(b *testing.B) {
	data := buildStream(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		iter := NewIter(data)
		for iter.Next() {
			_ = iter.Symbol()
		}
		if err := iter.Err(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	data := buildStream(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		iter := NewIter(data)
		for iter.Next() {
			if _, err := iter.Symbol().Parse(); err != nil {
				b.Fatal(err)
			}
		}
	}
}
