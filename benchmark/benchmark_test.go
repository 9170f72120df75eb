package benchmark

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/cqkv/rkv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(b *testing.B) *rkv.Store {
	s, err := rkv.Open(filepath.Join(b.TempDir(), "data.log"))
	require.NoError(b, err)
	require.NoError(b, s.Load())
	b.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

// Benchmark_Insert .
func Benchmark_Insert(b *testing.B) {
	s := openStore(b)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		err := s.Insert([]byte("key"+strconv.Itoa(i)), []byte("value"+strconv.Itoa(i)))
		assert.Nil(b, err)
	}
}

// Benchmark_Get .
func Benchmark_Get(b *testing.B) {
	s := openStore(b)
	for i := 0; i < 10000; i++ {
		err := s.Insert([]byte("key"+strconv.Itoa(i)), []byte("value"+strconv.Itoa(i)))
		assert.Nil(b, err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, found, err := s.Get([]byte("key" + strconv.Itoa(i%10000)))
		if err != nil || !found {
			b.Fatal(err)
		}
	}
}

// Benchmark_Load .
func Benchmark_Load(b *testing.B) {
	s := openStore(b)
	for i := 0; i < 10000; i++ {
		err := s.Insert([]byte("key"+strconv.Itoa(i%1000)), []byte("value"+strconv.Itoa(i)))
		assert.Nil(b, err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := s.Load(); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark_Delete .
func Benchmark_Delete(b *testing.B) {
	s := openStore(b)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		err := s.Delete([]byte("key" + strconv.Itoa(i)))
		assert.Nil(b, err)
	}
}
