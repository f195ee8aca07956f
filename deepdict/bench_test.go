package deepdict

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

const benchSeed = 17

// benchAddrs generates n random three-segment addresses.
func benchAddrs(n int) [][]string {
	faker := gofakeit.New(benchSeed)
	addrs := make([][]string, n)
	for i := range addrs {
		addrs[i] = []string{faker.Word(), faker.Word(), faker.Word()}
	}
	return addrs
}

func benchDict(addrs [][]string) *Dict[string] {
	d := New[string]()
	for i, addr := range addrs {
		d.SetAt(i, addr[0], addr[1], addr[2])
	}
	return d
}

func BenchmarkSetAt(b *testing.B) {
	addrs := benchAddrs(1024)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		addr := addrs[i%len(addrs)]
		d := New[string]()
		d.SetAt(i, addr[0], addr[1], addr[2])
	}
}

func BenchmarkGetAt(b *testing.B) {
	addrs := benchAddrs(1024)
	d := benchDict(addrs)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		addr := addrs[i%len(addrs)]
		if _, err := d.GetAt(addr[0], addr[1], addr[2]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHasAt(b *testing.B) {
	addrs := benchAddrs(1024)
	d := benchDict(addrs)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		addr := addrs[i%len(addrs)]
		if _, err := d.HasAt(addr[0], addr[1], addr[2]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWalk(b *testing.B) {
	d := benchDict(benchAddrs(1024))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for range d.Walk() {
		}
	}
}

func BenchmarkDeepValues(b *testing.B) {
	d := benchDict(benchAddrs(1024))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for range d.DeepValues() {
		}
	}
}

func BenchmarkClone(b *testing.B) {
	d := benchDict(benchAddrs(1024))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		d.Clone()
	}
}
