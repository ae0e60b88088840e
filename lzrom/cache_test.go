package lzrom

import (
	"bytes"
	"sync"
	"testing"
)

func TestCache(t *testing.T) {
	var k Cache
	a := tileData(1, 2000)
	b := tileData(2, 2000)

	first := k.Compress(a)
	if !bytes.Equal(first, Compress(a)) {
		t.Fatal("cached output differs from Compress")
	}
	first[0] ^= 0xFF // the caller owns the result
	if !bytes.Equal(k.Compress(a), Compress(a)) {
		t.Fatal("cache entry was modified through a returned slice")
	}
	if k.Len() != 1 {
		t.Fatalf("Len = %d, want 1", k.Len())
	}

	edited := append([]byte(nil), a...)
	edited[100]++
	if !bytes.Equal(k.Compress(edited), Compress(edited)) {
		t.Fatal("edited block: wrong output")
	}
	k.Compress(b)
	if k.Len() != 3 {
		t.Fatalf("Len = %d, want 3", k.Len())
	}

	k.Reset()
	if k.Len() != 0 {
		t.Fatalf("Len after Reset = %d", k.Len())
	}
}

func TestCacheConcurrent(t *testing.T) {
	var k Cache
	blocks := make([][]byte, 8)
	want := make([][]byte, len(blocks))
	for i := range blocks {
		blocks[i] = tileData(int64(i), 1500)
		want[i] = Compress(blocks[i])
	}

	var wg sync.WaitGroup
	errs := make(chan int, 64)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := range blocks {
				j := (i + g) % len(blocks)
				if !bytes.Equal(k.Compress(blocks[j]), want[j]) {
					errs <- j
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for j := range errs {
		t.Errorf("block %d: wrong output", j)
	}
	if k.Len() != len(blocks) {
		t.Fatalf("Len = %d, want %d", k.Len(), len(blocks))
	}
}
