package main

import (
	"errors"
	"os"
	"testing"

	"sigsum.org/stuffer-go/pkg/hash"
	"sigsum.org/stuffer-go/pkg/stuffer"
)

func TestBase64(t *testing.T) {
	out, err := encodeBase64([]byte("hello, world"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(out), "aGVsbG8sIHdvcmxk\n"; got != want {
		t.Errorf("encode: got %q, wanted %q", got, want)
	}
	for _, in := range []string{
		"aGVsbG8sIHdvcmxk\n",
		"aGVs\nbG8s\r\nIHdv cmxk",
	} {
		got, err := decodeBase64([]byte(in))
		if err != nil {
			t.Errorf("%q: decode failed: %v", in, err)
			continue
		}
		if string(got) != "hello, world" {
			t.Errorf("%q: got %q", in, got)
		}
	}
	if _, err := decodeBase64([]byte("aGVs-bG8s")); !errors.Is(err, stuffer.ErrInvalidBase64) {
		t.Errorf("got %v, wanted %v", err, stuffer.ErrInvalidBase64)
	}
}

func TestHex(t *testing.T) {
	out, err := encodeHex([]byte{0xde, 0xad, 0xbe, 0xef})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(out), "deadbeef\n"; got != want {
		t.Errorf("encode: got %q, wanted %q", got, want)
	}
	got, err := decodeHex([]byte("DE ad\nbeef\n"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "\xde\xad\xbe\xef" {
		t.Errorf("decode: got %x", got)
	}
	if _, err := decodeHex([]byte("abc")); !errors.Is(err, stuffer.ErrOutOfData) {
		t.Errorf("odd length: got %v, wanted %v", err, stuffer.ErrOutOfData)
	}
	if _, err := decodeHex([]byte("zz")); !errors.Is(err, stuffer.ErrInvalidHex) {
		t.Errorf("got %v, wanted %v", err, stuffer.ErrInvalidHex)
	}
}

func TestDigestFd(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	go func() {
		// More than one read chunk.
		for i := 0; i < 3; i++ {
			w.Write(make([]byte, 2000))
		}
		w.Close()
	}()

	st := hash.New()
	if err := st.Init(hash.SHA256); err != nil {
		t.Fatal(err)
	}
	if err := digestFd(int(r.Fd()), st); err != nil {
		t.Fatal(err)
	}
	if n, err := st.BytesInHash(); err != nil || n != 6000 {
		t.Errorf("hashed %d bytes, %v", n, err)
	}
}

func TestFormatDigest(t *testing.T) {
	st := hash.New()
	if err := st.Init(hash.SHA1); err != nil {
		t.Fatal(err)
	}
	if err := st.Update([]byte("abc")); err != nil {
		t.Fatal(err)
	}
	out, err := formatDigest(st)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(out), "a9993e364706816aba3e25717850c26c9cd0d89d\n"; got != want {
		t.Errorf("got %q, wanted %q", got, want)
	}
}

func TestEncodeServerName(t *testing.T) {
	out, err := encodeServerName("Example.com")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(out), "00000010000e00000b6578616d706c652e636f6d\n"; got != want {
		t.Errorf("got %q, wanted %q", got, want)
	}
}
