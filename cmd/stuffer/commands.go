package main

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/sys/unix"

	"sigsum.org/stuffer-go/pkg/hash"
	"sigsum.org/stuffer-go/pkg/log"
	"sigsum.org/stuffer-go/pkg/sni"
	"sigsum.org/stuffer-go/pkg/stuffer"
)

const readChunk = 4096

func encodeBase64(in []byte) ([]byte, error) {
	src, err := stuffer.NewReadOnly(in)
	if err != nil {
		return nil, err
	}
	dst, err := stuffer.GrowableAlloc(0)
	if err != nil {
		return nil, err
	}
	if err := dst.WriteBase64(src); err != nil {
		return nil, err
	}
	if err := dst.WriteByte('\n'); err != nil {
		return nil, err
	}
	return dst.Bytes(), nil
}

// decodeBase64 accepts whitespace between quanta, so that line-wrapped
// input works.
func decodeBase64(in []byte) ([]byte, error) {
	src, err := stuffer.NewReadOnly(in)
	if err != nil {
		return nil, err
	}
	dst, err := stuffer.GrowableAlloc(0)
	if err != nil {
		return nil, err
	}
	for {
		if _, err := src.SkipWhitespace(); err != nil {
			return nil, err
		}
		if src.IsConsumed() {
			return dst.Bytes(), nil
		}
		start := src.ReadCursor()
		if err := src.ReadBase64(dst); err != nil {
			return nil, fmt.Errorf("offset %d: %w", start, err)
		}
		if src.ReadCursor() == start {
			c, _ := src.PeekChar()
			return nil, fmt.Errorf("offset %d: unexpected character %q: %w", start, c, stuffer.ErrInvalidBase64)
		}
	}
}

func encodeHex(in []byte) ([]byte, error) {
	src, err := stuffer.NewReadOnly(in)
	if err != nil {
		return nil, err
	}
	dst, err := stuffer.GrowableAlloc(0)
	if err != nil {
		return nil, err
	}
	if err := dst.WriteHex(src); err != nil {
		return nil, err
	}
	if err := dst.WriteByte('\n'); err != nil {
		return nil, err
	}
	return dst.Bytes(), nil
}

func decodeHex(in []byte) ([]byte, error) {
	src, err := stuffer.NewReadOnly(in)
	if err != nil {
		return nil, err
	}
	dst, err := stuffer.GrowableAlloc(0)
	if err != nil {
		return nil, err
	}
	for {
		if _, err := src.SkipWhitespace(); err != nil {
			return nil, err
		}
		if src.IsConsumed() {
			return dst.Bytes(), nil
		}
		// One byte at a time, so that whitespace can appear anywhere
		// between bytes.
		if err := src.ReadHex(dst, 1); err != nil {
			return nil, fmt.Errorf("offset %d: %w", src.ReadCursor(), err)
		}
	}
}

// digestFd feeds everything read from fd into st.
func digestFd(fd int, st *hash.State) error {
	buf, err := stuffer.GrowableAlloc(readChunk)
	if err != nil {
		return err
	}
	defer buf.Free()
	for {
		n, err := buf.RecvFromFd(fd, readChunk)
		if err == io.EOF {
			return nil
		}
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return err
		}
		log.Debug("read %d bytes", n)
		if err := hash.Transcript(st, buf, buf.DataAvailable()); err != nil {
			return err
		}
		if err := buf.Rewrite(); err != nil {
			return err
		}
	}
}

func formatDigest(st *hash.State) ([]byte, error) {
	digest, err := stuffer.Alloc(uint32(st.Algorithm().DigestSize()))
	if err != nil {
		return nil, err
	}
	p, err := digest.RawWrite(digest.Capacity())
	if err != nil {
		return nil, err
	}
	if err := st.Digest(p); err != nil {
		return nil, err
	}
	out, err := stuffer.GrowableAlloc(0)
	if err != nil {
		return nil, err
	}
	if err := out.WriteHex(digest); err != nil {
		return nil, err
	}
	if err := out.WriteByte('\n'); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func encodeServerName(host string) ([]byte, error) {
	ext, err := stuffer.GrowableAlloc(0)
	if err != nil {
		return nil, err
	}
	if err := sni.WriteExtension(ext, host); err != nil {
		return nil, err
	}
	return encodeHex(ext.Bytes())
}
