package bech32

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/iov-one/tokenswap/errors"
)

func TestBech32EncodeDecode(t *testing.T) {
	// bech32  -e -h tiov 746573742d7061796c6f6164
	const enc = `tiov1w3jhxapdwpshjmr0v9jqymqq4y`

	want, err := hex.DecodeString("746573742d7061796c6f6164")
	if err != nil {
		t.Fatal(err)
	}

	hrp, payload, err := Decode(enc)
	if err != nil {
		t.Fatal(err)
	}
	if hrp != "tiov" {
		t.Fatalf("unexpected prefix %q", hrp)
	}
	if !bytes.Equal(want, payload) {
		t.Logf("want %d", want)
		t.Logf("got  %d", payload)
		t.Fatal("invalid decode")
	}

	raw, err := Encode(hrp, payload)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}
	if raw != enc {
		t.Fatalf("invalid encoding: %q", raw)
	}
}

func TestBech32AddressRoundTrip(t *testing.T) {
	addr := bytes.Repeat([]byte{0xab}, 32)
	enc, err := Encode("swap", addr)
	if err != nil {
		t.Fatal(err)
	}
	_, got, err := Decode(enc)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(addr, got) {
		t.Fatalf("want %X, got %X", addr, got)
	}
}

func TestBech32InvalidChecksum(t *testing.T) {
	_, _, err := Decode("tiov1w3jhxapdwpshjmr0v9jqymqq4z")
	if !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %+v", err)
	}
}
