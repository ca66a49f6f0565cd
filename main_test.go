package main

import (
	"bytes"
	"errors"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/PurpleSec/logx"

	"knivets.com/xorcrack/bitops"
	"knivets.com/xorcrack/codec"
)

func TestRun(t *testing.T) {
	cases := []struct {
		name string
		o    options
		args []string
		want string
	}{
		{
			"hex2b64",
			options{mode: "hex2b64"},
			[]string{"49276d206b696c6c696e6720796f757220627261696e206c696b65206120706f69736f6e6f7573206d757368726f6f6d"},
			"SSdtIGtpbGxpbmcgeW91ciBicmFpbiBsaWtlIGEgcG9pc29ub3VzIG11c2hyb29t\n",
		},
		{
			"b642hex",
			options{mode: "b642hex"},
			[]string{"AgN4"},
			"020378\n",
		},
		{
			"xor",
			options{mode: "xor"},
			[]string{"1c0111001f010100061a024b53535009181c", "686974207468652062756c6c277320657965"},
			"746865206b696420646f6e277420706c6179\n",
		},
		{
			"encrypt",
			options{mode: "encrypt", key: "ICE"},
			[]string{"Burning 'em"},
			"0b3637272a2b2e63622c2e\n",
		},
		{
			"single",
			options{mode: "single", keys: "printable"},
			[]string{"1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736"},
			"key='X' score=186 \"Cooking MC's like a pound of bacon\"\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := run(c.o, c.args, &buf, logx.Writer(ioutil.Discard, logx.Error)); err != nil {
				t.Fatal(err)
			}
			if buf.String() != c.want {
				t.Errorf("got %q, want %q", buf.String(), c.want)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		o    options
		args []string
		want error
	}{
		{"bad hex", options{mode: "hex2b64"}, []string{"abc"}, codec.ErrInvalidEncoding},
		{"padded base64", options{mode: "b642hex"}, []string{"QQ=="}, codec.ErrInvalidEncoding},
		{"length mismatch", options{mode: "xor"}, []string{"00", "0000"}, bitops.ErrLengthMismatch},
		{"empty key", options{mode: "encrypt"}, []string{"text"}, bitops.ErrEmptyKey},
		{"bad ciphertext", options{mode: "single", keys: "printable"}, []string{"0g"}, codec.ErrInvalidEncoding},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := run(c.o, c.args, ioutil.Discard, logx.Writer(ioutil.Discard, logx.Error))
			if !errors.Is(err, c.want) {
				t.Errorf("got %v, want %v", err, c.want)
			}
		})
	}
	if err := run(options{mode: "nope"}, nil, ioutil.Discard, logx.Writer(ioutil.Discard, logx.Error)); err == nil {
		t.Error("unknown mode accepted")
	}
}

func TestRunDetect(t *testing.T) {
	var buf bytes.Buffer
	o := options{mode: "detect", keys: "printable", workers: 2}
	if err := run(o, []string{"crack/testdata/corpus.txt"}, &buf, logx.Writer(ioutil.Discard, logx.Error)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); !strings.Contains(got, ":18 key='5'") || !strings.Contains(got, `"Now that the party is jumping\n"`) {
		t.Errorf("unexpected detect output %q", got)
	}

	buf.Reset()
	o.json = true
	if err := run(o, []string{"crack/testdata/corpus.txt"}, &buf, logx.Writer(ioutil.Discard, logx.Error)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); !strings.HasPrefix(got, `{"key":"5","score":209,`) || !strings.HasSuffix(got, `,"line":18}`+"\n") {
		t.Errorf("unexpected JSON output %q", got)
	}
}
