package fmtstream_test

import (
	"fmt"
	"os"

	"github.com/bjaus/fmtstream"
)

func ExampleStream_Put() {
	m := fmtstream.NewMemoryStream(16)
	m.Put(fmtstream.Text("tags=")).Put(fmtstream.StringList{"a", "b"})
	fmt.Println(m.String())
	// Output: tags=["a","b"]
}

func ExampleFprint() {
	_ = fmtstream.Fprint(os.Stdout,
		fmtstream.StringMap{"k": "v"},
		fmtstream.Byte('\n'),
		fmtstream.Quoted("He said \"hi\"\n"),
		fmtstream.Byte('\n'),
	)
	// Output:
	// {"k":"v"}
	// "He said \"hi\"\n"
}

func ExampleJoin() {
	fmt.Println(string(fmtstream.Marshal(
		fmtstream.Join(", ", fmtstream.Int(-1), fmtstream.Int(0), fmtstream.Int(1)),
	)))
	// Output: -1, 0, 1
}
