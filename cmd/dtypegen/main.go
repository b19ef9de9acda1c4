// Command dtypegen renders the datatype registry from its YAML table.
//
// It is normally run through go generate in internal/datatype:
//
//	go run ../../cmd/dtypegen -in datatypes.yaml -out gen_datatypes.go -pkg datatype
package main

import (
	"flag"
	"log"
	"os"

	"github.com/born-ml/rtypes/internal/dtypegen"
)

func main() {
	in := flag.String("in", "datatypes.yaml", "registry table")
	out := flag.String("out", "gen_datatypes.go", "generated Go file")
	pkg := flag.String("pkg", "datatype", "package name of the generated file")
	flag.Parse()

	table, err := dtypegen.LoadFile(*in)
	if err != nil {
		log.Fatalf("dtypegen: %v", err)
	}

	src, err := dtypegen.Generate(table, *pkg)
	if err != nil {
		log.Fatalf("dtypegen: %v", err)
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("dtypegen: %v", err)
	}
}
