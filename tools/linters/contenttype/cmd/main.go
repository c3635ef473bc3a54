package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"promptrelay.app/relay/tools/linters/contenttype"
)

func main() {
	singlechecker.Main(contenttype.Analyzer)
}
