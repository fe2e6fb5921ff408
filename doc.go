/*
Package icongen renders the YCC Job Host application icon and packs it into a
multi-resolution ICO container for the installer.

Every entry is drawn procedurally from the same recipe: a corporate blue square,
a white border inset by its own width and a stylized white "Y". The recipe only
uses integer arithmetic and hard-edged strokes, so the pixels of each entry are
reproducible across runs. The 16x16 entry comes first and is the primary image.

The command line tool lives in cmd/icongen. To use the library directly:

	package main

	import (
		"fmt"
		"os"

		"github.com/ycc/icongen"
	)

	func main() {
		res, err := icongen.Generate("icon.ico")
		if err != nil {
			fmt.Printf("ERROR: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("written:", res.Path)
	}
*/
package icongen
