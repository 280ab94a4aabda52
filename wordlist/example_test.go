package wordlist_test

import (
	"fmt"

	"github.com/katalvlaran/lasercore/wordlist"
)

// ExampleWordList_Substitute shows the frame push/advance cycle the
// planner drives once per placement.
func ExampleWordList_Substitute() {
	w := wordlist.New()
	release := w.Push(map[string][]string{"name": {"Ada", "Grace"}})
	defer release()

	fmt.Println(w.Substitute("engraving for {name}"))
	w.Advance("name")
	fmt.Println(w.Substitute("engraving for {name}"))

	// Output:
	// engraving for Ada
	// engraving for Grace
}
