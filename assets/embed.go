// assets/embed.go
//
// Static word-list asset bundled into the binary.
// words.txt holds one lowercase word per line; blank lines and
// lines starting with "#" are ignored by readers.

package assets

import (
	"embed"
	"io"
)

// WordListName is the bundled word list inside FS.
const WordListName = "words.txt"

//go:embed words.txt
var FS embed.FS

// WordList opens the bundled word list. Callers must close it.
func WordList() (io.ReadCloser, error) {
	return FS.Open(WordListName)
}
