// Command ffi builds a C-shared library exposing FindBestMoveC, a foreign
// function entry point wrapping api.FindBestMove for callers outside Go.
package main

import "C"

import (
	"github.com/negamax-chess/engine/api"
)

// FindBestMoveC replays uciMoves (a space-separated UCI move list) from the
// starting position and returns the engine's chosen reply in UCI form, or
// an empty string on error. depth is the search depth in plies.
//
//export FindBestMoveC
func FindBestMoveC(uciMoves *C.char, depth C.int) *C.char {
	move, err := api.FindBestMove(C.GoString(uciMoves), int(depth))
	if err != nil {
		return C.CString("")
	}
	return C.CString(move)
}

func main() {}
