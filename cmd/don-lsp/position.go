package main

import (
	"unicode/utf16"

	"go.lsp.dev/protocol"
)

// posMap converts rune offsets into LSP positions, whose characters
// count UTF-16 code units.
type posMap struct {
	runes []rune
	lines []int
}

func newPosMap(s string) *posMap {
	pm := &posMap{runes: []rune(s), lines: []int{0}}
	for i, r := range pm.runes {
		if r == '\n' {
			pm.lines = append(pm.lines, i+1)
		}
	}
	return pm
}

func (pm *posMap) position(off int) protocol.Position {
	off = max(0, min(off, len(pm.runes)))
	line := 0
	for line+1 < len(pm.lines) && pm.lines[line+1] <= off {
		line++
	}
	col := 0
	for _, r := range pm.runes[pm.lines[line]:off] {
		col += utf16.RuneLen(r)
	}
	return protocol.Position{Line: uint32(line), Character: uint32(col)}
}

// offset is the inverse of position. Positions past the end of a line
// map to its end.
func (pm *posMap) offset(p protocol.Position) int {
	line := int(p.Line)
	if line >= len(pm.lines) {
		return len(pm.runes)
	}
	off := pm.lines[line]
	col := 0
	for off < len(pm.runes) && pm.runes[off] != '\n' {
		n := utf16.RuneLen(pm.runes[off])
		if col+n > int(p.Character) {
			break
		}
		col += n
		off++
	}
	return off
}

func (pm *posMap) end() protocol.Position {
	return pm.position(len(pm.runes))
}
