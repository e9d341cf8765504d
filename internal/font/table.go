package font

// builtin covers A-Z, 0-9 and space. Shapes use full-width strokes and
// square corners so single cells stay readable at contribution size.
var builtin = map[rune]Glyph{
	'A': {
		".111.",
		"1...1",
		"1...1",
		"11111",
		"1...1",
		"1...1",
		"1...1",
	},
	'B': {
		"1111.",
		"1...1",
		"1...1",
		"1111.",
		"1...1",
		"1...1",
		"1111.",
	},
	'C': {
		"11111",
		"1....",
		"1....",
		"1....",
		"1....",
		"1....",
		"11111",
	},
	'D': {
		"1111.",
		"1...1",
		"1...1",
		"1...1",
		"1...1",
		"1...1",
		"1111.",
	},
	'E': {
		"11111",
		"1....",
		"1....",
		"1111.",
		"1....",
		"1....",
		"11111",
	},
	'F': {
		"11111",
		"1....",
		"1....",
		"1111.",
		"1....",
		"1....",
		"1....",
	},
	'G': {
		"11111",
		"1....",
		"1....",
		"1.111",
		"1...1",
		"1...1",
		"11111",
	},
	'H': {
		"1...1",
		"1...1",
		"1...1",
		"11111",
		"1...1",
		"1...1",
		"1...1",
	},
	'I': {
		"11111",
		"..1..",
		"..1..",
		"..1..",
		"..1..",
		"..1..",
		"11111",
	},
	'J': {
		"11111",
		"...1.",
		"...1.",
		"...1.",
		"...1.",
		"1..1.",
		".11..",
	},
	'K': {
		"1...1",
		"1..1.",
		"1.1..",
		"11...",
		"1.1..",
		"1..1.",
		"1...1",
	},
	'L': {
		"1....",
		"1....",
		"1....",
		"1....",
		"1....",
		"1....",
		"11111",
	},
	'M': {
		"1...1",
		"11.11",
		"1.1.1",
		"1.1.1",
		"1...1",
		"1...1",
		"1...1",
	},
	'N': {
		"1...1",
		"11..1",
		"1.1.1",
		"1..11",
		"1...1",
		"1...1",
		"1...1",
	},
	'O': {
		"11111",
		"1...1",
		"1...1",
		"1...1",
		"1...1",
		"1...1",
		"11111",
	},
	'P': {
		"1111.",
		"1...1",
		"1...1",
		"1111.",
		"1....",
		"1....",
		"1....",
	},
	'Q': {
		"11111",
		"1...1",
		"1...1",
		"1...1",
		"1.1.1",
		"1..1.",
		"11..1",
	},
	'R': {
		"1111.",
		"1...1",
		"1...1",
		"1111.",
		"1.1..",
		"1..1.",
		"1...1",
	},
	'S': {
		"11111",
		"1....",
		"1....",
		"11111",
		"....1",
		"....1",
		"11111",
	},
	'T': {
		"11111",
		"..1..",
		"..1..",
		"..1..",
		"..1..",
		"..1..",
		"..1..",
	},
	'U': {
		"1...1",
		"1...1",
		"1...1",
		"1...1",
		"1...1",
		"1...1",
		"11111",
	},
	'V': {
		"1...1",
		"1...1",
		"1...1",
		"1...1",
		"1...1",
		".1.1.",
		"..1..",
	},
	'W': {
		"1...1",
		"1...1",
		"1...1",
		"1.1.1",
		"1.1.1",
		"1.1.1",
		"1...1",
	},
	'X': {
		"1...1",
		"1...1",
		".1.1.",
		"..1..",
		".1.1.",
		"1...1",
		"1...1",
	},
	'Y': {
		"1...1",
		"1...1",
		".1.1.",
		"..1..",
		"..1..",
		"..1..",
		"..1..",
	},
	'Z': {
		"11111",
		"....1",
		"...1.",
		"..1..",
		".1...",
		"1....",
		"11111",
	},
	'0': {
		"11111",
		"1...1",
		"1..11",
		"1.1.1",
		"11..1",
		"1...1",
		"11111",
	},
	'1': {
		"..1..",
		".11..",
		"..1..",
		"..1..",
		"..1..",
		"..1..",
		"11111",
	},
	'2': {
		"11111",
		"....1",
		"....1",
		"11111",
		"1....",
		"1....",
		"11111",
	},
	'3': {
		"11111",
		"....1",
		"....1",
		"11111",
		"....1",
		"....1",
		"11111",
	},
	'4': {
		"1...1",
		"1...1",
		"1...1",
		"11111",
		"....1",
		"....1",
		"....1",
	},
	'5': {
		"11111",
		"1....",
		"1....",
		"11111",
		"....1",
		"....1",
		"11111",
	},
	'6': {
		"11111",
		"1....",
		"1....",
		"11111",
		"1...1",
		"1...1",
		"11111",
	},
	'7': {
		"11111",
		"....1",
		"...1.",
		"..1..",
		"..1..",
		"..1..",
		"..1..",
	},
	'8': {
		"11111",
		"1...1",
		"1...1",
		"11111",
		"1...1",
		"1...1",
		"11111",
	},
	'9': {
		"11111",
		"1...1",
		"1...1",
		"11111",
		"....1",
		"....1",
		"11111",
	},
	// space advances the cursor without ink
	' ': {
		".....",
		".....",
		".....",
		".....",
		".....",
		".....",
		".....",
	},
}
