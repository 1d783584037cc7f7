package keyboard

// Preset layouts used as optimization seeds and scoring baselines. The
// Initial layout is also the fixed reference for corpus preprocessing: it
// decides which characters count as typable, nothing more.

var Initial = NewLayout(
	Layer{
		'q', 'u', 'p', 'g', '/' /**/, 'z', 'l', 'w', 'y', '\'', '=',
		'a', 'r', 'n', 's', 'd' /**/, 'f', 'h', 't', 'i', 'o', '-',
		'j', 'k', 'v', 'c', ';' /**/, 'x', 'm', 'b', ',', '.',
		'e',
	},
	Layer{
		'Q', 'U', 'P', 'G', '?' /**/, 'Z', 'L', 'W', 'Y', '"', '+',
		'A', 'R', 'N', 'S', 'D' /**/, 'F', 'H', 'T', 'I', 'O', '_',
		'J', 'K', 'V', 'C', ':' /**/, 'X', 'M', 'B', '<', '>',
		'E',
	})

var QWERTY = NewLayout(
	Layer{
		'q', 'w', 'e', 'r', 't' /**/, 'y', 'u', 'i', 'o', 'p', '-',
		'a', 's', 'd', 'f', 'g' /**/, 'h', 'j', 'k', 'l', ';', '\'',
		'z', 'x', 'c', 'v', 'b' /**/, 'n', 'm', ',', '.', '/',
		Unused,
	},
	Layer{
		'Q', 'W', 'E', 'R', 'T' /**/, 'Y', 'U', 'I', 'O', 'P', '_',
		'A', 'S', 'D', 'F', 'G' /**/, 'H', 'J', 'K', 'L', ':', '"',
		'Z', 'X', 'C', 'V', 'B' /**/, 'N', 'M', '<', '>', '?',
		Unused,
	})

var Dvorak = NewLayout(
	Layer{
		'\'', ',', '.', 'p', 'y' /**/, 'f', 'g', 'c', 'r', 'l', '/',
		'a', 'o', 'e', 'u', 'i' /**/, 'd', 'h', 't', 'n', 's', '-',
		';', 'q', 'j', 'k', 'x' /**/, 'b', 'm', 'w', 'v', 'z',
		Unused,
	},
	Layer{
		'"', ',', '.', 'P', 'Y' /**/, 'F', 'G', 'C', 'R', 'L', '?',
		'A', 'O', 'E', 'U', 'I' /**/, 'D', 'H', 'T', 'N', 'S', '_',
		':', 'Q', 'J', 'K', 'X' /**/, 'B', 'M', 'W', 'V', 'Z',
		Unused,
	})

var Colemak = NewLayout(
	Layer{
		'q', 'w', 'f', 'p', 'g' /**/, 'j', 'l', 'u', 'y', ';', '-',
		'a', 'r', 's', 't', 'd' /**/, 'h', 'n', 'e', 'i', 'o', '\'',
		'z', 'x', 'c', 'v', 'b' /**/, 'k', 'm', ',', '.', '/',
		Unused,
	},
	Layer{
		'Q', 'W', 'F', 'P', 'G' /**/, 'J', 'L', 'U', 'Y', ':', '_',
		'A', 'R', 'S', 'T', 'D' /**/, 'H', 'N', 'E', 'I', 'O', '"',
		'Z', 'X', 'C', 'V', 'B' /**/, 'K', 'M', '<', '>', '?',
		Unused,
	})

var QGMLWY = NewLayout(
	Layer{
		'q', 'g', 'm', 'l', 'w' /**/, 'y', 'f', 'u', 'b', ';', '-',
		'd', 's', 't', 'n', 'r' /**/, 'i', 'a', 'e', 'o', 'h', '\'',
		'z', 'x', 'c', 'v', 'j' /**/, 'k', 'p', ',', '.', '/',
		Unused,
	},
	Layer{
		'Q', 'G', 'M', 'L', 'W' /**/, 'Y', 'F', 'U', 'B', ':', '_',
		'D', 'S', 'T', 'N', 'R' /**/, 'I', 'A', 'E', 'O', 'H', '"',
		'Z', 'X', 'C', 'V', 'J' /**/, 'K', 'P', '<', '>', '?',
		Unused,
	})

var Workman = NewLayout(
	Layer{
		'q', 'd', 'r', 'w', 'b' /**/, 'j', 'f', 'u', 'p', ';', '-',
		'a', 's', 'h', 't', 'g' /**/, 'y', 'n', 'e', 'o', 'i', '\'',
		'z', 'x', 'm', 'c', 'v' /**/, 'k', 'l', ',', '.', '/',
		Unused,
	},
	Layer{
		'Q', 'D', 'R', 'W', 'B' /**/, 'J', 'F', 'U', 'P', ':', '_',
		'A', 'S', 'H', 'T', 'G' /**/, 'Y', 'N', 'E', 'O', 'I', '"',
		'Z', 'X', 'M', 'C', 'V' /**/, 'K', 'L', '<', '>', '?',
		Unused,
	})

var Maltron = NewLayout(
	Layer{
		'q', 'p', 'y', 'c', 'b' /**/, 'v', 'm', 'u', 'z', 'l', '=',
		'a', 'n', 'i', 's', 'f' /**/, 'd', 't', 'h', 'o', 'r', '\'',
		',', '.', 'j', 'g', '/' /**/, ';', 'w', 'k', '-', 'x',
		'e',
	},
	Layer{
		'Q', 'P', 'Y', 'C', 'B' /**/, 'V', 'M', 'U', 'Z', 'L', '+',
		'A', 'N', 'I', 'S', 'F' /**/, 'D', 'T', 'H', 'O', 'R', '"',
		'<', '>', 'J', 'G', '?' /**/, ':', 'W', 'K', '_', 'X',
		'E',
	})

var MTGAP = NewLayout(
	Layer{
		'y', 'p', 'o', 'u', '-' /**/, 'b', 'd', 'l', 'c', 'k', 'j',
		'i', 'n', 'e', 'a', ',' /**/, 'm', 'h', 't', 's', 'r', 'v',
		'(', '"', '\'', '.', '_' /**/, ')', 'f', 'w', 'g', 'x',
		'z',
	},
	Layer{
		'Y', 'P', 'O', 'U', ':' /**/, 'B', 'D', 'L', 'C', 'K', 'J',
		'I', 'N', 'E', 'A', ';' /**/, 'M', 'H', 'T', 'S', 'R', 'V',
		'&', '?', '*', '=', '<' /**/, '>', 'F', 'W', 'G', 'X',
		'Z',
	})

var Capewell = NewLayout(
	Layer{
		'.', 'y', 'w', 'd', 'f' /**/, 'j', 'p', 'l', 'u', 'q', '/',
		'a', 'e', 'r', 's', 'g' /**/, 'b', 't', 'n', 'i', 'o', '-',
		'x', 'z', 'c', 'v', ';' /**/, 'k', 'w', 'h', ',', '\'',
		Unused,
	},
	Layer{
		'>', 'Y', 'W', 'D', 'F' /**/, 'J', 'P', 'L', 'U', 'Q', '?',
		'A', 'E', 'R', 'S', 'G' /**/, 'B', 'T', 'N', 'I', 'O', '_',
		'X', 'Z', 'C', 'V', ':' /**/, 'K', 'W', 'H', '<', '"',
		Unused,
	})

var Arensito = NewLayout(
	Layer{
		'q', 'l', ',', 'p', Unused /**/, Unused, 'f', 'u', 'd', 'k', Unused,
		'a', 'r', 'e', 'n', 'b' /**/, 'g', 's', 'i', 't', 'o', Unused,
		'z', 'w', '.', 'h', 'j' /**/, 'v', 'c', 'y', 'm', 'x',
		Unused,
	},
	Layer{
		'Q', 'L', '<', 'P', Unused /**/, Unused, 'F', 'U', 'D', 'K', Unused,
		'A', 'R', 'E', 'N', 'B' /**/, 'G', 'S', 'I', 'T', 'O', Unused,
		'Z', 'W', '>', 'H', 'J' /**/, 'V', 'C', 'Y', 'M', 'X',
		Unused,
	})

// Preset pairs a well-known layout with its display name.
type Preset struct {
	Name   string
	Layout *Layout
}

// Presets returns the baseline layouts in ranking order.
func Presets() []Preset {
	return []Preset{
		{"QWERTY", QWERTY},
		{"DVORAK", Dvorak},
		{"COLEMAK", Colemak},
		{"QGMLWY", QGMLWY},
		{"WORKMAN", Workman},
		{"MALTRON", Maltron},
		{"MTGAP", MTGAP},
		{"CAPEWELL", Capewell},
		{"ARENSITO", Arensito},
		{"INITIAL", Initial},
	}
}
