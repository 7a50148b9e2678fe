package keymap

// Generated tables; the From column must stay sorted.

// Italian is the "it" keyboard mapping.
var Italian = &Map{
	Name: "it",
	Pairs: []Pair{
		{0x1e, 0x36}, // 0x1e => '6'
		{0x26, 0x2f}, // '&' => '/'
		{0x28, 0x29}, // '(' => ')'
		{0x29, 0x3d}, // ')' => '='
		{0x2a, 0x28}, // '*' => '('
		{0x2b, 0x5e}, // '+' => '^'
		{0x2d, 0x27}, // '-' => '\''
		{0x2f, 0x2d}, // '/' => '-'
		{0x3c, 0x3b}, // '<' => ';'
		{0x3e, 0x3a}, // '>' => ':'
		{0x3f, 0x5f}, // '?' => '_'
		{0x40, 0x22}, // '@' => '"'
		{0x5d, 0x2b}, // ']' => '+'
		{0x5e, 0x26}, // '^' => '&'
		{0x5f, 0x3f}, // '_' => '?'
		{0x60, 0x5c}, // '`' => '\\'
		{0x7d, 0x2a}, // '}' => '*'
		{0x7e, 0x7c}, // '~' => '|'
	},
}

// NoLatin1 is the "no-latin1" keyboard mapping.
var NoLatin1 = &Map{
	Name: "no-latin1",
	Pairs: []Pair{
		{0x1d, 0x1e}, // 0x1d => 0x1e
		{0x26, 0x2f}, // '&' => '/'
		{0x28, 0x29}, // '(' => ')'
		{0x29, 0x3d}, // ')' => '='
		{0x2a, 0x28}, // '*' => '('
		{0x2b, 0x60}, // '+' => '`'
		{0x2d, 0x2b}, // '-' => '+'
		{0x2f, 0x2d}, // '/' => '-'
		{0x3c, 0x3b}, // '<' => ';'
		{0x3d, 0x5c}, // '=' => '\\'
		{0x3e, 0x3a}, // '>' => ':'
		{0x3f, 0x5f}, // '?' => '_'
		{0x40, 0x22}, // '@' => '"'
		{0x5c, 0x27}, // '\\' => '\''
		{0x5d, 0x7e}, // ']' => '~'
		{0x5e, 0x26}, // '^' => '&'
		{0x5f, 0x3f}, // '_' => '?'
		{0x60, 0x7c}, // '`' => '|'
		{0x7c, 0x2a}, // '|' => '*'
		{0x7d, 0x5e}, // '}' => '^'
	},
}
