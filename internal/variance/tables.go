package variance

// mild holds homoglyph substitutions used at or below 50% variance.
var mild = map[rune][]string{
	'a': {"à", "á", "â", "ä", "å"},
	'c': {"ç"},
	'd': {"đ"},
	'e': {"è", "é", "ê", "ë"},
	'g': {"ğ"},
	'i': {"ì", "í", "î", "ï"},
	'l': {"ł"},
	'n': {"ñ"},
	'o': {"ò", "ó", "ô", "ö", "ø"},
	's': {"š"},
	'u': {"ù", "ú", "û", "ü"},
	'y': {"ý", "ÿ"},
	'z': {"ž"},
}

// heavy holds leet and lookalike substitutions used above 50% variance.
var heavy = map[rune][]string{
	'a': {"4", "@", "Λ", "α"},
	'b': {"8", "ß", "ɓ"},
	'c': {"(", "¢", "©"},
	'd': {"Ð", "∂"},
	'e': {"3", "€", "ε"},
	'f': {"ƒ"},
	'g': {"6", "ɠ"},
	'h': {"#", "ħ"},
	'i': {"1", "!", "¡", "ι"},
	'j': {"ʝ", "ǰ"},
	'k': {"κ", "ƙ"},
	'l': {"|", "£"},
	'm': {"₥", "м"},
	'n': {"η", "и", "₦"},
	'o': {"0", "θ", "◎"},
	'p': {"ρ", "þ"},
	'q': {"9", "ǫ"},
	'r': {"я", "ʁ"},
	's': {"5", "$", "§"},
	't': {"7", "†", "+"},
	'u': {"µ", "υ"},
	'v': {"ν", "√"},
	'w': {"ω", "ш"},
	'x': {"×", "χ"},
	'y': {"¥", "γ"},
	'z': {"2", "ʐ"},
}

// spacers are invisible or near-invisible separators.
var spacers = []string{
	"\u200b", // zero width space
	"\u2009", // thin space
	"\u200a", // hair space
	"\u200c", // zero width non-joiner
}

// glitches are combining marks appended after characters at high variance.
var glitches = []string{
	"\u0300", "\u0301", "\u0302", "\u0303", "\u0308", "\u030a",
	"\u0334", "\u0335", "\u0336", "\u0337", "\u0338",
	"\u0352", "\u0353", "\u035b",
}
