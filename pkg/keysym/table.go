package keysym

// Tables below come from <X11/keysymdef.h> and the keysym-to-UCS mapping that
// ships with xkbcommon. They are built once at load and never mutated.

var (
	toUnicode   = make(map[Sym]rune, 1024)
	fromUnicode = make(map[rune]Sym, 1024)
)

type pair struct {
	sym Sym
	r   rune
}

// Keypad and control keys that carry a character.
var controlPairs = []pair{
	{BackSpace, 0x08}, {Tab, 0x09}, {Linefeed, 0x0a}, {Clear, 0x0b},
	{Return, 0x0d}, {Escape, 0x1b}, {Delete, 0x7f},
	{KPSpace, ' '}, {KPTab, 0x09}, {KPEnter, 0x0d}, {KPEqual, '='},
	{KPMultiply, '*'}, {KPAdd, '+'}, {KPSeparator, ','}, {KPSubtract, '-'},
	{KPDecimal, '.'}, {KPDivide, '/'},
}

var latin2 = []pair{
	{0x1a1, 0x0104}, {0x1a2, 0x02d8}, {0x1a3, 0x0141}, {0x1a5, 0x013d},
	{0x1a6, 0x015a}, {0x1a9, 0x0160}, {0x1aa, 0x015e}, {0x1ab, 0x0164},
	{0x1ac, 0x0179}, {0x1ae, 0x017d}, {0x1af, 0x017b}, {0x1b1, 0x0105},
	{0x1b2, 0x02db}, {0x1b3, 0x0142}, {0x1b5, 0x013e}, {0x1b6, 0x015b},
	{0x1b7, 0x02c7}, {0x1b9, 0x0161}, {0x1ba, 0x015f}, {0x1bb, 0x0165},
	{0x1bc, 0x017a}, {0x1bd, 0x02dd}, {0x1be, 0x017e}, {0x1bf, 0x017c},
	{0x1c0, 0x0154}, {0x1c3, 0x0102}, {0x1c5, 0x0139}, {0x1c6, 0x0106},
	{0x1c8, 0x010c}, {0x1ca, 0x0118}, {0x1cc, 0x011a}, {0x1cf, 0x010e},
	{0x1d0, 0x0110}, {0x1d1, 0x0143}, {0x1d2, 0x0147}, {0x1d5, 0x0150},
	{0x1d8, 0x0158}, {0x1d9, 0x016e}, {0x1db, 0x0170}, {0x1de, 0x0162},
	{0x1e0, 0x0155}, {0x1e3, 0x0103}, {0x1e5, 0x013a}, {0x1e6, 0x0107},
	{0x1e8, 0x010d}, {0x1ea, 0x0119}, {0x1ec, 0x011b}, {0x1ef, 0x010f},
	{0x1f0, 0x0111}, {0x1f1, 0x0144}, {0x1f2, 0x0148}, {0x1f5, 0x0151},
	{0x1f8, 0x0159}, {0x1f9, 0x016f}, {0x1fb, 0x0171}, {0x1fe, 0x0163},
	{0x1ff, 0x02d9},
}

var latin3 = []pair{
	{0x2a1, 0x0126}, {0x2a6, 0x0124}, {0x2a9, 0x0130}, {0x2ab, 0x011e},
	{0x2ac, 0x0134}, {0x2b1, 0x0127}, {0x2b6, 0x0125}, {0x2b9, 0x0131},
	{0x2bb, 0x011f}, {0x2bc, 0x0135}, {0x2c5, 0x010a}, {0x2c6, 0x0108},
	{0x2d5, 0x0120}, {0x2d8, 0x011c}, {0x2dd, 0x016c}, {0x2de, 0x015c},
	{0x2e5, 0x010b}, {0x2e6, 0x0109}, {0x2f5, 0x0121}, {0x2f8, 0x011d},
	{0x2fd, 0x016d}, {0x2fe, 0x015d},
}

var latin4 = []pair{
	{0x3a2, 0x0138}, {0x3a3, 0x0156}, {0x3a5, 0x0128}, {0x3a6, 0x013b},
	{0x3aa, 0x0112}, {0x3ab, 0x0122}, {0x3ac, 0x0166}, {0x3b3, 0x0157},
	{0x3b5, 0x0129}, {0x3b6, 0x013c}, {0x3ba, 0x0113}, {0x3bb, 0x0123},
	{0x3bc, 0x0167}, {0x3bd, 0x014a}, {0x3bf, 0x014b}, {0x3c0, 0x0100},
	{0x3c7, 0x012e}, {0x3cc, 0x0116}, {0x3cf, 0x012a}, {0x3d1, 0x0145},
	{0x3d2, 0x014c}, {0x3d3, 0x0136}, {0x3d9, 0x0172}, {0x3dd, 0x0168},
	{0x3de, 0x016a}, {0x3e0, 0x0101}, {0x3e7, 0x012f}, {0x3ec, 0x0117},
	{0x3ef, 0x012b}, {0x3f1, 0x0146}, {0x3f2, 0x014d}, {0x3f3, 0x0137},
	{0x3f9, 0x0173}, {0x3fd, 0x0169}, {0x3fe, 0x016b},
}

var latin9 = []pair{
	{0x13bc, 0x0152}, {0x13bd, 0x0153}, {0x13be, 0x0178},
}

var katakana = []pair{
	{0x47e, 0x203e},
	{0x4a1, 0x3002}, {0x4a2, 0x300c}, {0x4a3, 0x300d}, {0x4a4, 0x3001},
	{0x4a5, 0x30fb}, {0x4a6, 0x30f2}, {0x4a7, 0x30a1}, {0x4a8, 0x30a3},
	{0x4a9, 0x30a5}, {0x4aa, 0x30a7}, {0x4ab, 0x30a9}, {0x4ac, 0x30e3},
	{0x4ad, 0x30e5}, {0x4ae, 0x30e7}, {0x4af, 0x30c3}, {0x4b0, 0x30fc},
	{0x4b1, 0x30a2}, {0x4b2, 0x30a4}, {0x4b3, 0x30a6}, {0x4b4, 0x30a8},
	{0x4b5, 0x30aa}, {0x4b6, 0x30ab}, {0x4b7, 0x30ad}, {0x4b8, 0x30af},
	{0x4b9, 0x30b1}, {0x4ba, 0x30b3}, {0x4bb, 0x30b5}, {0x4bc, 0x30b7},
	{0x4bd, 0x30b9}, {0x4be, 0x30bb}, {0x4bf, 0x30bd}, {0x4c0, 0x30bf},
	{0x4c1, 0x30c1}, {0x4c2, 0x30c4}, {0x4c3, 0x30c6}, {0x4c4, 0x30c8},
	{0x4c5, 0x30ca}, {0x4c6, 0x30cb}, {0x4c7, 0x30cc}, {0x4c8, 0x30cd},
	{0x4c9, 0x30ce}, {0x4ca, 0x30cf}, {0x4cb, 0x30d2}, {0x4cc, 0x30d5},
	{0x4cd, 0x30d8}, {0x4ce, 0x30db}, {0x4cf, 0x30de}, {0x4d0, 0x30df},
	{0x4d1, 0x30e0}, {0x4d2, 0x30e1}, {0x4d3, 0x30e2}, {0x4d4, 0x30e4},
	{0x4d5, 0x30e6}, {0x4d6, 0x30e8}, {0x4d7, 0x30e9}, {0x4d8, 0x30ea},
	{0x4d9, 0x30eb}, {0x4da, 0x30ec}, {0x4db, 0x30ed}, {0x4dc, 0x30ef},
	{0x4dd, 0x30f3}, {0x4de, 0x309b}, {0x4df, 0x309c},
}

var arabic = []pair{
	{0x5ac, 0x060c}, {0x5bb, 0x061b}, {0x5bf, 0x061f},
}

var cyrillic = []pair{
	{0x6a1, 0x0452}, {0x6a2, 0x0453}, {0x6a3, 0x0451}, {0x6a4, 0x0454},
	{0x6a5, 0x0455}, {0x6a6, 0x0456}, {0x6a7, 0x0457}, {0x6a8, 0x0458},
	{0x6a9, 0x0459}, {0x6aa, 0x045a}, {0x6ab, 0x045b}, {0x6ac, 0x045c},
	{0x6ad, 0x0491}, {0x6ae, 0x045e}, {0x6af, 0x045f}, {0x6b0, 0x2116},
	{0x6b1, 0x0402}, {0x6b2, 0x0403}, {0x6b3, 0x0401}, {0x6b4, 0x0404},
	{0x6b5, 0x0405}, {0x6b6, 0x0406}, {0x6b7, 0x0407}, {0x6b8, 0x0408},
	{0x6b9, 0x0409}, {0x6ba, 0x040a}, {0x6bb, 0x040b}, {0x6bc, 0x040c},
	{0x6bd, 0x0490}, {0x6be, 0x040e}, {0x6bf, 0x040f},
}

// 0x6c0-0x6df hold the lowercase alphabet in KOI8 order, 0x6e0-0x6ff the
// same letters in uppercase.
const koi8Order = "юабцдефгхийклмнопярстужвьызшэщчъ"

var greek = []pair{
	{0x7a1, 0x0386}, {0x7a2, 0x0388}, {0x7a3, 0x0389}, {0x7a4, 0x038a},
	{0x7a5, 0x03aa}, {0x7a7, 0x038c}, {0x7a8, 0x038e}, {0x7a9, 0x03ab},
	{0x7ab, 0x038f}, {0x7ae, 0x0385}, {0x7af, 0x2015}, {0x7b1, 0x03ac},
	{0x7b2, 0x03ad}, {0x7b3, 0x03ae}, {0x7b4, 0x03af}, {0x7b5, 0x03ca},
	{0x7b6, 0x0390}, {0x7b7, 0x03cc}, {0x7b8, 0x03cd}, {0x7b9, 0x03cb},
	{0x7ba, 0x03b0}, {0x7bb, 0x03ce},
	{0x7d2, 0x03a3}, {0x7f2, 0x03c3}, {0x7f3, 0x03c2},
}

var publishing = []pair{
	{0xaa1, 0x2003}, {0xaa2, 0x2002}, {0xaa3, 0x2004}, {0xaa4, 0x2005},
	{0xaa5, 0x2007}, {0xaa6, 0x2008}, {0xaa7, 0x2009}, {0xaa8, 0x200a},
	{0xaa9, 0x2014}, {0xaaa, 0x2013}, {0xaae, 0x2026}, {0xaaf, 0x2025},
	{0xab0, 0x2153}, {0xab1, 0x2154}, {0xab2, 0x2155}, {0xab3, 0x2156},
	{0xab4, 0x2157}, {0xab5, 0x2158}, {0xab6, 0x2159}, {0xab7, 0x215a},
	{0xab8, 0x2105}, {0xabb, 0x2012}, {0xac3, 0x215b}, {0xac4, 0x215c},
	{0xac5, 0x215d}, {0xac6, 0x215e}, {0xac9, 0x2122}, {0xad0, 0x2018},
	{0xad1, 0x2019}, {0xad2, 0x201c}, {0xad3, 0x201d}, {0xad4, 0x211e},
	{0xad6, 0x2032}, {0xad7, 0x2033}, {0xad9, 0x271d}, {0xaec, 0x2663},
	{0xaed, 0x2666}, {0xaee, 0x2665}, {0xaf0, 0x2720}, {0xaf1, 0x2020},
	{0xaf2, 0x2021}, {0xaf3, 0x2713}, {0xaf4, 0x2717}, {0xaf5, 0x266f},
	{0xaf6, 0x266d}, {0xaf7, 0x2642}, {0xaf8, 0x2640}, {0xaf9, 0x260e},
	{0xafa, 0x2315}, {0xafb, 0x2117}, {0xafc, 0x2038}, {0xafd, 0x201a},
	{0xafe, 0x201e},
}

var hebrew = []pair{
	{0xcdf, 0x2017},
}

var currency = []pair{
	{0x20a0, 0x20a0}, {0x20a1, 0x20a1}, {0x20a2, 0x20a2}, {0x20a3, 0x20a3},
	{0x20a4, 0x20a4}, {0x20a5, 0x20a5}, {0x20a6, 0x20a6}, {0x20a7, 0x20a7},
	{0x20a8, 0x20a8}, {0x20a9, 0x20a9}, {0x20aa, 0x20aa}, {0x20ab, 0x20ab},
	{EuroSign, 0x20ac},
}

// span maps a contiguous keysym range onto a contiguous Unicode range.
type span struct {
	first, last Sym
	base        rune
}

var spans = []span{
	{KP0, KP9, '0'},
	{0x5c1, 0x5da, 0x0621}, // Arabic letters
	{0x5e0, 0x5f2, 0x0640},
	{0x7c1, 0x7d1, 0x0391}, // Greek capitals up to RHO
	{0x7d4, 0x7d9, 0x03a4}, // TAU..OMEGA
	{0x7e1, 0x7f1, 0x03b1}, // alpha..rho
	{0x7f4, 0x7f9, 0x03c4}, // tau..omega
	{0xce0, 0xcfa, 0x05d0}, // Hebrew letters
	{0xda1, 0xdda, 0x0e01}, // Thai consonants and vowels
	{0xddf, 0xded, 0x0e3f},
	{0xdf0, 0xdf9, 0x0e50}, // Thai digits
}

func init() {
	// Primary keys go first so FromRune prefers them over keypad aliases.
	for _, group := range [][]pair{
		controlPairs, latin2, latin3, latin4, latin9, katakana, arabic,
		cyrillic, greek, publishing, hebrew, currency,
	} {
		for _, p := range group {
			addPair(p.sym, p.r)
		}
	}
	for _, s := range spans {
		for code := s.first; code <= s.last; code++ {
			addPair(code, s.base+rune(code-s.first))
		}
	}
	i := 0
	for _, lower := range koi8Order {
		addPair(0x6c0+Sym(i), lower)
		addPair(0x6e0+Sym(i), lower-0x20)
		i++
	}
}

func addPair(code Sym, r rune) {
	toUnicode[code] = r
	if _, ok := fromUnicode[r]; !ok {
		fromUnicode[r] = code
	}
}
