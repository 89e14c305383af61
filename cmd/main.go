package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/labi-le/xbind/internal/metadata"
	"github.com/labi-le/xbind/pkg/keysym"
	"github.com/labi-le/xbind/pkg/xdef"
	"github.com/labi-le/xbind/pkg/xevent"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
)

var (
	helpMsg = `xbind-inspect -
Offline view of the XEvent layouts and the keysym table

Usage:
	xbind-inspect [flags]

Flags:
`
	abiName     string
	layout      string
	symArg      string
	runeArg     string
	decodeArg   string
	debug       bool
	showVersion bool
	showHelp    bool
)

func init() {
	flag.StringVar(&abiName, "abi", "native", "ABI for layouts: native, lp64, ilp32, lp64-be, ilp32-be")
	flag.StringVarP(&layout, "layout", "l", "", "Print the layout of an event shape or type, or all")
	flag.StringVarP(&symArg, "keysym", "k", "", "Describe a keysym by name or 0x code")
	flag.StringVarP(&runeArg, "rune", "r", "", "Find the keysym for a character")
	flag.StringVar(&decodeArg, "decode", "", "Decode a hex-encoded XEvent buffer")
	flag.BoolVar(&debug, "debug", false, "Show debug logs")
	flag.BoolVarP(&showVersion, "version", "v", false, "Show version")
	flag.BoolVarP(&showHelp, "help", "h", false, "Show help")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpMsg)
		flag.PrintDefaults()
	}

	flag.Parse()

	initLogger(debug)
}

func main() {
	if showVersion {
		log.Info().EmbedObject(metadata.Build{}).Send()
		return
	}

	if showHelp || flag.NFlag() == 0 {
		flag.Usage()
		return
	}

	codec, err := xevent.NewCodec(parseABI(abiName))
	if err != nil {
		log.Fatal().Err(err).Str("abi", abiName).Msg("bad abi")
	}
	log.Debug().Stringer("abi", codec.ABI()).Int("event_size", codec.EventSize()).Send()

	if layout != "" {
		printLayouts(codec, layout)
	}
	if symArg != "" {
		printKeysym(symArg)
	}
	if runeArg != "" {
		r, size := utf8.DecodeRuneInString(runeArg)
		if r == utf8.RuneError || size != len(runeArg) {
			log.Fatal().Str("rune", runeArg).Msg("expected exactly one character")
		}
		printKeysym(fmt.Sprintf("%#x", uint32(keysym.FromRune(r))))
	}
	if decodeArg != "" {
		printDecoded(codec, decodeArg)
	}
}

func parseABI(name string) xevent.ABI {
	switch strings.ToLower(name) {
	case "lp64":
		return xevent.LP64
	case "ilp32":
		return xevent.ILP32
	case "lp64-be":
		return xevent.ABI{WordSize: 8, Order: binary.BigEndian}
	case "ilp32-be":
		return xevent.ABI{WordSize: 4, Order: binary.BigEndian}
	case "native", "":
		return xevent.Native
	}
	log.Fatal().Str("abi", name).Msg("unknown abi")
	return xevent.ABI{}
}

func printLayouts(codec xevent.Codec, which string) {
	var layouts []xevent.Layout
	switch {
	case strings.EqualFold(which, "all"):
		layouts = codec.Layouts()
	default:
		l, ok := codec.LayoutByShape(which)
		if !ok {
			t, err := xdef.ParseEventType(which)
			if err != nil {
				log.Fatal().Str("layout", which).Msg("no such shape or event type")
			}
			l, _ = codec.Layout(t)
		}
		layouts = append(layouts, l)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, l := range layouts {
		types := make([]string, len(l.Types))
		for i, t := range l.Types {
			types[i] = t.String()
		}
		fmt.Fprintf(w, "%s\t(%s)\tsize %d\t%s\n", l.Shape, strings.Join(types, ", "), l.Size, codec.ABI())
		fmt.Fprintln(w, "  member\toffset\twidth\tkind")
		for _, f := range l.Fields {
			fmt.Fprintf(w, "  %s\t%d\t%d\t%s\n", f.Name, f.Offset, f.Width, f.Kind)
		}
		fmt.Fprintln(w)
	}
	_ = w.Flush()
}

func printKeysym(arg string) {
	sym, ok := keysym.FromName(arg)
	if !ok {
		fmt.Printf("unknown keysym %q\n", arg)
		if s := keysym.Suggest(arg, 3); len(s) > 0 {
			fmt.Printf("did you mean: %s\n", strings.Join(s, ", "))
		}
		return
	}

	name, _ := keysym.Name(sym)
	fmt.Printf("keysym  %#x\nname    %s\n", uint32(sym), name)
	if r, ok := keysym.Lookup(sym); ok {
		fmt.Printf("char    %q U+%04X\n", r, r)
	} else {
		fmt.Println("char    none")
	}
}

func printDecoded(codec xevent.Codec, arg string) {
	buf, err := hex.DecodeString(strings.Join(strings.Fields(arg), ""))
	if err != nil {
		log.Fatal().Err(err).Msg("decode hex")
	}
	ev, err := codec.Decode(buf)
	if err != nil {
		log.Fatal().Err(err).Int("length", len(buf)).Msg("decode event")
	}
	fmt.Println(xevent.Format(ev, nil))
}

func initLogger(debug bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if debug {
		log.Logger = log.With().Caller().Logger()
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		return
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
