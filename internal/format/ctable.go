package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/litescript/sidus/internal/catalog"
)

// WriteCTable writes the catalog as a single-header C library: a Star struct
// declaration, a star-count enum, and a data table guarded by
// SIDUS_IMPLEMENTATION so the array lands in exactly one translation unit.
// The identifier prefix is derived from the input file name.
func WriteCTable(w io.Writer, stars []catalog.Star, epoch catalog.Epoch, inputPath string, opts Options) error {
	name := identifier(inputPath)

	fmt.Fprintf(w, "/*\n"+
		" * Auto-generated from catalog %s by the sidus program\n"+
		" *\n"+
		" * Do this:\n"+
		" *   #define SIDUS_IMPLEMENTATION\n"+
		" * before you include this file in *one* C or C++ file to create the implementation\n"+
		" *\n"+
		" */\n\n",
		inputPath)
	fmt.Fprintf(w, "#ifndef %s_h\n#define %s_h\n\n", name, name)
	fmt.Fprint(w, "#ifdef __cplusplus\nextern \"C\" {\n#endif\n\n")

	fmt.Fprint(w, "struct Star {\n")
	ctype := "double"
	if opts.SinglePrecision {
		ctype = "float"
	}
	fmt.Fprintf(w, "\t%s rightAscension;\t/* radians, %s */\n", ctype, epoch)
	fmt.Fprintf(w, "\t%s declination;\t/* radians, %s */\n", ctype, epoch)
	fmt.Fprintf(w, "\t%s magnitude;\n", ctype)
	if opts.Names {
		fmt.Fprint(w, "\tconst char *name;\n")
	}
	if opts.SpectralTypes {
		fmt.Fprint(w, "\tconst char *type;\n")
	}
	fmt.Fprintf(w, "};\n\n"+
		"enum { %s_num_stars = %d };\n\n"+
		"#ifndef SIDUS_IMPLEMENTATION\n"+
		"extern const struct Star * %s_stars;\n"+
		"#else\n"+
		"const struct Star %s_stars[%d] = {",
		name, len(stars), name, name, len(stars))

	for i, star := range stars {
		if i != 0 {
			fmt.Fprint(w, ", ")
		}
		if opts.SinglePrecision {
			fmt.Fprintf(w, "\n\t{ % .9f, % .9f, % .9f",
				star.RightAscension, star.Declination, float64(star.Magnitude))
		} else {
			fmt.Fprintf(w, "\n\t{ % .17f, % .17f, % .17f",
				star.RightAscension, star.Declination, float64(star.Magnitude))
		}
		if opts.Names {
			fmt.Fprintf(w, ", %q", star.Name)
		}
		if opts.SpectralTypes {
			fmt.Fprintf(w, ", %q", star.SpectralType)
		}
		fmt.Fprint(w, " }")
	}

	_, err := fmt.Fprint(w, "\n};\n\n"+
		"#endif\n\n"+
		"#ifdef __cplusplus\n}\n#endif\n\n"+
		"#endif\n")
	return err
}

// identifier turns an arbitrary file path into a legal lowercase C
// identifier: the first character must be a letter (or is replaced by 'x'),
// the rest alphanumeric or underscore.
func identifier(path string) string {
	var b strings.Builder
	for i := 0; i < len(path); i++ {
		c := lower(path[i])
		switch {
		case i == 0 && isAlpha(c):
			b.WriteByte(c)
		case i == 0:
			b.WriteByte('x')
		case isAlpha(c) || isDigit(c):
			b.WriteByte(c)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func isAlpha(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
