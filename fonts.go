package poster

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// FontStyle is the face variant requested by a label.
type FontStyle int

// Font styles.
const (
	StyleRegular FontStyle = iota
	StyleBold
	StyleItalic

	numStyles
)

func (s FontStyle) String() string {
	switch s {
	case StyleRegular:
		return "regular"
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	default:
		return "unknown"
	}
}

// fontFamily lists candidate file names for each style of one family.
// Windows, macOS and Linux distributions ship the same families under
// different names, hence several candidates per style.
type fontFamily struct {
	name  string
	files [numStyles][]string
}

// fallbackFamilies is searched in order; every family that is found joins
// the per-glyph fallback chain. The first three reproduce the classic
// "Arial Unicode MS, SimHei, DejaVu Sans" list, the rest are common
// families with full Vietnamese coverage.
var fallbackFamilies = []fontFamily{
	{name: "Arial Unicode MS", files: [numStyles][]string{
		{"arial unicode.ttf", "arialuni.ttf"},
	}},
	{name: "SimHei", files: [numStyles][]string{
		{"simhei.ttf"},
	}},
	{name: "DejaVu Sans", files: [numStyles][]string{
		{"dejavusans.ttf"},
		{"dejavusans-bold.ttf"},
		{"dejavusans-oblique.ttf"},
	}},
	{name: "Liberation Sans", files: [numStyles][]string{
		{"liberationsans-regular.ttf"},
		{"liberationsans-bold.ttf"},
		{"liberationsans-italic.ttf"},
	}},
	{name: "Arial", files: [numStyles][]string{
		{"arial.ttf"},
		{"arialbd.ttf", "arial bold.ttf"},
		{"ariali.ttf", "arial italic.ttf"},
	}},
	{name: "Noto Sans", files: [numStyles][]string{
		{"notosans-regular.ttf"},
		{"notosans-bold.ttf"},
		{"notosans-italic.ttf"},
	}},
}

// emojiFiles are appended to every chain for pictographs such as 📊 and 📍.
var emojiFiles = []string{"notocoloremoji.ttf", "seguiemj.ttf"}

// embeddedFonts is the last resort. The Go fonts have no precomposed
// Vietnamese letters, so output degrades but never fails.
var embeddedFonts = [numStyles][]byte{
	StyleRegular: goregular.TTF,
	StyleBold:    gobold.TTF,
	StyleItalic:  goitalic.TTF,
}

// maxFontScanDepth limits recursive directory traversal when indexing fonts.
const maxFontScanDepth = 3

// faceKey identifies a cached face.
type faceKey struct {
	style FontStyle
	px    float64
}

// FontSet resolves faces with per-glyph fallback across the families
// found on the system. A FontSet is not safe for concurrent use.
type FontSet struct {
	chains   [numStyles][]*text.FontSource
	owned    []*text.FontSource
	families []string
	faces    map[faceKey]text.Face
}

// NewFontSet indexes dirs (the OS font directories when empty) and builds
// the fallback chain for each style. Files in explicit are placed first
// and must load.
func NewFontSet(dirs []string, explicit map[FontStyle]string) (*FontSet, error) {
	if len(dirs) == 0 {
		dirs = systemFontDirs()
	}
	fs := &FontSet{faces: make(map[faceKey]text.Face)}
	byPath := make(map[string]*text.FontSource)

	load := func(path string) (*text.FontSource, error) {
		if src, ok := byPath[path]; ok {
			return src, nil
		}
		src, err := text.NewFontSourceFromFile(path)
		if err != nil {
			return nil, err
		}
		byPath[path] = src
		fs.owned = append(fs.owned, src)
		return src, nil
	}

	for style := StyleRegular; style < numStyles; style++ {
		path, ok := explicit[style]
		if !ok {
			continue
		}
		src, err := load(path)
		if err != nil {
			_ = fs.Close()
			return nil, &FontLoadError{Path: path, Err: err}
		}
		fs.chains[style] = append(fs.chains[style], src)
	}

	index := indexFontDirs(dirs)
	for _, fam := range fallbackFamilies {
		regular := index.find(fam.files[StyleRegular])
		if regular == "" {
			continue
		}
		added := false
		for style := StyleRegular; style < numStyles; style++ {
			path := index.find(fam.files[style])
			if path == "" {
				path = regular
			}
			src, err := load(path)
			if err != nil {
				Logger().Debug("poster: skip font", "family", fam.name, "path", path, "err", err)
				continue
			}
			fs.chains[style] = append(fs.chains[style], src)
			added = true
		}
		if added {
			fs.families = append(fs.families, fam.name)
		}
	}

	if path := index.find(emojiFiles); path != "" {
		if src, err := load(path); err == nil {
			for style := StyleRegular; style < numStyles; style++ {
				fs.chains[style] = append(fs.chains[style], src)
			}
		} else {
			Logger().Debug("poster: skip emoji font", "path", path, "err", err)
		}
	}

	for style := StyleRegular; style < numStyles; style++ {
		src, err := text.NewFontSource(embeddedFonts[style])
		if err != nil {
			_ = fs.Close()
			return nil, err
		}
		fs.owned = append(fs.owned, src)
		fs.chains[style] = append(fs.chains[style], src)
	}

	if len(fs.families) == 0 && len(explicit) == 0 {
		Logger().Warn("poster: no Vietnamese-capable system font found, using embedded Go fonts",
			"dirs", dirs)
	} else {
		Logger().Debug("poster: fonts resolved", "families", fs.families)
	}
	return fs, nil
}

// Families returns the system families that joined the fallback chain.
func (fs *FontSet) Families() []string {
	return append([]string(nil), fs.families...)
}

// Face returns a face of the given style at px pixels, falling back
// glyph by glyph through the chain.
func (fs *FontSet) Face(style FontStyle, px float64) (text.Face, error) {
	if style < 0 || style >= numStyles {
		style = StyleRegular
	}
	key := faceKey{style: style, px: px}
	if f, ok := fs.faces[key]; ok {
		return f, nil
	}
	chain := fs.chains[style]
	if len(chain) == 0 {
		return nil, errors.New("poster: empty font chain")
	}
	faces := make([]text.Face, len(chain))
	for i, src := range chain {
		faces[i] = src.Face(px, text.WithLanguage("vi"))
	}
	var face text.Face = faces[0]
	if len(faces) > 1 {
		mf, err := text.NewMultiFace(faces...)
		if err != nil {
			return nil, err
		}
		face = mf
	}
	fs.faces[key] = face
	return face, nil
}

// MissingGlyphs returns the runes of s, in order of first appearance,
// that no face in the style's chain can render. Whitespace is ignored.
func (fs *FontSet) MissingGlyphs(style FontStyle, s string) []rune {
	face, err := fs.Face(style, 12)
	if err != nil {
		return []rune(s)
	}
	var missing []rune
	seen := make(map[rune]bool)
	for _, r := range s {
		if seen[r] || r == ' ' {
			continue
		}
		seen[r] = true
		if !face.HasGlyph(r) {
			missing = append(missing, r)
		}
	}
	return missing
}

// Close releases every font source. Close is idempotent.
func (fs *FontSet) Close() error {
	var errs []error
	for _, src := range fs.owned {
		if err := src.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	fs.owned = nil
	fs.chains = [numStyles][]*text.FontSource{}
	clear(fs.faces)
	return errors.Join(errs...)
}

// fontIndex maps lower-cased font file names to their paths.
type fontIndex map[string]string

func (idx fontIndex) find(names []string) string {
	for _, n := range names {
		if p, ok := idx[n]; ok {
			return p
		}
	}
	return ""
}

func indexFontDirs(dirs []string) fontIndex {
	idx := make(fontIndex)
	for _, dir := range dirs {
		idx.scan(dir, 0)
	}
	return idx
}

func (idx fontIndex) scan(dir string, depth int) {
	if depth > maxFontScanDepth {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			idx.scan(filepath.Join(dir, entry.Name()), depth+1)
			continue
		}
		lower := strings.ToLower(entry.Name())
		if !strings.HasSuffix(lower, ".ttf") && !strings.HasSuffix(lower, ".otf") {
			continue
		}
		if _, ok := idx[lower]; !ok {
			idx[lower] = filepath.Join(dir, entry.Name())
		}
	}
}

func systemFontDirs() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs := []string{filepath.Join(windir, "Fonts")}
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
		return dirs
	case "darwin":
		dirs := []string{
			"/System/Library/Fonts",
			"/Library/Fonts",
		}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return dirs
	default:
		dirs := []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
		}
		if home != "" {
			dirs = append(dirs,
				filepath.Join(home, ".local", "share", "fonts"),
				filepath.Join(home, ".fonts"),
			)
		}
		return dirs
	}
}
