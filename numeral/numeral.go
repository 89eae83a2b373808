// Package numeral spells out cardinal numbers for the legal-document
// output. Only Brazilian Portuguese is implemented; the constructor is
// keyed by language tag so the narrator stays locale-agnostic.
package numeral

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
)

// Converter turns a number into its localized cardinal phrase.
type Converter interface {
	ToWords(n float64) (string, error)
}

// NewConverter returns the converter for the given locale, or an error
// when the locale is unsupported.
func NewConverter(tag language.Tag) (Converter, error) {
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return nil, fmt.Errorf("numeral: unsupported locale %s", tag)
	}
	switch supported[index] {
	case language.BrazilianPortuguese:
		return ptBR{}, nil
	}
	return nil, fmt.Errorf("numeral: unsupported locale %s", tag)
}

var supported = []language.Tag{language.BrazilianPortuguese}

var matcher = language.NewMatcher(supported)

// maxMagnitude bounds the integer part to what the scale table covers
// (through trilhões). Survey areas are nowhere near it.
const maxMagnitude = 1e15

type ptBR struct{}

var (
	ptUnits    = []string{"", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove"}
	ptTeens    = []string{"dez", "onze", "doze", "treze", "catorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove"}
	ptTens     = []string{"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa"}
	ptHundreds = []string{"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos", "seiscentos", "setecentos", "oitocentos", "novecentos"}

	ptDigits = []string{"zero", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove"}

	// scale index -> singular/plural. Index 1 (mil) is invariant.
	ptScales = [][2]string{
		{"", ""},
		{"mil", "mil"},
		{"milhão", "milhões"},
		{"bilhão", "bilhões"},
		{"trilhão", "trilhões"},
	}
)

// ToWords spells n in Brazilian Portuguese. The fractional part, when
// present after rounding to 2 decimals, is read digit by digit after
// "vírgula", which is how areas are dictated in these documents.
func (ptBR) ToWords(n float64) (string, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "", fmt.Errorf("numeral: cannot spell %v", n)
	}

	negative := n < 0
	if negative {
		n = -n
	}
	if n >= maxMagnitude {
		return "", fmt.Errorf("numeral: %v is beyond the supported scale", n)
	}

	// Work on a fixed 2-decimal representation so 250.004999 and
	// 250.0 spell the same as their rounded forms.
	cents := int64(math.Round(n * 100))
	whole := cents / 100
	frac := cents % 100

	words := ptInteger(whole)
	if frac != 0 {
		fracDigits := fmt.Sprintf("%02d", frac)
		// A trailing zero is not read: 250.30 -> "vírgula três".
		fracDigits = strings.TrimRight(fracDigits, "0")
		parts := make([]string, 0, len(fracDigits))
		for _, d := range fracDigits {
			parts = append(parts, ptDigits[d-'0'])
		}
		words += " vírgula " + strings.Join(parts, " ")
	}

	if negative {
		words = "menos " + words
	}
	return words, nil
}

// ptInteger spells a non-negative integer below maxMagnitude.
func ptInteger(n int64) string {
	if n == 0 {
		return "zero"
	}

	// Split into base-1000 groups, least significant first.
	var groups []int64
	for n > 0 {
		groups = append(groups, n%1000)
		n /= 1000
	}

	var parts []string // most significant first
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		var piece string
		switch {
		case i == 1 && g == 1:
			piece = "mil" // never "um mil"
		case i >= 2:
			name := ptScales[i][0]
			if g > 1 {
				name = ptScales[i][1]
			}
			piece = ptHundredsGroup(g) + " " + name
		case i == 1:
			piece = ptHundredsGroup(g) + " mil"
		default:
			piece = ptHundredsGroup(g)
		}
		parts = append(parts, piece)
	}

	if len(parts) == 1 {
		return parts[0]
	}

	// "e" joins the final group when it reads as a single term
	// (below 100 or a round hundred); otherwise groups are
	// comma-separated.
	last := groups[0]
	joinedHead := strings.Join(parts[:len(parts)-1], ", ")
	if last != 0 && (last < 100 || last%100 == 0) {
		return joinedHead + " e " + parts[len(parts)-1]
	}
	if last == 0 {
		return joinedHead
	}
	return joinedHead + ", " + parts[len(parts)-1]
}

// ptHundredsGroup spells 1..999.
func ptHundredsGroup(n int64) string {
	if n == 100 {
		return "cem"
	}

	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, ptHundreds[h])
	}
	rest := n % 100
	switch {
	case rest == 0:
	case rest < 10:
		parts = append(parts, ptUnits[rest])
	case rest < 20:
		parts = append(parts, ptTeens[rest-10])
	default:
		t := ptTens[rest/10]
		if u := rest % 10; u > 0 {
			t += " e " + ptUnits[u]
		}
		parts = append(parts, t)
	}
	return strings.Join(parts, " e ")
}
