package iso

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/robotomize/denom/label"
	"golang.org/x/net/html/charset"
)

var errDecodeToken = errors.New("decoding of the markup failed")

// Registry is the published ISO 4217 list of currencies in use
type Registry struct {
	Published string
	Entries   []Entry
}

// Entry is one country/currency row of the list. Rows of territories without a universal currency
// have an empty Code
type Entry struct {
	Country    string
	Name       string
	Code       string
	Number     string
	MinorUnits string
	Fund       bool
}

// Codes returns the distinct currency symbols of the registry in lexicographic order.
// Fund codes (e.g. USN, CLF) are skipped unless withFunds is set
func (r Registry) Codes(withFunds bool) []label.Symbol {
	uniq := make(map[label.Symbol]struct{}, len(r.Entries))
	for _, entry := range r.Entries {
		if entry.Fund && !withFunds {
			continue
		}

		symbol := label.Symbol(entry.Code)
		if !symbol.Valid() {
			continue
		}

		uniq[symbol] = struct{}{}
	}

	list := make([]label.Symbol, 0, len(uniq))
	for symbol := range uniq {
		list = append(list, symbol)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i] < list[j]
	})

	return list
}

type currencyCodes struct {
	Published string `xml:"Pblshd,attr"`
	CcyTbl    struct {
		CcyEntries []struct {
			CtryNm string `xml:"CtryNm"`
			CcyNm  struct {
				Value  string `xml:",chardata"`
				IsFund string `xml:"IsFund,attr"`
			} `xml:"CcyNm"`
			Ccy        string `xml:"Ccy"`
			CcyNbr     string `xml:"CcyNbr"`
			CcyMnrUnts string `xml:"CcyMnrUnts"`
		} `xml:"CcyNtry"`
	} `xml:"CcyTbl"`
}

// Decode parses the ISO 4217 list_one.xml document
func Decode(b []byte) (Registry, error) {
	var codes currencyCodes

	decoder := xml.NewDecoder(bytes.NewReader(b))
	decoder.CharsetReader = charset.NewReaderLabel

	if err := decoder.Decode(&codes); err != nil {
		var syntaxErr *xml.SyntaxError
		if errors.As(err, &syntaxErr) {
			return Registry{}, fmt.Errorf("%w: %v", errDecodeToken, syntaxErr.Error())
		}

		return Registry{}, fmt.Errorf("xml decode: %w", err)
	}

	registry := Registry{
		Published: codes.Published,
		Entries:   make([]Entry, 0, len(codes.CcyTbl.CcyEntries)),
	}

	for _, entry := range codes.CcyTbl.CcyEntries {
		registry.Entries = append(registry.Entries, Entry{
			Country:    strings.TrimSpace(entry.CtryNm),
			Name:       strings.TrimSpace(entry.CcyNm.Value),
			Code:       strings.TrimSpace(entry.Ccy),
			Number:     strings.TrimSpace(entry.CcyNbr),
			MinorUnits: strings.TrimSpace(entry.CcyMnrUnts),
			Fund:       strings.EqualFold(strings.TrimSpace(entry.CcyNm.IsFund), "true"),
		})
	}

	return registry, nil
}
