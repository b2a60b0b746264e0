package gen

// Entry is one currency of the denominations asset
type Entry struct {
	Code  string    `json:"code"`
	Notes []float64 `json:"notes"`
	Coins []float64 `json:"coins"`
}

// Denominations is the root of the denominations asset
type Denominations struct {
	Entries []Entry `json:"denominations"`
}

type tableData struct {
	LabelImportPath string
	Entries         []Entry
}
