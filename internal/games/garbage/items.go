package garbage

// Bin is one of the four sorting categories. Closed enumeration: every
// switch over Bin must be exhaustive.
type Bin int

const (
	BinPlast Bin = iota
	BinPappi
	BinMatur
	BinAlmennt
)

// Bins lists all categories in keyboard order (keys 1-4).
var Bins = []Bin{BinPlast, BinPappi, BinMatur, BinAlmennt}

// String returns the Icelandic bin label.
func (b Bin) String() string {
	switch b {
	case BinPlast:
		return "plast"
	case BinPappi:
		return "pappi"
	case BinMatur:
		return "matur"
	case BinAlmennt:
		return "almennt"
	default:
		return "unknown"
	}
}

// ItemSpec is one entry in the trash catalog.
type ItemSpec struct {
	Name string
	Bin  Bin
}

// TrashItems is the full catalog of things that come down the belt.
var TrashItems = []ItemSpec{
	// Pappi
	{Name: "G-Mjólk", Bin: BinPappi},
	{Name: "Kókómjólk", Bin: BinPappi},
	{Name: "Pizzakassi", Bin: BinPappi},
	{Name: "Morgunkorn", Bin: BinPappi},
	{Name: "Eggjabakki", Bin: BinPappi},
	{Name: "Safi ferna", Bin: BinPappi},
	{Name: "Kex pakki", Bin: BinPappi},

	// Plast
	{Name: "SS Pylsur", Bin: BinPlast},
	{Name: "Skyr dós", Bin: BinPlast},
	{Name: "Nóa Kropp", Bin: BinPlast},
	{Name: "Brauðpoki", Bin: BinPlast},
	{Name: "Hakkbakki", Bin: BinPlast},
	{Name: "Sjampóbrúsi", Bin: BinPlast},
	{Name: "Gosflaska", Bin: BinPlast},

	// Matur
	{Name: "Bananahýði", Bin: BinMatur},
	{Name: "Epla skrutur", Bin: BinMatur},
	{Name: "Kaffikorgur", Bin: BinMatur},
	{Name: "Eggjaskurn", Bin: BinMatur},
	{Name: "Fiskbein", Bin: BinMatur},
	{Name: "Myglað brauð", Bin: BinMatur},

	// Almennt
	{Name: "Bleyja", Bin: BinAlmennt},
	{Name: "Hundaskítur", Bin: BinAlmennt},
	{Name: "Tyggjó", Bin: BinAlmennt},
	{Name: "Ryksugupoki", Bin: BinAlmennt},
	{Name: "Blautklútar", Bin: BinAlmennt},
	{Name: "Eyrnapinni", Bin: BinAlmennt},
}
