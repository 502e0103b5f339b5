package entity

// Format is the export format of a rendered code.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// Style holds the rendering options collected from the form.
type Style struct {
	Size         int
	Level        string // L, M, Q or H
	QuietZone    int
	Foreground   string // #RRGGBB
	Background   string // #RRGGBB
	CornerRadius float64
	LogoScale    float64
	Format       Format
}

// Code is a rendered code kept in the cache so the form page can fetch it.
type Code struct {
	ID     string
	Kind   PayloadKind
	Format Format
	Data   []byte
}
