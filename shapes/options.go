package shapes

// DefaultFont is the font used by Text when none is given.
const DefaultFont = "20px sans-serif"

// Align is the horizontal anchor of a text.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type options struct {
	fill      bool
	lineWidth float64
	border    bool
	font      string
	align     Align
}

func defaultOptions() options {
	return options{fill: true, lineWidth: 1, border: true, font: DefaultFont}
}

func resolve(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option customizes a single draw call.
type Option func(*options)

// Fill sets whether rectangles are filled. Default is true.
func Fill(fill bool) Option { return func(o *options) { o.fill = fill } }

// LineWidth sets the stroke width of lines and borders. Default is 1.
func LineWidth(w float64) Option { return func(o *options) { o.lineWidth = w } }

// Border(false) asks for no rectangle border; what is actually
// painted then depends on Profile.NoBorder. Default is true.
func Border(border bool) Option { return func(o *options) { o.border = border } }

// Font sets the CSS font of a text. Default is DefaultFont.
func Font(font string) Option { return func(o *options) { o.font = font } }

// TextAlign sets the horizontal anchor of a text. Default is AlignLeft.
// Centered and right aligned text require a driver able to measure text.
func TextAlign(a Align) Option { return func(o *options) { o.align = a } }
